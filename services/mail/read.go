package mail

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/opentracing/opentracing-go"
	"golang.org/x/net/context"

	"github.com/customeros/graphmail/dto"
	"github.com/customeros/graphmail/internal/tracing"
	"github.com/customeros/graphmail/internal/utils"
)

func (s *mailService) ReadEmails(ctx context.Context, top int) ([]dto.Message, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "MailService.ReadEmails")
	defer span.Finish()
	tracing.TagComponentService(span)

	if top <= 0 {
		top = s.defaultPageSize()
	}
	span.LogKV("top", top)

	query := url.Values{}
	query.Set("$top", strconv.Itoa(top))

	var collection dto.MessageCollection
	err := s.doRequest(ctx, http.MethodGet, s.userPath("/messages?"+query.Encode()), nil, &collection)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("failed to read emails: %v", err)
		return nil, err
	}

	span.LogKV("result.count", len(collection.Value))
	return collection.Value, nil
}

func (s *mailService) MarkEmailRead(ctx context.Context, messageID string, isRead bool) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "MailService.MarkEmailRead")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagMessageId(span, messageID)
	span.LogKV("isRead", isRead)

	if utils.IsBlank(messageID) {
		tracing.TraceErr(span, ErrMessageIDMissing)
		return ErrMessageIDMissing
	}

	request := dto.UpdateMessageRequest{IsRead: isRead}

	err := s.doRequest(ctx, http.MethodPatch, s.userPath("/messages/"+url.PathEscape(messageID)), request, nil)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("failed to mark email %s read=%t: %v", messageID, isRead, err)
		return err
	}

	return nil
}
