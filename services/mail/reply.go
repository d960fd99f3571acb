package mail

import (
	"net/http"
	"net/url"

	"github.com/opentracing/opentracing-go"
	"golang.org/x/net/context"

	"github.com/customeros/graphmail/dto"
	"github.com/customeros/graphmail/internal/tracing"
	"github.com/customeros/graphmail/internal/utils"
)

func (s *mailService) ReplyToEmail(ctx context.Context, messageID, comment string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "MailService.ReplyToEmail")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagMessageId(span, messageID)

	if utils.IsBlank(messageID) {
		tracing.TraceErr(span, ErrMessageIDMissing)
		return ErrMessageIDMissing
	}
	if utils.IsBlank(comment) {
		tracing.TraceErr(span, ErrEmptyEmailBody)
		return ErrEmptyEmailBody
	}

	request := dto.ReplyMessageRequest{Comment: comment}

	err := s.doRequest(ctx, http.MethodPost, s.userPath("/messages/"+url.PathEscape(messageID)+"/reply"), request, nil)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("failed to reply to email %s: %v", messageID, err)
		return err
	}

	return nil
}

func (s *mailService) ForwardEmail(ctx context.Context, messageID, comment string, recipients []string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "MailService.ForwardEmail")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagMessageId(span, messageID)

	if utils.IsBlank(messageID) {
		tracing.TraceErr(span, ErrMessageIDMissing)
		return ErrMessageIDMissing
	}
	if utils.IsBlank(comment) {
		tracing.TraceErr(span, ErrEmptyEmailBody)
		return ErrEmptyEmailBody
	}
	if err := s.validateRecipients(recipients); err != nil {
		tracing.TraceErr(span, err)
		return err
	}

	request := dto.ForwardMessageRequest{
		Comment:      comment,
		ToRecipients: dto.ToRecipients(utils.UniqueEmails(recipients)),
	}

	err := s.doRequest(ctx, http.MethodPost, s.userPath("/messages/"+url.PathEscape(messageID)+"/forward"), request, nil)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("failed to forward email %s: %v", messageID, err)
		return err
	}

	return nil
}
