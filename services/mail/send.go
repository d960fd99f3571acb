package mail

import (
	"net/http"

	"github.com/opentracing/opentracing-go"
	"golang.org/x/net/context"

	"github.com/customeros/graphmail/dto"
	"github.com/customeros/graphmail/internal/tracing"
	"github.com/customeros/graphmail/internal/utils"
)

func (s *mailService) SendEmail(ctx context.Context, subject, body string, recipients []string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "MailService.SendEmail")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogKV("subject", subject)

	if utils.IsBlank(subject) {
		tracing.TraceErr(span, ErrEmptySubject)
		return ErrEmptySubject
	}
	if utils.IsBlank(body) {
		tracing.TraceErr(span, ErrEmptyEmailBody)
		return ErrEmptyEmailBody
	}
	if err := s.validateRecipients(recipients); err != nil {
		tracing.TraceErr(span, err)
		return err
	}

	sendID := utils.GenerateNanoIDWithPrefix("send", 16)
	span.LogKV("sendId", sendID)

	request := dto.SendMailRequest{
		Message: dto.Message{
			Subject:      subject,
			Body:         &dto.ItemBody{ContentType: dto.ContentTypeText, Content: body},
			ToRecipients: dto.ToRecipients(utils.UniqueEmails(recipients)),
		},
		SaveToSentItems: true,
	}

	err := s.doRequest(ctx, http.MethodPost, s.userPath("/sendMail"), request, nil)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Errorf("failed to send email %s: %v", sendID, err)
		return err
	}

	s.log.Infof("email %s sent to %d recipient(s)", sendID, len(request.Message.ToRecipients))
	return nil
}
