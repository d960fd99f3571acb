package mail

import (
	"net/http"
	"net/url"
	"time"

	"github.com/customeros/mailsherpa/mailvalidate"
	"github.com/pkg/errors"

	"github.com/customeros/graphmail/config"
	"github.com/customeros/graphmail/interfaces"
	er "github.com/customeros/graphmail/internal/errors"
	"github.com/customeros/graphmail/internal/logger"
)

const defaultRequestTimeout = 30 * time.Second

type mailService struct {
	log        logger.Logger
	cfg        *config.GraphAPIConfig
	tokens     interfaces.TokenProvider
	httpClient *http.Client
}

func NewMailService(cfg *config.GraphAPIConfig, tokens interfaces.TokenProvider, log logger.Logger) (interfaces.MailService, error) {
	if log == nil {
		return nil, er.ErrLoggerRequired
	}
	if cfg == nil {
		return nil, er.ErrConfigRequired
	}
	if tokens == nil {
		return nil, er.ErrTokenProviderRequired
	}

	timeout := defaultRequestTimeout
	if cfg.RequestTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	}

	return &mailService{
		log:        log,
		cfg:        cfg,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

var (
	ErrEmptySubject      = errors.New("empty subject")
	ErrEmptyEmailBody    = errors.New("empty email body")
	ErrRecipientsMissing = errors.New("recipients missing")
	ErrInvalidEmail      = errors.New("email address is invalid")
	ErrEmptyFolderName   = errors.New("empty folder name")
	ErrMessageIDMissing  = errors.New("message id missing")
	ErrFolderIDMissing   = errors.New("destination folder id missing")
)

func ValidateEmailAddress(email string) error {
	validate := mailvalidate.ValidateEmailSyntax(email)
	if !validate.IsValid {
		return ErrInvalidEmail
	}
	return nil
}

func (s *mailService) validateRecipients(recipients []string) error {
	if len(recipients) == 0 {
		return ErrRecipientsMissing
	}
	for _, recipient := range recipients {
		if err := ValidateEmailAddress(recipient); err != nil {
			return errors.Wrap(err, recipient)
		}
	}
	return nil
}

// userPath prefixes paths with the mailbox the client acts on.
func (s *mailService) userPath(suffix string) string {
	return "/users/" + url.PathEscape(s.cfg.User) + suffix
}

func (s *mailService) defaultPageSize() int {
	if s.cfg.DefaultPageSize > 0 {
		return s.cfg.DefaultPageSize
	}
	return 10
}
