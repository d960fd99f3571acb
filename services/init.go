package services

import (
	"github.com/customeros/graphmail/config"
	"github.com/customeros/graphmail/interfaces"
	"github.com/customeros/graphmail/internal/logger"
	"github.com/customeros/graphmail/services/auth"
	"github.com/customeros/graphmail/services/mail"
)

type Services struct {
	TokenProvider interfaces.TokenProvider
	MailService   interfaces.MailService
}

func InitServices(cfg *config.Config, log logger.Logger) (*Services, error) {
	tokens, err := auth.NewTokenProvider(cfg.Azure, log)
	if err != nil {
		return nil, err
	}

	mailService, err := mail.NewMailService(cfg.Graph, tokens, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		TokenProvider: tokens,
		MailService:   mailService,
	}, nil
}
