package auth

import (
	"context"
	"fmt"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/customeros/graphmail/config"
	"github.com/customeros/graphmail/interfaces"
	er "github.com/customeros/graphmail/internal/errors"
	"github.com/customeros/graphmail/internal/logger"
	"github.com/customeros/graphmail/internal/tracing"
)

const microsoftTokenURLTemplate = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"

type clientCredentialsProvider struct {
	log    logger.Logger
	source oauth2.TokenSource
}

// NewTokenProvider builds a client-credentials token provider for the
// configured tenant. Token caching and refresh-on-expiry are delegated to
// the underlying oauth2 token source.
func NewTokenProvider(cfg *config.AzureADConfig, log logger.Logger) (interfaces.TokenProvider, error) {
	if log == nil {
		return nil, er.ErrLoggerRequired
	}
	if cfg == nil {
		return nil, er.ErrConfigRequired
	}
	if cfg.ClientID == "" || cfg.TenantID == "" || cfg.ClientSecret == "" {
		return nil, er.ErrCredentialsMissing
	}

	tokenURL := cfg.TokenEndpoint
	if tokenURL == "" {
		tokenURL = fmt.Sprintf(microsoftTokenURLTemplate, cfg.TenantID)
	}

	credentials := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
		Scopes:       []string{cfg.Scope},
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	return &clientCredentialsProvider{
		log:    log,
		source: credentials.TokenSource(context.Background()),
	}, nil
}

func (p *clientCredentialsProvider) AcquireToken(ctx context.Context) (string, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "TokenProvider.AcquireToken")
	defer span.Finish()
	tracing.TagComponentAuth(span)

	token, err := p.source.Token()
	if err != nil {
		tracing.TraceErr(span, err)
		p.log.Error("failed to acquire access token", err)
		return "", errors.Wrap(err, "failed to acquire access token")
	}

	return token.AccessToken, nil
}
