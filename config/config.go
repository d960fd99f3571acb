package config

import (
	"github.com/customeros/graphmail/internal/logger"
	"github.com/customeros/graphmail/internal/tracing"
)

type AzureADConfig struct {
	ClientID     string `env:"AZURE_AD_CLIENT_ID,required" validate:"required"`
	TenantID     string `env:"AZURE_AD_TENANT_ID,required" validate:"required"`
	ClientSecret string `env:"AZURE_AD_CLIENT_SECRET,required" validate:"required"`
	// TokenEndpoint overrides the Microsoft login endpoint derived from the
	// tenant id. Used to point token acquisition at a fixture in tests.
	TokenEndpoint string `env:"AZURE_AD_TOKEN_ENDPOINT"`
	Scope         string `env:"AZURE_AD_SCOPE" envDefault:"https://graph.microsoft.com/.default"`
}

type GraphAPIConfig struct {
	Url string `env:"GRAPH_API_URL" envDefault:"https://graph.microsoft.com/v1.0" validate:"required"`
	// User is the mailbox the client acts on. Client-credentials tokens are
	// app-only, so every call is addressed to an explicit mailbox.
	User                  string `env:"GRAPH_API_USER,required" validate:"required"`
	RequestTimeoutSeconds int    `env:"GRAPH_API_REQUEST_TIMEOUT_SECONDS" envDefault:"30"`
	DefaultPageSize       int    `env:"GRAPH_API_DEFAULT_PAGE_SIZE" envDefault:"10"`
}

type Config struct {
	Azure   *AzureADConfig
	Graph   *GraphAPIConfig
	Logger  *logger.Config
	Tracing *tracing.JaegerConfig
}
