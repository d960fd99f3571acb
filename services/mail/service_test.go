package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/customeros/graphmail/config"
	er "github.com/customeros/graphmail/internal/errors"
)

func TestNewMailService(t *testing.T) {
	// Arrange
	cfg := &config.GraphAPIConfig{
		Url:  "https://graph.microsoft.com/v1.0",
		User: testMailbox,
	}
	tokens := &staticTokenProvider{token: "test-token"}

	// Act
	service, err := NewMailService(cfg, tokens, getLogger())

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, service)
}

func TestNewMailService_RequiresLogger(t *testing.T) {
	cfg := &config.GraphAPIConfig{Url: "https://graph.microsoft.com/v1.0", User: testMailbox}

	service, err := NewMailService(cfg, &staticTokenProvider{}, nil)

	assert.Nil(t, service)
	assert.ErrorIs(t, err, er.ErrLoggerRequired)
}

func TestNewMailService_RequiresTokenProvider(t *testing.T) {
	cfg := &config.GraphAPIConfig{Url: "https://graph.microsoft.com/v1.0", User: testMailbox}

	service, err := NewMailService(cfg, nil, getLogger())

	assert.Nil(t, service)
	assert.ErrorIs(t, err, er.ErrTokenProviderRequired)
}

func TestNewMailService_RequiresConfig(t *testing.T) {
	service, err := NewMailService(nil, &staticTokenProvider{}, getLogger())

	assert.Nil(t, service)
	assert.ErrorIs(t, err, er.ErrConfigRequired)
}

func TestValidateEmailAddress(t *testing.T) {
	assert.NoError(t, ValidateEmailAddress("jane@acme.com"))
	assert.ErrorIs(t, ValidateEmailAddress("not-an-email"), ErrInvalidEmail)
	assert.ErrorIs(t, ValidateEmailAddress(""), ErrInvalidEmail)
}
