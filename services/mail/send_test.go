package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/customeros/graphmail/dto"
	er "github.com/customeros/graphmail/internal/errors"
)

func TestSendEmail_EmptySubject(t *testing.T) {
	// Arrange
	fixture := newFixtureService(nil)
	defer fixture.Close()
	service, tokens := newTestService(t, fixture)

	// Act
	err := service.SendEmail(context.Background(), "  ", "body", []string{"jane@acme.com"})

	// Assert
	assert.ErrorIs(t, err, ErrEmptySubject)
	assert.Equal(t, 0, fixture.requestCount())
	assert.Equal(t, 0, tokens.callCount())
}

func TestSendEmail_EmptyBody(t *testing.T) {
	fixture := newFixtureService(nil)
	defer fixture.Close()
	service, tokens := newTestService(t, fixture)

	err := service.SendEmail(context.Background(), "Hello", "", []string{"jane@acme.com"})

	assert.ErrorIs(t, err, ErrEmptyEmailBody)
	assert.Equal(t, 0, fixture.requestCount())
	assert.Equal(t, 0, tokens.callCount())
}

func TestSendEmail_NoRecipients(t *testing.T) {
	fixture := newFixtureService(nil)
	defer fixture.Close()
	service, tokens := newTestService(t, fixture)

	err := service.SendEmail(context.Background(), "Hello", "body", nil)

	assert.ErrorIs(t, err, ErrRecipientsMissing)
	assert.Equal(t, 0, fixture.requestCount())
	assert.Equal(t, 0, tokens.callCount())
}

func TestSendEmail_InvalidRecipient(t *testing.T) {
	fixture := newFixtureService(nil)
	defer fixture.Close()
	service, _ := newTestService(t, fixture)

	err := service.SendEmail(context.Background(), "Hello", "body", []string{"jane@acme.com", "not-an-email"})

	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Equal(t, 0, fixture.requestCount())
}

func TestSendEmail(t *testing.T) {
	// Arrange
	fixture := newFixtureService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	defer fixture.Close()
	service, _ := newTestService(t, fixture)

	// Act
	err := service.SendEmail(context.Background(), "Quarterly numbers", "See below.", []string{"jane@acme.com", "joe@acme.com"})

	// Assert
	require.NoError(t, err)
	require.Equal(t, 1, fixture.requestCount())

	request := fixture.request(0)
	assert.Equal(t, http.MethodPost, request.Method)
	assert.Equal(t, userPath("/sendMail"), request.Path)
	assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
	assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

	_, err = uuid.Parse(request.Header.Get("client-request-id"))
	assert.NoError(t, err)

	var payload dto.SendMailRequest
	require.NoError(t, json.Unmarshal(request.Body, &payload))
	assert.Equal(t, "Quarterly numbers", payload.Message.Subject)
	require.NotNil(t, payload.Message.Body)
	assert.Equal(t, dto.ContentTypeText, payload.Message.Body.ContentType)
	assert.Equal(t, "See below.", payload.Message.Body.Content)
	assert.True(t, payload.SaveToSentItems)
	require.Len(t, payload.Message.ToRecipients, 2)
	assert.Equal(t, "jane@acme.com", payload.Message.ToRecipients[0].EmailAddress.Address)
	assert.Equal(t, "joe@acme.com", payload.Message.ToRecipients[1].EmailAddress.Address)
}

func TestSendEmail_DeduplicatesRecipients(t *testing.T) {
	fixture := newFixtureService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	defer fixture.Close()
	service, _ := newTestService(t, fixture)

	err := service.SendEmail(context.Background(), "Hello", "body", []string{"jane@acme.com", "Jane@acme.com"})

	require.NoError(t, err)
	var payload dto.SendMailRequest
	require.NoError(t, json.Unmarshal(fixture.request(0).Body, &payload))
	assert.Len(t, payload.Message.ToRecipients, 1)
}

func TestSendEmail_RemoteError(t *testing.T) {
	// Arrange
	fixture := newFixtureService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{
			Error: dto.ErrorDetail{Code: "ErrorAccessDenied", Message: "Access is denied"},
		})
	})
	defer fixture.Close()
	service, _ := newTestService(t, fixture)

	// Act
	err := service.SendEmail(context.Background(), "Hello", "body", []string{"jane@acme.com"})

	// Assert
	require.Error(t, err)
	remoteErr, ok := er.AsRemoteError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, remoteErr.StatusCode)
	assert.Equal(t, "ErrorAccessDenied", remoteErr.Code)
	assert.Equal(t, "Access is denied", remoteErr.Message)
}
