package mail

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/net/context"

	"github.com/customeros/graphmail/dto"
	er "github.com/customeros/graphmail/internal/errors"
)

// doRequest issues a single authenticated call against the mail API and
// decodes the response into out when out is non-nil. Non-success statuses
// come back as *errors.RemoteError.
func (s *mailService) doRequest(ctx context.Context, method, path string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		requestData, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request body")
		}
		body = bytes.NewBuffer(requestData)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.cfg.Url+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to create HTTP request")
	}

	token, err := s.tokens.AcquireToken(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("client-request-id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to call mail API")
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return remoteError(resp.StatusCode, responseBody)
	}

	if out != nil {
		if err = json.Unmarshal(responseBody, out); err != nil {
			return errors.Wrap(err, "failed to unmarshal response")
		}
	}

	return nil
}

func remoteError(statusCode int, body []byte) error {
	remote := &er.RemoteError{StatusCode: statusCode}

	var envelope dto.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		remote.Code = envelope.Error.Code
		remote.Message = envelope.Error.Message
	} else {
		remote.Message = strings.TrimSpace(string(body))
	}

	return remote
}
