package mail

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/customeros/graphmail/config"
	"github.com/customeros/graphmail/internal/logger"
)

const testMailbox = "outbound@testco.com"

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// fixtureService records every request it receives and delegates the
// response to the handler under test.
type fixtureService struct {
	*httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
}

func newFixtureService(handler http.HandlerFunc) *fixtureService {
	fixture := &fixtureService{}
	fixture.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fixture.mu.Lock()
		fixture.requests = append(fixture.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		fixture.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(body))
		if handler != nil {
			handler(w, r)
		}
	}))
	return fixture
}

func (f *fixtureService) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fixtureService) request(i int) recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[i]
}

type staticTokenProvider struct {
	mu    sync.Mutex
	token string
	err   error
	calls int
}

func (p *staticTokenProvider) AcquireToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.token, p.err
}

func (p *staticTokenProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func getLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode: true,
	})
	appLogger.InitLogger()
	return appLogger
}

func newTestService(t *testing.T, fixture *fixtureService) (*mailService, *staticTokenProvider) {
	t.Helper()

	cfg := &config.GraphAPIConfig{
		Url:             fixture.URL,
		User:            testMailbox,
		DefaultPageSize: 10,
	}
	tokens := &staticTokenProvider{token: "test-token"}

	service, err := NewMailService(cfg, tokens, getLogger())
	require.NoError(t, err)

	return service.(*mailService), tokens
}

func userPath(suffix string) string {
	return "/users/" + testMailbox + suffix
}
