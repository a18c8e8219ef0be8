package ukg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// safetyMargin keeps a token from being presented when it could expire
// while a request is still in flight.
const safetyMargin = 3 * time.Second

// defaultTokenTTLSeconds applies when the login response omits a TTL.
const defaultTokenTTLSeconds = 3600

type Credentials struct {
	Username string
	Password string
	Company  string
}

// TokenManager owns the process-local bearer token cache. The cached
// token is valid until expiry minus the safety margin; refresh runs under
// a mutex so concurrent callers share a single vendor login instead of
// racing redundant ones.
type TokenManager struct {
	httpClient *http.Client
	baseURL    string
	loginPath  string
	apiKey     string
	creds      Credentials
	logger     zerolog.Logger
	now        func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewTokenManager(httpClient *http.Client, baseURL, loginPath, apiKey string, creds Credentials, logger zerolog.Logger) *TokenManager {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TokenManager{
		httpClient: httpClient,
		baseURL:    normalizeBaseURL(baseURL),
		loginPath:  strings.TrimLeft(loginPath, "/"),
		apiKey:     apiKey,
		creds:      creds,
		logger:     logger,
		now:        time.Now,
	}
}

// Token returns a valid bearer token, logging in when the cached one is
// absent or inside the safety margin.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tokenValid() {
		return m.token, nil
	}
	if err := m.login(ctx); err != nil {
		return "", err
	}
	return m.token, nil
}

// AuthHeaders composes the standard vendor header set plus a bearer
// token, then applies caller overrides (report fetches override Accept to
// request XML).
func (m *TokenManager) AuthHeaders(ctx context.Context, overrides map[string]string) (http.Header, error) {
	token, err := m.Token(ctx)
	if err != nil {
		return nil, err
	}

	headers := m.baseHeaders()
	headers.Set("Authorization", "Bearer "+token)
	for key, value := range overrides {
		headers.Set(key, value)
	}
	return headers, nil
}

func (m *TokenManager) baseHeaders() http.Header {
	headers := make(http.Header)
	headers.Set("api-key", m.apiKey)
	headers.Set("Accept", "application/json")
	headers.Set("Content-Type", "application/json")
	return headers
}

// tokenValid must be called with mu held.
func (m *TokenManager) tokenValid() bool {
	return m.token != "" && m.now().Before(m.expiresAt.Add(-safetyMargin))
}

type loginRequest struct {
	Credentials loginCredentials `json:"credentials"`
}

type loginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

type loginResponse struct {
	AccessToken string     `json:"access_token"`
	Token       string     `json:"token"`
	ExpiresIn   FlexString `json:"expires_in"`
	ExpiresIn2  FlexString `json:"expiresIn"`
}

// login must be called with mu held.
func (m *TokenManager) login(ctx context.Context) error {
	body, err := json.Marshal(loginRequest{Credentials: loginCredentials{
		Username: m.creds.Username,
		Password: m.creds.Password,
		Company:  m.creds.Company,
	}})
	if err != nil {
		return fmt.Errorf("marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+m.loginPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create login request: %w", err)
	}
	req.Header = m.baseHeaders()

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vendor login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Endpoint: "login", Message: readErrorBody(resp.Body)}
	}

	var parsed loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}

	token := parsed.AccessToken
	if token == "" {
		token = parsed.Token
	}
	if token == "" {
		return ErrMissingToken
	}

	ttl := parseTTLSeconds(parsed.ExpiresIn, parsed.ExpiresIn2)
	m.token = token
	m.expiresAt = m.now().Add(time.Duration(ttl) * time.Second)
	m.logger.Info().Int("ttl_seconds", ttl).Msg("vendor login ok")
	return nil
}

func parseTTLSeconds(values ...FlexString) int {
	for _, value := range values {
		if value == "" {
			continue
		}
		if ttl, err := strconv.Atoi(string(value)); err == nil && ttl > 0 {
			return ttl
		}
	}
	return defaultTokenTTLSeconds
}

func readErrorBody(body io.Reader) string {
	snippet, err := io.ReadAll(io.LimitReader(body, 512))
	if err != nil || len(snippet) == 0 {
		return "request failed"
	}
	return string(snippet)
}

func normalizeBaseURL(baseURL string) string {
	if !strings.HasSuffix(baseURL, "/") {
		return baseURL + "/"
	}
	return baseURL
}
