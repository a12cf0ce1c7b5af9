package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/models"
)

// HTTPClientConfig configures [NewHTTPBoardClient].
type HTTPClientConfig struct {
	// Address is the server base URL; the scheme defaults to http.
	Address string

	// CookieName is the session cookie name the server uses.
	CookieName string

	Timeout time.Duration
}

const (
	defaultCookieName = "session"
	defaultTimeout    = 15 * time.Second
)

type httpBoardClient struct {
	client     *resty.Client
	cookieName string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBoardClient returns a [BoardClient] over the HTTP surface.
// Redirects are not followed: a 302 from a form endpoint is its success.
// The session cookie is kept by the client itself, not by a cookie jar.
func NewHTTPBoardClient(cfg HTTPClientConfig, logger *logger.Logger) (BoardClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetCookieJar(nil).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &httpBoardClient{client: client, cookieName: cfg.CookieName, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("no host in %q", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBoardClient) SessionToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBoardClient) setToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// request starts a request carrying the session cookie, if any.
func (h *httpBoardClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.SessionToken(); token != "" {
		req.SetCookie(&http.Cookie{Name: h.cookieName, Value: token})
	}
	return req
}

func (h *httpBoardClient) Login(ctx context.Context, login, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"login": login, "password": password}).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if resp.StatusCode() != http.StatusFound {
		return mapHTTPError(resp)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == h.cookieName && cookie.Value != "" {
			h.setToken(cookie.Value)
			h.logger.Debug().Str("login", login).Msg("signed in")
			return nil
		}
	}
	return ErrNoSessionCookie
}

func (h *httpBoardClient) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Get("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	h.setToken("")

	if resp.StatusCode() != http.StatusFound {
		return mapHTTPError(resp)
	}
	return nil
}

func (h *httpBoardClient) Version(ctx context.Context) (models.AppInfoView, error) {
	var info models.AppInfoView
	resp, err := h.request(ctx).SetResult(&info).Get("/api/version")
	if err != nil {
		return models.AppInfoView{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfoView{}, err
	}
	return info, nil
}

// Call decodes the response record for 200 and 400 alike; the server
// reports malformed requests with an error record too.
func (h *httpBoardClient) Call(ctx context.Context, request models.RPCRequest) (models.RPCResponse, error) {
	var out models.RPCResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&out).
		SetError(&out).
		Post("/api/rpc")
	if err != nil {
		return models.RPCResponse{}, fmt.Errorf("rpc request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusBadRequest:
		return out, nil
	default:
		return models.RPCResponse{}, mapHTTPError(resp)
	}
}
