// Package idsdk is a small typed client for the identity service's HTTP
// API. The integration suite drives the service through it; external Go
// callers can too.
package idsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenHeader is the header the service uses to carry tokens in both
// directions.
const TokenHeader = "Auth-Token"

// Client talks to an identity service instance.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a Client with a sane default timeout.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Register creates a new account. Under the rich profile the response also
// carries a freshly minted token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	var out RegisterResponse
	resp, body, err := c.postJSON(ctx, "/v1/auth/register", req, "")
	if err != nil {
		return out, err
	}
	if err := parseError(resp.StatusCode, body); err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("idsdk: decode register response: %w", err)
	}
	// Prefer the header copy when the body omits the token (minimal profile
	// never sets either; rich sets both).
	if out.Token == "" {
		out.Token = resp.Header.Get(TokenHeader)
	}
	return out, nil
}

// Login exchanges credentials for a token. Handles both response profiles:
// a JSON {token} object or a bare text token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (string, error) {
	resp, body, err := c.postJSON(ctx, "/v1/auth/login", req, "")
	if err != nil {
		return "", err
	}
	if err := parseError(resp.StatusCode, body); err != nil {
		return "", err
	}

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		var out LoginResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return "", fmt.Errorf("idsdk: decode login response: %w", err)
		}
		return out.Token, nil
	}
	return strings.TrimSpace(string(body)), nil
}

// Verify presents a token for validation and returns the identity embedded
// in it.
func (c *Client) Verify(ctx context.Context, token string) (VerifyResponse, error) {
	var out VerifyResponse
	resp, body, err := c.postJSON(ctx, "/v1/auth/verify", nil, token)
	if err != nil {
		return out, err
	}
	if err := parseError(resp.StatusCode, body); err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("idsdk: decode verify response: %w", err)
	}
	return out, nil
}

// Me fetches the authenticated account.
func (c *Client) Me(ctx context.Context, token string) (AccountResponse, error) {
	var out AccountResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/accounts/me", nil)
	if err != nil {
		return out, err
	}
	req.Header.Set(TokenHeader, token)

	resp, body, err := c.do(req)
	if err != nil {
		return out, err
	}
	if err := parseError(resp.StatusCode, body); err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("idsdk: decode account response: %w", err)
	}
	return out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, token string) (*http.Response, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, body, nil
}
