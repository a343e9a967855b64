package fyers

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tradelab/fyers-auth/internal/config"
	apihttp "github.com/tradelab/fyers-auth/internal/http"
)

// Fyers API v3 documentation: https://myapi.fyers.in/docsv3
const (
	defaultBaseURL   = "https://api-t1.fyers.in/api/v3"
	authCodePath     = "/generate-authcode"
	validateCodePath = "/validate-authcode"
	profilePath      = "/profile"
)

// Client talks to the Fyers v3 API. It covers only the three calls the login
// flow needs: authorization URL construction, auth-code exchange and profile
// fetch.
type Client struct {
	creds      config.Credentials
	httpClient apihttp.HTTPClient
	baseURL    string
}

// NewClient creates a new Fyers API client.
func NewClient(creds config.Credentials) *Client {
	return &Client{
		creds:      creds,
		httpClient: apihttp.NewHTTPClient(),
		baseURL:    defaultBaseURL,
	}
}

// AuthCodeURL builds the login URL the user has to visit. The credentials are
// not validated locally; a malformed client ID only surfaces as an error page
// on the Fyers side.
func (c *Client) AuthCodeURL(state string) string {
	query := url.Values{}
	query.Set("client_id", c.creds.ClientID)
	query.Set("redirect_uri", c.creds.RedirectURI)
	query.Set("response_type", "code")
	query.Set("state", state)
	return c.baseURL + authCodePath + "?" + query.Encode()
}

// tokenRequest is the body of the validate-authcode call.
type tokenRequest struct {
	GrantType string `json:"grant_type"`
	AppIDHash string `json:"appIdHash"`
	Code      string `json:"code"`
}

// ExchangeAuthCode trades the authorization code for an access token.
func (c *Client) ExchangeAuthCode(ctx context.Context, code string) (string, error) {
	body, err := json.Marshal(tokenRequest{
		GrantType: "authorization_code",
		AppIDHash: c.appIDHash(),
		Code:      code,
	})
	if err != nil {
		return "", fmt.Errorf("could not marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+validateCodePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("could not create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to exchange auth code: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read token response: %w", err)
	}

	var token TokenResponse
	if err := json.Unmarshal(respBody, &token); err != nil {
		return "", fmt.Errorf("could not parse token response: %w", err)
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("token response has no access_token (status %d): %s", resp.StatusCode, string(respBody))
	}

	return token.AccessToken, nil
}

// GetProfile fetches the profile of the account the token belongs to. Fyers
// expects the raw "clientID:token" pair in the Authorization header rather
// than a Bearer scheme.
func (c *Client) GetProfile(ctx context.Context, accessToken string) (*ProfileResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+profilePath, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create profile request: %w", err)
	}
	req.Header.Set("Authorization", c.creds.ClientID+":"+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read profile response: %w", err)
	}

	var profile ProfileResponse
	if err := json.Unmarshal(respBody, &profile); err != nil {
		return nil, fmt.Errorf("could not parse profile response: %w", err)
	}

	return &profile, nil
}

// appIDHash is the SHA-256 of "clientID:secret" that Fyers requires on the
// token exchange instead of the secret itself.
func (c *Client) appIDHash() string {
	sum := sha256.Sum256([]byte(c.creds.ClientID + ":" + c.creds.SecretKey))
	return hex.EncodeToString(sum[:])
}
