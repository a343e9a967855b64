package auth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/browser"

	"github.com/tradelab/fyers-auth/internal/logger"
	"github.com/tradelab/fyers-auth/internal/token"
)

// ErrNoAuthCode is returned when the pasted redirect URL carries no auth_code
// parameter.
var ErrNoAuthCode = errors.New("no auth_code found in redirect URL")

// Exchanger is the part of the Fyers client the flow needs.
type Exchanger interface {
	AuthCodeURL(state string) string
	ExchangeAuthCode(ctx context.Context, code string) (string, error)
}

// Flow walks a human through the authorization-code login: open the login
// page, wait for the pasted redirect URL, exchange the embedded code for an
// access token and persist it. Input, output and the browser opener are
// injectable so tests can drive the flow without a terminal.
type Flow struct {
	client  Exchanger
	store   *token.Store
	in      io.Reader
	out     io.Writer
	openURL func(url string) error
}

// NewFlow creates a flow wired to stdin, stdout and the default browser.
func NewFlow(client Exchanger, store *token.Store) *Flow {
	return &Flow{
		client:  client,
		store:   store,
		in:      os.Stdin,
		out:     os.Stdout,
		openURL: browser.OpenURL,
	}
}

// Run performs the login once and returns the access token. It blocks until
// the user pastes the redirect URL; the 60-second window mentioned in the
// banner is how long Fyers keeps the auth code usable, not a timeout enforced
// here.
func (f *Flow) Run(ctx context.Context) (string, error) {
	log := logger.Get()
	log.Info().Msg("Starting Fyers authentication")

	state := uuid.NewString()
	authURL := f.client.AuthCodeURL(state)

	f.printBanner()

	if err := f.openURL(authURL); err != nil {
		log.Warn().Err(err).Msg("Could not open browser")
	}
	fmt.Fprintf(f.out, "If the browser didn't open automatically, visit:\n%s\n\n", authURL)

	rawURL, err := f.readRedirectURL()
	if err != nil {
		return "", err
	}

	code, err := ExtractAuthCode(rawURL)
	if err != nil {
		log.Error().Msg("No auth code found in the URL")
		return "", err
	}
	log.Info().Str("auth_code", abbreviate(code)).Msg("Auth code extracted")

	if got := extractState(rawURL); got != "" && got != state {
		log.Warn().Msg("State in the redirect URL does not match the one sent; make sure the URL is from this login attempt")
	}

	log.Info().Msg("Exchanging auth code for access token")
	accessToken, err := f.client.ExchangeAuthCode(ctx, code)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate token")
		return "", err
	}
	log.Info().Str("access_token", abbreviate(accessToken)).Msg("Access token generated")

	if err := f.store.Save(accessToken); err != nil {
		return "", err
	}
	log.Info().Str("file", f.store.Path()).Msg("Token saved")

	return accessToken, nil
}

func (f *Flow) printBanner() {
	divider := strings.Repeat("=", 50)
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, divider)
	fmt.Fprintln(f.out, "IMPORTANT INSTRUCTIONS:")
	fmt.Fprintln(f.out, "1. A browser window will open for Fyers login")
	fmt.Fprintln(f.out, "2. Complete the login process quickly")
	fmt.Fprintln(f.out, "3. After being redirected, immediately copy the ENTIRE URL")
	fmt.Fprintln(f.out, "4. Paste the URL back here within 60 seconds")
	fmt.Fprintln(f.out, divider)
	fmt.Fprintln(f.out)
}

// readRedirectURL blocks until the user pastes the URL they were redirected
// to after logging in.
func (f *Flow) readRedirectURL() (string, error) {
	fmt.Fprint(f.out, "After logging in, paste the complete redirect URL here: ")
	line, err := bufio.NewReader(f.in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read redirect URL: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ExtractAuthCode pulls the auth_code query parameter out of a pasted
// redirect URL. The URL is treated as an opaque string on purpose: users
// paste partial or mangled URLs often enough that strict parsing would
// reject recoverable input.
func ExtractAuthCode(rawURL string) (string, error) {
	_, after, found := strings.Cut(rawURL, "auth_code=")
	if !found {
		return "", ErrNoAuthCode
	}
	code, _, _ := strings.Cut(after, "&")
	return code, nil
}

// extractState pulls the state query parameter, or "" when absent.
func extractState(rawURL string) string {
	_, after, found := strings.Cut(rawURL, "state=")
	if !found {
		return ""
	}
	state, _, _ := strings.Cut(after, "&")
	return state
}

// abbreviate keeps log lines from leaking whole secrets.
func abbreviate(s string) string {
	if len(s) <= 10 {
		return s
	}
	return s[:10] + "..."
}
