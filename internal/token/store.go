package token

import (
	"fmt"
	"os"
	"strings"
)

// DefaultPath is where the access token lands unless FYERS_TOKEN_FILE says
// otherwise.
const DefaultPath = "fyers_token.txt"

// Store persists the access token as a single plaintext value. Only one
// process is expected to touch the file, so writes are plain overwrites.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save overwrites the token file with the given token.
func (s *Store) Save(accessToken string) error {
	if err := os.WriteFile(s.path, []byte(accessToken), 0o600); err != nil {
		return fmt.Errorf("failed to write token to %s: %w", s.path, err)
	}
	return nil
}

// Load reads the stored token back, trimming surrounding whitespace.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read token from %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Path returns the file path backing the store.
func (s *Store) Path() string {
	return s.path
}
