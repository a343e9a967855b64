package env

import "os"

// Get retrieves an environment variable, reporting whether it was set to a
// non-empty value.
func Get(key string) (string, bool) {
	value := os.Getenv(key)
	if value == "" {
		return "", false
	}
	return value, true
}

// GetOrDefault retrieves an environment variable, falling back to
// defaultValue when the variable is unset or empty.
func GetOrDefault(key, defaultValue string) string {
	if value, ok := Get(key); ok {
		return value
	}
	return defaultValue
}
