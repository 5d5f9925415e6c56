package lib

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

type KeyExtras struct {
	Label, Description string
}

type CredentialsStorage interface {
	Set(key string, value string, extra KeyExtras) error
	Get(key string) (string, error)
	Remove(key string) error
}

// GetSecretFromEnvOrInput resolves a secret in order: the first non-empty env var from envKeys,
// the value kept in storage under key, and finally an interactive prompt. A prompted value is
// written back to storage so the next run does not ask again.
func GetSecretFromEnvOrInput(storage CredentialsStorage, key, label string, envKeys []string, in io.Reader, out io.Writer, prompt string) (string, error) {
	l := zap.L().With(zap.String("secret", key))

	for _, envKey := range envKeys {
		if value := strings.TrimSpace(os.Getenv(envKey)); value != "" {
			l.Debug("secret taken from environment", zap.String("env", envKey))
			return value, nil
		}
	}

	if storage != nil {
		value, err := storage.Get(key)
		if err != nil {
			return "", fmt.Errorf("reading %s from storage: %w", label, err)
		}
		if value != "" {
			l.Debug("secret taken from storage")
			return value, nil
		}
	}

	value, err := RequestSecretInput(in, out, prompt)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", fmt.Errorf("%s must not be empty: %w", label, BadUserInputError)
	}

	if storage != nil {
		if err := storage.Set(key, value, KeyExtras{Label: label}); err != nil {
			return "", fmt.Errorf("storing %s: %w", label, err)
		}
	}

	return value, nil
}
