package lib

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	values map[string]string
	getErr error
}

func (m *memoryStorage) Set(key, value string, _ KeyExtras) error {
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func (m *memoryStorage) Get(key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.values[key], nil
}

func (m *memoryStorage) Remove(key string) error {
	delete(m.values, key)
	return nil
}

func TestGetSecretFromEnvOrInput(t *testing.T) {
	envKeys := []string{SellAppApiKeyEnv, SellAppNativeApiKeyEnv}

	t.Run("first set env var wins", func(t *testing.T) {
		t.Setenv(SellAppApiKeyEnv, "")
		t.Setenv(SellAppNativeApiKeyEnv, " from-native-env ")
		storage := &memoryStorage{values: map[string]string{SellAppApiSecretKey: "stored"}}

		secret, err := GetSecretFromEnvOrInput(storage, SellAppApiSecretKey, SellAppApiSecretLabel, envKeys, strings.NewReader(""), &bytes.Buffer{}, "API key")
		require.NoError(t, err)
		require.Equal(t, "from-native-env", secret)
	})

	t.Run("stored value is used without prompting", func(t *testing.T) {
		t.Setenv(SellAppApiKeyEnv, "")
		t.Setenv(SellAppNativeApiKeyEnv, "")
		storage := &memoryStorage{values: map[string]string{SellAppApiSecretKey: "stored"}}
		out := &bytes.Buffer{}

		secret, err := GetSecretFromEnvOrInput(storage, SellAppApiSecretKey, SellAppApiSecretLabel, envKeys, strings.NewReader(""), out, "API key")
		require.NoError(t, err)
		require.Equal(t, "stored", secret)
		require.Empty(t, out.String())
	})

	t.Run("prompted value is stored", func(t *testing.T) {
		t.Setenv(SellAppApiKeyEnv, "")
		t.Setenv(SellAppNativeApiKeyEnv, "")
		storage := &memoryStorage{}
		out := &bytes.Buffer{}

		secret, err := GetSecretFromEnvOrInput(storage, SellAppApiSecretKey, SellAppApiSecretLabel, envKeys, strings.NewReader("typed-key\n"), out, "API key")
		require.NoError(t, err)
		require.Equal(t, "typed-key", secret)
		require.Equal(t, "API key: ", out.String())
		require.Equal(t, "typed-key", storage.values[SellAppApiSecretKey])
	})

	t.Run("input without trailing newline is accepted", func(t *testing.T) {
		t.Setenv(SellAppApiKeyEnv, "")
		t.Setenv(SellAppNativeApiKeyEnv, "")

		secret, err := GetSecretFromEnvOrInput(nil, SellAppApiSecretKey, SellAppApiSecretLabel, envKeys, strings.NewReader("typed-key"), &bytes.Buffer{}, "API key")
		require.NoError(t, err)
		require.Equal(t, "typed-key", secret)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		t.Setenv(SellAppApiKeyEnv, "")
		t.Setenv(SellAppNativeApiKeyEnv, "")

		_, err := GetSecretFromEnvOrInput(&memoryStorage{}, SellAppApiSecretKey, SellAppApiSecretLabel, envKeys, strings.NewReader("\n"), &bytes.Buffer{}, "API key")
		require.ErrorIs(t, err, BadUserInputError)
	})

	t.Run("storage errors are returned", func(t *testing.T) {
		t.Setenv(SellAppApiKeyEnv, "")
		t.Setenv(SellAppNativeApiKeyEnv, "")
		boom := errors.New("keyring locked")

		_, err := GetSecretFromEnvOrInput(&memoryStorage{getErr: boom}, SellAppApiSecretKey, SellAppApiSecretLabel, envKeys, strings.NewReader("x\n"), &bytes.Buffer{}, "API key")
		require.ErrorIs(t, err, boom)
	})
}
