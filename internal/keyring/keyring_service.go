package keyring

import (
	"errors"
	"fmt"

	ring "github.com/99designs/keyring"
	"github.com/AnotherFullstackDev/sellctl/internal/lib"
)

// Service keeps API credentials in the OS keyring.
type Service struct {
	ring ring.Keyring
}

var defaultBackends = []ring.BackendType{
	ring.SecretServiceBackend,
	ring.KeychainBackend,
	ring.WinCredBackend,
	ring.KeyCtlBackend,
	ring.KWalletBackend,
	ring.PassBackend,
}

func NewService(name string) (*Service, error) {
	r, err := ring.Open(ring.Config{
		ServiceName:     name,
		KeychainName:    "login",
		AllowedBackends: defaultBackends,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring %q: %w", name, err)
	}

	return NewServiceFromKeyring(r), nil
}

// NewServiceFromKeyring wraps an already opened keyring, e.g. ring.NewArrayKeyring in tests.
func NewServiceFromKeyring(r ring.Keyring) *Service {
	return &Service{ring: r}
}

// Get returns an empty string without error when the key is not stored.
func (s *Service) Get(key string) (string, error) {
	value, err := s.ring.Get(key)
	if errors.Is(err, ring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting key %q: %w", key, err)
	}
	return string(value.Data), nil
}

// Set stores value under key. extra.Label may be shown by the system prompt when the item is accessed.
func (s *Service) Set(key, value string, extra lib.KeyExtras) error {
	item := ring.Item{
		Key:         key,
		Data:        []byte(value),
		Label:       extra.Label,
		Description: extra.Description,
	}
	if err := s.ring.Set(item); err != nil {
		return fmt.Errorf("setting key %q: %w", key, err)
	}
	return nil
}

// Remove is a no-op for keys that are not stored.
func (s *Service) Remove(key string) error {
	err := s.ring.Remove(key)
	if err != nil && !errors.Is(err, ring.ErrKeyNotFound) {
		return fmt.Errorf("removing key %q: %w", key, err)
	}
	return nil
}
