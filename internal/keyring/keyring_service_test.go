package keyring

import (
	"testing"

	ring "github.com/99designs/keyring"
	"github.com/AnotherFullstackDev/sellctl/internal/lib"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	r := require.New(t)
	svc := NewServiceFromKeyring(ring.NewArrayKeyring(nil))

	value, err := svc.Get(lib.SellAppApiSecretKey)
	r.NoError(err)
	r.Empty(value)

	r.NoError(svc.Set(lib.SellAppApiSecretKey, "secret", lib.KeyExtras{Label: lib.SellAppApiSecretLabel}))

	value, err = svc.Get(lib.SellAppApiSecretKey)
	r.NoError(err)
	r.Equal("secret", value)

	r.NoError(svc.Remove(lib.SellAppApiSecretKey))
	r.NoError(svc.Remove(lib.SellAppApiSecretKey))

	value, err = svc.Get(lib.SellAppApiSecretKey)
	r.NoError(err)
	r.Empty(value)
}
