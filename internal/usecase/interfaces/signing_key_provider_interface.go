package interfaces

//go:generate mockgen -source=signing_key_provider_interface.go -destination=mocks/signing_key_provider_mock.go -package=mock_interfaces

import (
	"context"
	"crypto/rsa"
)

// SigningKey is the private key used to sign mandates plus its published identifier.
// PublicKeyPEM is the PKIX encoding of the public half handed to counterparties.
type SigningKey struct {
	KeyID        string
	PrivateKey   *rsa.PrivateKey
	PublicKeyPEM string
}

// ISigningKeyProvider supplies the mandate signing key. Implementations may load it from
// a secret store; an error means the key is unavailable and is treated as fatal for the
// request.

type ISigningKeyProvider interface {
	SigningKey(ctx context.Context) (SigningKey, error)
}
