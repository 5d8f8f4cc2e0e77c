package signing

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"supplymind/internal/usecase/interfaces"
)

// KeyBits is the RSA modulus size for generated keys.
const KeyBits = 2048

var (
	ErrInvalidKeyPEM = errors.New("invalid signing key pem")
	ErrKeyTooSmall   = errors.New("signing key smaller than 2048 bits")
)

// RSAKeyProvider serves one RSA signing key for the lifetime of the process.
//
// The key comes from SIGNING_KEY_PEM / SIGNING_KEY_FILE. Without either, an ephemeral
// key is generated on first use; mandates signed with it cannot be verified after a
// restart.
type RSAKeyProvider struct {
	keyID   string
	pemData string
	pemFile string

	once sync.Once
	key  interfaces.SigningKey
	err  error
}

var _ interfaces.ISigningKeyProvider = (*RSAKeyProvider)(nil)

func NewRSAKeyProvider(keyID, pemData, pemFile string) *RSAKeyProvider {
	return &RSAKeyProvider{keyID: keyID, pemData: pemData, pemFile: pemFile}
}

// NewStaticKeyProvider wraps an already loaded key.
func NewStaticKeyProvider(keyID string, key *rsa.PrivateKey) *RSAKeyProvider {
	p := &RSAKeyProvider{keyID: keyID}
	p.once.Do(func() {
		p.key, p.err = newSigningKey(keyID, key)
	})
	return p
}

func (p *RSAKeyProvider) SigningKey(_ context.Context) (interfaces.SigningKey, error) {
	p.once.Do(func() {
		p.key, p.err = p.load()
	})
	return p.key, p.err
}

func (p *RSAKeyProvider) load() (interfaces.SigningKey, error) {
	raw := strings.TrimSpace(p.pemData)
	if raw == "" && strings.TrimSpace(p.pemFile) != "" {
		b, err := os.ReadFile(p.pemFile)
		if err != nil {
			log.Printf("[mandate][signing] failed reading key file path=%s err=%v", p.pemFile, err)
			return interfaces.SigningKey{}, fmt.Errorf("read signing key: %w", err)
		}
		raw = string(b)
	}

	if raw == "" {
		log.Printf("[mandate][signing] no signing key configured; generating ephemeral rsa-%d key kid=%s", KeyBits, p.keyID)
		key, err := rsa.GenerateKey(rand.Reader, KeyBits)
		if err != nil {
			return interfaces.SigningKey{}, fmt.Errorf("generate signing key: %w", err)
		}
		return newSigningKey(p.keyID, key)
	}

	key, err := ParsePrivateKeyPEM([]byte(raw))
	if err != nil {
		log.Printf("[mandate][signing] failed parsing key kid=%s err=%v", p.keyID, err)
		return interfaces.SigningKey{}, err
	}
	log.Printf("[mandate][signing] signing key loaded kid=%s bits=%d", p.keyID, key.N.BitLen())
	return newSigningKey(p.keyID, key)
}

func newSigningKey(keyID string, key *rsa.PrivateKey) (interfaces.SigningKey, error) {
	pub, err := PublicKeyPEM(&key.PublicKey)
	if err != nil {
		return interfaces.SigningKey{}, fmt.Errorf("encode public key: %w", err)
	}
	return interfaces.SigningKey{KeyID: keyID, PrivateKey: key, PublicKeyPEM: pub}, nil
}

// ParsePrivateKeyPEM accepts PKCS#1 ("RSA PRIVATE KEY") and PKCS#8 ("PRIVATE KEY") blocks.
func ParsePrivateKeyPEM(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidKeyPEM
	}

	var key *rsa.PrivateKey
	switch block.Type {
	case "RSA PRIVATE KEY":
		k, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKeyPEM, err)
		}
		key = k
	case "PRIVATE KEY":
		k, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKeyPEM, err)
		}
		rk, ok := k.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an rsa key", ErrInvalidKeyPEM)
		}
		key = rk
	default:
		return nil, fmt.Errorf("%w: unexpected block %q", ErrInvalidKeyPEM, block.Type)
	}

	if key.N.BitLen() < KeyBits {
		return nil, ErrKeyTooSmall
	}
	return key, nil
}

// PublicKeyPEM encodes the public half as a PKIX "PUBLIC KEY" block.
func PublicKeyPEM(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", err
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})), nil
}
