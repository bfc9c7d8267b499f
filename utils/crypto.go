package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"
)

const encPrefix = "enc:"

func gatewayCipher() (cipher.AEAD, error) {
	key := os.Getenv("GATEWAY_SECRET_KEY")
	if key == "" {
		return nil, fmt.Errorf("GATEWAY_SECRET_KEY is not set")
	}
	sum := sha256.Sum256([]byte(key))
	block, err := aes.NewCipher(sum[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// EncryptSecret encrypts a gateway credential for at-rest storage. Encrypted
// values carry a prefix so already-encrypted input is left untouched.
func EncryptSecret(plaintext string) (string, error) {
	if plaintext == "" || strings.HasPrefix(plaintext, encPrefix) {
		return plaintext, nil
	}
	gcm, err := gatewayCipher()
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return encPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptSecret reverses EncryptSecret. Values without the prefix are
// returned as-is, which keeps seed rows and test fixtures usable without a
// master key.
func DecryptSecret(value string) (string, error) {
	if !strings.HasPrefix(value, encPrefix) {
		return value, nil
	}
	gcm, err := gatewayCipher()
	if err != nil {
		return "", err
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, encPrefix))
	if err != nil {
		return "", fmt.Errorf("malformed encrypted secret: %v", err)
	}
	if len(raw) < gcm.NonceSize() {
		return "", fmt.Errorf("malformed encrypted secret")
	}
	plain, err := gcm.Open(nil, raw[:gcm.NonceSize()], raw[gcm.NonceSize():], nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt secret: %v", err)
	}
	return string(plain), nil
}
