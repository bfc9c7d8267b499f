package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncryptDecryptSecretRoundTrip(t *testing.T) {
	t.Setenv("GATEWAY_SECRET_KEY", "test-master-key")

	encrypted, err := EncryptSecret("store-password-123")
	assert.NoError(t, err)
	assert.NotEqual(t, "store-password-123", encrypted)
	assert.Contains(t, encrypted, "enc:")

	decrypted, err := DecryptSecret(encrypted)
	assert.NoError(t, err)
	assert.Equal(t, "store-password-123", decrypted)
}

func TestDecryptSecretPassesThroughPlaintext(t *testing.T) {
	plain, err := DecryptSecret("not-encrypted")
	assert.NoError(t, err)
	assert.Equal(t, "not-encrypted", plain)
}

func TestEncryptSecretLeavesEncryptedValues(t *testing.T) {
	t.Setenv("GATEWAY_SECRET_KEY", "test-master-key")

	encrypted, err := EncryptSecret("secret")
	assert.NoError(t, err)

	again, err := EncryptSecret(encrypted)
	assert.NoError(t, err)
	assert.Equal(t, encrypted, again)
}

func TestEncryptSecretRequiresKey(t *testing.T) {
	t.Setenv("GATEWAY_SECRET_KEY", "")

	_, err := EncryptSecret("secret")
	assert.Error(t, err)
}
