package uploader

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabled(t *testing.T) {
	assert.False(t, (&Cloudinary{}).Enabled())
	assert.False(t, NewCloudinary("demo", "key", "").Enabled())
	assert.False(t, NewCloudinary("demo", "", "secret").Enabled())
	assert.False(t, NewCloudinary("", "key", "secret").Enabled())
	assert.True(t, NewCloudinary("demo", "key", "secret").Enabled())
}

func TestSign(t *testing.T) {
	u := NewCloudinary("demo", "key", "abcd")

	sum := sha1.Sum([]byte("folder=uploads&timestamp=1700000000abcd"))
	assert.Equal(t, hex.EncodeToString(sum[:]), u.sign("uploads", 1700000000))

	// Different folder or timestamp must change the signature.
	assert.NotEqual(t, u.sign("uploads", 1700000000), u.sign("blog", 1700000000))
	assert.NotEqual(t, u.sign("uploads", 1700000000), u.sign("uploads", 1700000001))
}
