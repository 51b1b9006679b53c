package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKeyKeepsExtensionAndPrefix(t *testing.T) {
	key := NewKey("mobile", "photo du téléphone.JPG")
	assert.True(t, strings.HasPrefix(key, "mobile-"))
	assert.True(t, strings.HasSuffix(key, ".JPG"))
}

func TestNewKeyIsCollisionResistant(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		key := NewKey("mobile", "same.jpg")
		assert.False(t, seen[key], "duplicate key generated")
		seen[key] = true
	}
}

func TestKeyFromLocator(t *testing.T) {
	cases := map[string]string{
		"https://bucket.s3.eu-west-3.amazonaws.com/mobile-abc.jpg": "mobile-abc.jpg",
		"/api/images/laptop-def.png":                               "laptop-def.png",
		"bare-key.jpeg":                                            "bare-key.jpeg",
	}
	for locator, want := range cases {
		assert.Equal(t, want, KeyFromLocator(locator))
	}
}

func TestAllowedImageType(t *testing.T) {
	assert.True(t, AllowedImageType("image/jpeg"))
	assert.True(t, AllowedImageType("image/png"))
	assert.False(t, AllowedImageType("image/gif"))
	assert.False(t, AllowedImageType("application/pdf"))
}
