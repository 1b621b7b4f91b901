// Package crypto provides the random material the installer needs for
// generated passwords and signing secrets.
package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// passwordAlphabet is the URL-safe set used for generated passwords.
// It has exactly 64 symbols so a random byte masked to 6 bits maps to a
// symbol without modulo bias.
const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// RandomBytes returns n cryptographically-secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// RandomHex returns n cryptographically-secure random bytes hex-encoded
// (2n characters).
func RandomHex(n int) (string, error) {
	b, err := RandomBytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// RandomPassword returns a password of the given length drawn uniformly
// from the URL-safe alphabet.
func RandomPassword(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password length must be positive, got %d", length)
	}
	b, err := RandomBytes(length)
	if err != nil {
		return "", err
	}
	out := make([]byte, length)
	for i, c := range b {
		out[i] = passwordAlphabet[c&63]
	}
	return string(out), nil
}
