// Package token generates the opaque share tokens attached to certificates.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

const shareTokenBytes = 32

type ShareTokenGenerator interface {
	Generate() (string, error)
}

type shareTokenGenerator struct {
	rand io.Reader
}

func NewShareTokenGenerator() ShareTokenGenerator {
	return &shareTokenGenerator{rand: rand.Reader}
}

// Generate returns 32 random bytes hex encoded (64 characters).
func (g *shareTokenGenerator) Generate() (string, error) {
	b := make([]byte, shareTokenBytes)
	if _, err := io.ReadFull(g.rand, b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
