// Package document renders the verification artifacts of a certificate.
package document

import (
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var ErrEmptyContent = errors.New("content cannot be empty")

const defaultQRSize = 256

// QRCode returns a PNG QR code encoding content.
func QRCode(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultQRSize
	}

	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
