package services

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// MenuQR encodes the menu URL from settings as a PNG QR image.
func MenuQR(url string) ([]byte, error) {
	if strings.TrimSpace(url) == "" {
		return nil, &ValidationError{Reason: "menu URL is not configured"}
	}
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode menu QR: %w", err)
	}
	return png, nil
}
