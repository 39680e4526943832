package qrimage

import (
	"encoding/base64"

	"tagmytrophy/internal/pkg/errs"

	qrcode "github.com/skip2/go-qrcode"
)

const pngSize = 512

// Encoder renders story-page URLs as QR PNG data URLs suitable for direct
// embedding in an <img> tag.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) EncodeDataURL(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, pngSize)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode qr image")
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
