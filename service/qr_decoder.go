package service

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// QRDecoder reads a QR code payload from a decoded image. E-visa letters
// and appointment confirmations usually carry their reference this way.
type QRDecoder interface {
	Decode(img image.Image) (string, error)
}

type qrDecoder struct{}

// NewQRDecoder creates a gozxing-backed QRDecoder.
func NewQRDecoder() QRDecoder {
	return &qrDecoder{}
}

func (d *qrDecoder) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}

	return result.GetText(), nil
}
