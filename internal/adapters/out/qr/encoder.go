// Package qr renders pickup tokens as QR codes for the restaurant counter.
package qr

import (
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

// Encoder implements ports.QREncoder.
type Encoder struct {
	size  int
	level qrcode.RecoveryLevel
}

func NewEncoder() Encoder {
	return Encoder{size: defaultSize, level: qrcode.Medium}
}

// EncodePNG returns a square PNG of the encoder's size.
func (e Encoder) EncodePNG(payload string) ([]byte, error) {
	return qrcode.Encode(payload, e.level, e.size)
}
