package service

import (
	"context"
	"io"
)

// ImageStore uploads listing photos and returns their public URL.
type ImageStore interface {
	Upload(ctx context.Context, name string, contentType string, body io.Reader) (string, error)
}

// QRCodeService renders content as a PNG QR code.
type QRCodeService interface {
	Encode(content string) ([]byte, error)
}
