package qr

import qrcode "github.com/skip2/go-qrcode"

// PNG renders the join URL as a scannable QR image, sized for projection.
func PNG(joinURL string) ([]byte, error) {
	return qrcode.Encode(joinURL, qrcode.Medium, 512)
}
