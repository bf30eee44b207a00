package utils

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"github.com/skip2/go-qrcode"
)

// QRDir is where stock item QR PNGs are persisted, served as static files.
const QRDir = "public/qrcodes"

// GenerateQRCode renders the content as a PNG and returns the bytes.
func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	err = png.Encode(buf, qr.Image(size))
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// QRFileName sanitizes a stock unique ID into its on-disk PNG name.
func QRFileName(uniqueID string) string {
	return slug.Make(uniqueID) + ".png"
}

// SaveQRCode writes the QR PNG for a unique ID under QRDir and returns the
// relative path. The write sits outside any DB transaction; a failure here
// is logged by the caller, not rolled back (the orphan sweep compensates).
func SaveQRCode(uniqueID string, size int) (string, error) {
	data, err := GenerateQRCode(uniqueID, size)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(QRDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(QRDir, QRFileName(uniqueID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// RemoveQRCode deletes the PNG for a unique ID. Missing files are fine.
func RemoveQRCode(uniqueID string) error {
	err := os.Remove(filepath.Join(QRDir, QRFileName(uniqueID)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
