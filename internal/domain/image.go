package domain

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ImageData is an uploaded or generated image carried as a self-contained
// value: a base64 data-URL plus its mime type. Values are never mutated,
// only replaced.
type ImageData struct {
	DataURL  string `json:"data_url"`
	MimeType string `json:"mime_type"`
}

// ImageFromBytes wraps raw image bytes into a data-URL value.
func ImageFromBytes(data []byte, mimeType string) ImageData {
	return ImageData{
		DataURL:  fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)),
		MimeType: mimeType,
	}
}

// IsZero reports whether the value holds no image.
func (d ImageData) IsZero() bool {
	return strings.TrimSpace(d.DataURL) == ""
}

// Base64 returns the payload portion of the data-URL, without the
// "data:<mime>;base64," prefix.
func (d ImageData) Base64() string {
	if idx := strings.IndexByte(d.DataURL, ','); idx >= 0 {
		return d.DataURL[idx+1:]
	}
	return d.DataURL
}

// Bytes decodes the data-URL payload into raw image bytes.
func (d ImageData) Bytes() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(d.Base64())
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return raw, nil
}

// Dimensions decodes only the image header and returns pixel width and
// height. PNG, JPEG and GIF are recognized.
func (d ImageData) Dimensions() (int, int, error) {
	raw, err := d.Bytes()
	if err != nil {
		return 0, 0, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image dimensions: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// VideoAspectRatio classifies the image into the two aspect classes the
// video model accepts: landscape sources map to "16:9", everything else
// (portrait and square) to "9:16".
func (d ImageData) VideoAspectRatio() (string, error) {
	w, h, err := d.Dimensions()
	if err != nil {
		return "", err
	}
	if h > 0 && float64(w)/float64(h) > 1 {
		return "16:9", nil
	}
	return "9:16", nil
}
