package ocr

import (
	"bytes"
	"fmt"
	"image"

	// Register decoders for the image formats the OCR path accepts.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ValidateImage checks that data decodes as one of the supported image
// formats (PNG, JPEG, TIFF, BMP) before it is handed to the OCR
// engine. Unsupported or corrupt pixel data is rejected with a
// descriptive error rather than silently producing garbage text.
func ValidateImage(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("image data is empty")
	}

	cfg, formatName, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("unsupported or corrupt image: %v", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%s image has invalid dimensions %dx%d", formatName, cfg.Width, cfg.Height)
	}

	return nil
}
