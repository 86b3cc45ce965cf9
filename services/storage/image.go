package storage

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/disintegration/imaging"
)

// NormalizeImage decodes an uploaded image, bounds its width to maxWidth and
// re-encodes it as JPEG. The returned filename carries the ".jpg" extension.
func NormalizeImage(filename string, r io.Reader, maxWidth int) (string, io.Reader, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return "", nil, fmt.Errorf("encode %s: %w", filename, err)
	}
	return strings.TrimSuffix(filename, path.Ext(filename)) + ".jpg", &buf, nil
}
