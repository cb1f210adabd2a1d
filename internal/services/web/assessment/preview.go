package assessment

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	previewMaxWidth  = 640
	previewMaxHeight = 480
	previewQuality   = 85
)

// Preview is an inline rendition of the selected image.
type Preview struct {
	DataURI string
	Width   int
	Height  int
}

// NewPreview builds a bounded JPEG thumbnail. Formats the imaging decoders
// do not cover are embedded as-is when declared as image/*.
func NewPreview(data []byte, mediaType string) (Preview, error) {
	if len(data) == 0 {
		return Preview{}, errors.New("preview: empty image")
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		if !isImageType(mediaType) {
			return Preview{}, fmt.Errorf("preview: decode image: %w", err)
		}
		return Preview{DataURI: dataURI(mediaType, data)}, nil
	}
	bounds := img.Bounds()
	if bounds.Dx() > previewMaxWidth || bounds.Dy() > previewMaxHeight {
		img = imaging.Fit(img, previewMaxWidth, previewMaxHeight, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(previewQuality)); err != nil {
		return Preview{}, fmt.Errorf("preview: encode thumbnail: %w", err)
	}
	size := img.Bounds()
	return Preview{
		DataURI: dataURI("image/jpeg", buf.Bytes()),
		Width:   size.Dx(),
		Height:  size.Dy(),
	}, nil
}

func dataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
