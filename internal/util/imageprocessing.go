package util

import (
	"fmt"

	"github.com/h2non/bimg"
)

// IsImage reports whether the payload is a binary image format libvips can
// read. Payloads below the compression threshold are never re-encoded, so
// this probe must not touch the bytes.
func IsImage(data []byte) bool {
	return bimg.DetermineImageType(data) != bimg.UNKNOWN
}

// CompressImage bounds the longest dimension of the image and re-encodes it
// as JPEG at the given quality. Images already within the bound are still
// re-encoded, since callers only reach here past the size threshold.
func CompressImage(data []byte, maxDimension int, quality int) ([]byte, error) {
	img := bimg.NewImage(data)

	size, err := img.Size()
	if err != nil {
		return nil, fmt.Errorf("read image dimensions: %w", err)
	}

	width := size.Width
	height := size.Height
	if width >= height {
		if width > maxDimension {
			height = height * maxDimension / width
			width = maxDimension
		}
	} else {
		if height > maxDimension {
			width = width * maxDimension / height
			height = maxDimension
		}
	}

	output, err := img.Process(bimg.Options{
		Width:   width,
		Height:  height,
		Quality: quality,
		Type:    bimg.JPEG,
		Force:   true,
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
