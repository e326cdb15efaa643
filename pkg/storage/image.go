package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxAvatarBytes is the upload ceiling enforced before any decoding.
const MaxAvatarBytes = 5 * 1024 * 1024

// Magic byte prefixes of the accepted avatar formats.
var imageMagicBytes = map[string][][]byte{
	"image/jpeg": {{0xFF, 0xD8, 0xFF}},
	"image/png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	"image/gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}},
	"image/webp": {{0x52, 0x49, 0x46, 0x46}},
}

var (
	ErrImageTooLarge    = errors.New("image exceeds the 5 MB limit")
	ErrNotAnImage       = errors.New("file is not a supported image format")
	ErrImageUndecodable = errors.New("image could not be decoded")
)

// ValidateAvatar checks size and sniffs the content type from magic
// bytes; the declared filename and Content-Type header are not
// trusted. Returns the detected MIME type.
func ValidateAvatar(data []byte) (string, error) {
	if len(data) > MaxAvatarBytes {
		return "", ErrImageTooLarge
	}
	for mime, prefixes := range imageMagicBytes {
		for _, prefix := range prefixes {
			if bytes.HasPrefix(data, prefix) {
				return mime, nil
			}
		}
	}
	return "", ErrNotAnImage
}

// NormalizeAvatar decodes the image, scales it down so its longest
// side is at most maxDimension, and re-encodes as JPEG. The output is
// what actually gets stored, regardless of the upload format.
func NormalizeAvatar(data []byte, maxDimension, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageUndecodable, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width > maxDimension || height > maxDimension {
		var newWidth, newHeight int
		if width >= height {
			newWidth = maxDimension
			newHeight = height * maxDimension / width
		} else {
			newHeight = maxDimension
			newWidth = width * maxDimension / height
		}
		if newWidth < 1 {
			newWidth = 1
		}
		if newHeight < 1 {
			newHeight = 1
		}

		resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)
		img = resized
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
