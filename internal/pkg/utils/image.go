package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// DecodeBase64Image decodes a data-URI encoded image and returns the raw
// bytes plus the file extension taken from the MIME type.
func DecodeBase64Image(encoded string) ([]byte, string, error) {
	parts := strings.SplitN(encoded, ",", 2)
	if len(parts) != 2 {
		return nil, "", errors.New("image is not a valid data URI")
	}

	header := parts[0]
	if !strings.HasPrefix(header, "data:image/") || !strings.HasSuffix(header, ";base64") {
		return nil, "", errors.New("image data URI header is malformed")
	}
	ext := strings.TrimSuffix(strings.TrimPrefix(header, "data:image/"), ";base64")

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", err
	}
	return data, ext, nil
}

func ValidateImageFormat(ext string, allowedFormats []string) error {
	for _, format := range allowedFormats {
		if strings.EqualFold(ext, format) {
			return nil
		}
	}
	return fmt.Errorf("image format '%s' is not allowed", ext)
}

func ValidateImageSize(data []byte, maxSizeInMB int64) error {
	if int64(len(data)) > maxSizeInMB*1024*1024 {
		return fmt.Errorf("image exceeds the maximum size of %dMB", maxSizeInMB)
	}
	return nil
}
