package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"sgac_app_go/validation"
)

// Evidence documents accepted for publications, by sniffed content type
var AllowedEvidenceTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
}

// ErrFileTooLarge is returned when an upload exceeds the configured limit
var ErrFileTooLarge = errors.New("file size exceeds the maximum allowed size")

// ValidateEvidenceUpload checks size and content of an uploaded evidence file.
// The content type is sniffed from the first bytes; the client supplied header is ignored.
func ValidateEvidenceUpload(fileHeader *multipart.FileHeader, maxBytes int64) (string, error) {
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		return "", fmt.Errorf("%w of %d MB", ErrFileTooLarge, maxBytes/(1024*1024))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file content: %w", err)
	}
	if n == 0 {
		return "", validation.Errors{"file": {"The submitted file is empty."}}
	}

	mimeType := http.DetectContentType(buffer[:n])
	if _, ok := AllowedEvidenceTypes[mimeType]; !ok {
		return "", validation.Errors{"file": {"File type not allowed. Accepted formats: PDF, PNG, JPEG."}}
	}
	return mimeType, nil
}
