package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFile(t *testing.T) {
	t.Run("Should accept a PDF resume", func(t *testing.T) {
		res := ValidateFile("cv.PDF", []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n"))
		assert.True(t, res.Valid, res.Error)
		assert.Equal(t, ".pdf", res.Extension)
		assert.Equal(t, "application/pdf", res.DetectedMIME)
	})

	t.Run("Should accept a plain text resume", func(t *testing.T) {
		res := ValidateFile("cv.txt", []byte("Asha, recruiter, five years of experience"))
		assert.True(t, res.Valid, res.Error)
		assert.Equal(t, "text/plain", res.DetectedMIME)
	})

	t.Run("Should accept a scanned resume image", func(t *testing.T) {
		png := ValidateFile("cv.png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
		assert.True(t, png.Valid, png.Error)
		assert.Equal(t, "image/png", png.DetectedMIME)

		jpg := ValidateFile("cv.JPG", []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00"))
		assert.True(t, jpg.Valid, jpg.Error)
		assert.Equal(t, "image/jpeg", jpg.DetectedMIME)
	})

	t.Run("Should reject a PNG renamed to JPEG", func(t *testing.T) {
		res := ValidateFile("cv.jpg", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
		assert.False(t, res.Valid)
		assert.Equal(t, "file content does not match extension", res.Error)
	})

	t.Run("Should reject a file without extension", func(t *testing.T) {
		res := ValidateFile("resume", []byte("%PDF-1.4"))
		assert.False(t, res.Valid)
		assert.Equal(t, "file has no extension", res.Error)
	})

	t.Run("Should reject an executable", func(t *testing.T) {
		res := ValidateFile("cv.exe", []byte("MZ\x90\x00"))
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "not allowed")
	})

	t.Run("Should reject content that does not match the extension", func(t *testing.T) {
		res := ValidateFile("cv.pdf", []byte("<html><body>hi</body></html>"))
		assert.False(t, res.Valid)
		assert.Equal(t, "file content does not match extension", res.Error)
	})
}

func TestValidateFileExtension(t *testing.T) {
	assert.NoError(t, ValidateFileExtension("cv.docx"))
	assert.NoError(t, ValidateFileExtension("scan.jpeg"))
	assert.Error(t, ValidateFileExtension("cv.zip"))
	assert.Error(t, ValidateFileExtension("cv"))
}
