package security

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // Detected MIME type, parameters stripped
	Error        string // Error message if validation failed
}

// Magic byte signatures for resume formats, keyed by lowercase extension.
// Images cover scanned resumes.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
	".odt":  {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
	".rtf":  {{0x7B, 0x5C, 0x72, 0x74, 0x66}},                   // {\rtf
	".txt":  {},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}}, // PNG
	".jpg":  {{0xFF, 0xD8, 0xFF}},                               // JPEG SOI
	".jpeg": {{0xFF, 0xD8, 0xFF}},                               // JPEG SOI
}

// MIME types accepted per extension. Office formats are sometimes only
// recognised as their container (zip / OLE storage).
var allowedMIMETypes = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword", "application/x-ole-storage"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	".odt":  {"application/vnd.oasis.opendocument.text", "application/zip"},
	".rtf":  {"text/rtf", "application/rtf"},
	".txt":  {"text/plain"},
	".png":  {"image/png"},
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
}

// ValidateFile performs 3-layer file validation:
// 1. Extension whitelist check
// 2. Magic byte verification (content matches extension)
// 3. MIME type detected from content must match the extension
func ValidateFile(filename string, data []byte) FileValidationResult {
	var result FileValidationResult

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	// Layer 1: Extension whitelist
	mimes, ok := allowedMIMETypes[ext]
	if !ok {
		result.Error = "file type not allowed: " + ext
		return result
	}

	// Layer 2: Magic bytes
	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	// Layer 3: Content sniffing
	detected := baseMIME(mimetype.Detect(data).String())
	result.DetectedMIME = detected
	for _, m := range mimes {
		if m == detected {
			result.Valid = true
			return result
		}
	}
	result.Error = "file content type not allowed: " + detected
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}
	if len(signatures) == 0 {
		return len(data) > 0
	}
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// ValidateFileExtension checks only the extension (for quick pre-validation)
func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("file has no extension")
	}
	if _, ok := allowedMIMETypes[ext]; !ok {
		return errors.New("file type not allowed: " + ext)
	}
	return nil
}

// AllowedExtensions returns the accepted resume extensions, for the file input's accept attribute
func AllowedExtensions() []string {
	return []string{".pdf", ".doc", ".docx", ".odt", ".rtf", ".txt", ".png", ".jpg", ".jpeg"}
}

func baseMIME(m string) string {
	return strings.TrimSpace(strings.SplitN(m, ";", 2)[0])
}
