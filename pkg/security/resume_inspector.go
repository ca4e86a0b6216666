package security

import (
	"bytes"
	"context"
	"fmt"

	"go-hr-website/pkg/security/antivirus"
)

// MsgUnsupportedResume is shown when the resume format is not accepted.
const MsgUnsupportedResume = "Please upload a PDF, Word, ODT, RTF, text or image file"

// RejectedFileError is returned when an uploaded resume is refused.
// Reason is safe to show to the applicant.
type RejectedFileError struct {
	Reason string
}

func (e *RejectedFileError) Error() string {
	return "resume rejected: " + e.Reason
}

// ResumeInspector checks size, type and (optionally) malware for resumes.
type ResumeInspector struct {
	maxBytes int64
	scanner  antivirus.Scanner
	logger   *SecurityLogger
}

func NewResumeInspector(maxBytes int64, scanner antivirus.Scanner, logger *SecurityLogger) *ResumeInspector {
	if scanner == nil {
		scanner = antivirus.NewNoOpScanner()
	}
	return &ResumeInspector{maxBytes: maxBytes, scanner: scanner, logger: logger}
}

// Inspect returns the detected MIME type of an acceptable resume, or a
// *RejectedFileError.
func (i *ResumeInspector) Inspect(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", i.reject(ctx, filename, "The selected file is empty")
	}
	if i.maxBytes > 0 && int64(len(data)) > i.maxBytes {
		return "", i.reject(ctx, filename, fmt.Sprintf("The file exceeds the %d MB limit", i.maxBytes>>20))
	}

	check := ValidateFile(filename, data)
	if !check.Valid {
		i.logger.LogUploadRejected(ctx, filename, check.Error)
		return "", &RejectedFileError{Reason: MsgUnsupportedResume}
	}

	scan := i.scanner.Scan(ctx, filename, bytes.NewReader(data))
	if scan.Error != nil {
		i.logger.LogUploadRejected(ctx, filename, "scan_failed: "+scan.Error.Error())
		return "", &RejectedFileError{Reason: "The file could not be checked. Please try again later"}
	}
	if scan.Infected {
		i.logger.LogMalwareDetected(ctx, filename, scan.ScannerName, scan.ThreatName)
		return "", &RejectedFileError{Reason: "The file was rejected by our security scan"}
	}

	return check.DetectedMIME, nil
}

func (i *ResumeInspector) reject(ctx context.Context, filename, reason string) error {
	i.logger.LogUploadRejected(ctx, filename, reason)
	return &RejectedFileError{Reason: reason}
}
