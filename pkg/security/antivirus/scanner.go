package antivirus

import (
	"context"
	"io"
	"time"
)

// ScanResult contains the result of a malware scan
type ScanResult struct {
	Infected    bool   // True if malware was detected
	ThreatName  string // Name of detected threat (empty if clean)
	ScannerName string // Name of scanner that produced this result
	Error       error  // Scan could not complete; callers treat this as a rejection
}

// Scanner is the interface for pluggable antivirus implementations
type Scanner interface {
	// Scan checks file content for malware
	Scan(ctx context.Context, filename string, data io.Reader) ScanResult

	// Name returns the scanner implementation name (for logging)
	Name() string
}

// NoOpScanner reports every file as clean. Used when no clamd is configured.
type NoOpScanner struct{}

var _ Scanner = (*NoOpScanner)(nil)

func NewNoOpScanner() *NoOpScanner {
	return &NoOpScanner{}
}

func (n *NoOpScanner) Scan(ctx context.Context, filename string, data io.Reader) ScanResult {
	return ScanResult{ScannerName: n.Name()}
}

func (n *NoOpScanner) Name() string {
	return "noop"
}

// FromAddress returns a ClamAV scanner for address, or a NoOpScanner when
// address is empty.
func FromAddress(address string, timeout time.Duration) Scanner {
	if address == "" {
		return NewNoOpScanner()
	}
	return NewClamAVScanner(address, timeout)
}
