package security

import (
	"context"
	"errors"
	"io"
	"testing"

	"go-hr-website/pkg/security/antivirus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScanner struct {
	result antivirus.ScanResult
}

func (s stubScanner) Scan(ctx context.Context, filename string, data io.Reader) antivirus.ScanResult {
	return s.result
}

func (s stubScanner) Name() string { return "stub" }

func TestResumeInspector(t *testing.T) {
	ctx := context.Background()
	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

	reason := func(t *testing.T, err error) string {
		t.Helper()
		var rejected *RejectedFileError
		require.True(t, errors.As(err, &rejected), "expected RejectedFileError, got %v", err)
		return rejected.Reason
	}

	t.Run("Should return the detected type of a clean resume", func(t *testing.T) {
		mime, err := NewResumeInspector(1<<20, nil, nil).Inspect(ctx, "cv.pdf", pdf)
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", mime)
	})

	t.Run("Should reject an empty file", func(t *testing.T) {
		_, err := NewResumeInspector(1<<20, nil, nil).Inspect(ctx, "cv.pdf", nil)
		assert.Equal(t, "The selected file is empty", reason(t, err))
	})

	t.Run("Should reject a file over the limit", func(t *testing.T) {
		_, err := NewResumeInspector(1<<20, nil, nil).Inspect(ctx, "cv.pdf", make([]byte, 1<<20+1))
		assert.Equal(t, "The file exceeds the 1 MB limit", reason(t, err))
	})

	t.Run("Should reject a disallowed type", func(t *testing.T) {
		_, err := NewResumeInspector(1<<20, nil, nil).Inspect(ctx, "cv.exe", []byte("MZ"))
		assert.Equal(t, MsgUnsupportedResume, reason(t, err))
	})

	t.Run("Should reject an infected file", func(t *testing.T) {
		scanner := stubScanner{result: antivirus.ScanResult{Infected: true, ThreatName: "Eicar-Test-Signature"}}
		_, err := NewResumeInspector(1<<20, scanner, nil).Inspect(ctx, "cv.pdf", pdf)
		assert.Equal(t, "The file was rejected by our security scan", reason(t, err))
	})

	t.Run("Should reject when the scan cannot complete", func(t *testing.T) {
		scanner := stubScanner{result: antivirus.ScanResult{Error: errors.New("connection refused")}}
		_, err := NewResumeInspector(1<<20, scanner, nil).Inspect(ctx, "cv.pdf", pdf)
		assert.Equal(t, "The file could not be checked. Please try again later", reason(t, err))
	})
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "***", MaskEmail("a"))
	assert.NotContains(t, MaskEmail("asha@example.com"), "asha@")
}
