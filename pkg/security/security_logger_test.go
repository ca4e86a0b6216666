package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger(level zapcore.Level) (*SecurityLogger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewSecurityLoggerWithZap(zap.New(core), "go-hr-website", "test"), logs
}

func TestSecurityLogger(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	t.Run("Should mask the applicant email on a failed submission", func(t *testing.T) {
		sl, logs := observedLogger(zapcore.InfoLevel)

		sl.LogSubmissionFailed(ctx, "asha@example.com", "Disk full")

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "submission_failed", entry.Message)
		assert.Equal(t, zapcore.InfoLevel, entry.Level)

		fields := entry.ContextMap()
		assert.Equal(t, "go-hr-website", fields["service"])
		assert.Equal(t, "test", fields["env"])
		assert.Equal(t, "email", fields["subject_type"])
		assert.Equal(t, "a***@example.com", fields["subject_value"])
		assert.Equal(t, "req-123", fields["request_id"])
		assert.Equal(t, `{"reason":"Disk full"}`, fields["details"])
		assert.Zero(t, logs.FilterFieldKey("email").Len())
		for _, v := range fields {
			assert.NotEqual(t, "asha@example.com", v)
		}
	})

	t.Run("Should log malware at error level with a hashed filename", func(t *testing.T) {
		sl, logs := observedLogger(zapcore.InfoLevel)

		sl.LogMalwareDetected(ctx, "cv.pdf", "clamav", "Eicar-Test-Signature")

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.ErrorLevel, entry.Level)
		assert.Equal(t, HashValue("cv.pdf"), entry.ContextMap()["subject_value"])
	})

	t.Run("Should drop info events below the configured level", func(t *testing.T) {
		sl, logs := observedLogger(zapcore.WarnLevel)

		sl.LogValidationFailed(ctx, []string{"email"})
		sl.LogCSRFRejected(ctx, "203.0.113.7", "curl/8", "/career")

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "csrf_rejected", logs.All()[0].Message)
		assert.Equal(t, "203.0.113.7", logs.All()[0].ContextMap()["ip"])
	})

	t.Run("Should ignore events on a nil logger", func(t *testing.T) {
		var sl *SecurityLogger
		assert.NotPanics(t, func() { sl.LogUploadRejected(ctx, "cv.pdf", "empty") })
		assert.NoError(t, sl.Sync())
	})
}
