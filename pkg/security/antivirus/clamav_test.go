package antivirus

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply(t *testing.T) {
	t.Run("Should report a clean stream", func(t *testing.T) {
		res := parseReply(ScanResult{}, "stream: OK\x00")
		assert.False(t, res.Infected)
		assert.NoError(t, res.Error)
	})

	t.Run("Should report the threat name", func(t *testing.T) {
		res := parseReply(ScanResult{}, "stream: Eicar-Test-Signature FOUND\x00")
		assert.True(t, res.Infected)
		assert.Equal(t, "Eicar-Test-Signature", res.ThreatName)
	})

	t.Run("Should treat clamd errors as failed scans", func(t *testing.T) {
		res := parseReply(ScanResult{}, "INSTREAM size limit exceeded. ERROR")
		assert.Error(t, res.Error)
	})

	t.Run("Should treat unknown replies as failed scans", func(t *testing.T) {
		res := parseReply(ScanResult{}, "")
		assert.Error(t, res.Error)
	})
}

// fakeClamd accepts one zINSTREAM session and replies with reply.
func fakeClamd(t *testing.T, reply string) (string, <-chan []byte) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		cmd := make([]byte, len("zINSTREAM\x00"))
		if _, err := io.ReadFull(conn, cmd); err != nil {
			return
		}
		var data bytes.Buffer
		size := make([]byte, 4)
		for {
			if _, err := io.ReadFull(conn, size); err != nil {
				return
			}
			n := binary.BigEndian.Uint32(size)
			if n == 0 {
				break
			}
			if _, err := io.CopyN(&data, conn, int64(n)); err != nil {
				return
			}
		}
		received <- data.Bytes()
		conn.Write([]byte(reply + "\x00"))
	}()
	return ln.Addr().String(), received
}

func TestClamAVScanner(t *testing.T) {
	t.Run("Should stream the file and parse a clean verdict", func(t *testing.T) {
		addr, received := fakeClamd(t, "stream: OK")
		payload := strings.Repeat("resume ", chunkSize/4)

		res := NewClamAVScanner(addr, 2*time.Second).Scan(context.Background(), "cv.txt", strings.NewReader(payload))
		require.NoError(t, res.Error)
		assert.False(t, res.Infected)
		assert.Equal(t, "clamav", res.ScannerName)
		assert.Equal(t, payload, string(<-received))
	})

	t.Run("Should report infected files", func(t *testing.T) {
		addr, _ := fakeClamd(t, "stream: Eicar-Test-Signature FOUND")

		res := NewClamAVScanner(addr, 2*time.Second).Scan(context.Background(), "cv.txt", strings.NewReader("X5O!P%@AP"))
		assert.True(t, res.Infected)
		assert.Equal(t, "Eicar-Test-Signature", res.ThreatName)
	})

	t.Run("Should fail when clamd is unreachable", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := ln.Addr().String()
		ln.Close()

		res := NewClamAVScanner(addr, time.Second).Scan(context.Background(), "cv.txt", strings.NewReader("x"))
		assert.Error(t, res.Error)
	})
}

func TestFromAddress(t *testing.T) {
	assert.Equal(t, "noop", FromAddress("", 0).Name())
	assert.Equal(t, "clamav", FromAddress("localhost:3310", 0).Name())
}
