package antivirus

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// chunkSize stays well below clamd's default StreamMaxLength.
const chunkSize = 64 << 10

// ClamAVScanner streams files to a clamd daemon with the zINSTREAM command
type ClamAVScanner struct {
	address string        // TCP address (host:port) or Unix socket path
	timeout time.Duration // Connection and scan timeout
}

var _ Scanner = (*ClamAVScanner)(nil)

// NewClamAVScanner creates a ClamAV scanner
// address: TCP "localhost:3310" or Unix socket "/var/run/clamav/clamd.sock"
func NewClamAVScanner(address string, timeout time.Duration) *ClamAVScanner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ClamAVScanner{
		address: address,
		timeout: timeout,
	}
}

func (c *ClamAVScanner) Name() string {
	return "clamav"
}

func (c *ClamAVScanner) network() string {
	if strings.HasPrefix(c.address, "/") {
		return "unix"
	}
	return "tcp"
}

// Scan sends data to clamd and parses its verdict
func (c *ClamAVScanner) Scan(ctx context.Context, filename string, data io.Reader) ScanResult {
	result := ScanResult{ScannerName: c.Name()}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, c.network(), c.address)
	if err != nil {
		result.Error = fmt.Errorf("connect to clamd: %w", err)
		return result
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write([]byte("zINSTREAM\x00")); err != nil {
		result.Error = fmt.Errorf("send command: %w", err)
		return result
	}

	// Each chunk is prefixed with its length as a big-endian uint32;
	// a zero-length chunk ends the stream.
	buf := make([]byte, chunkSize)
	size := make([]byte, 4)
	for {
		n, readErr := data.Read(buf)
		if n > 0 {
			binary.BigEndian.PutUint32(size, uint32(n))
			if _, err := conn.Write(size); err != nil {
				result.Error = fmt.Errorf("send chunk size: %w", err)
				return result
			}
			if _, err := conn.Write(buf[:n]); err != nil {
				result.Error = fmt.Errorf("send chunk: %w", err)
				return result
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			result.Error = fmt.Errorf("read file data: %w", readErr)
			return result
		}
	}
	binary.BigEndian.PutUint32(size, 0)
	if _, err := conn.Write(size); err != nil {
		result.Error = fmt.Errorf("send end marker: %w", err)
		return result
	}

	reply, err := bufio.NewReader(conn).ReadString(0)
	if err != nil && err != io.EOF {
		result.Error = fmt.Errorf("read reply: %w", err)
		return result
	}
	return parseReply(result, reply)
}

// parseReply interprets "stream: OK", "stream: <name> FOUND" and "... ERROR".
func parseReply(result ScanResult, reply string) ScanResult {
	reply = strings.TrimSpace(strings.TrimRight(reply, "\x00"))
	switch {
	case strings.HasSuffix(reply, "FOUND"):
		result.Infected = true
		if _, threat, ok := strings.Cut(reply, ":"); ok {
			result.ThreatName = strings.TrimSpace(strings.TrimSuffix(threat, "FOUND"))
		}
	case strings.HasSuffix(reply, "ERROR"):
		result.Error = fmt.Errorf("clamd: %s", reply)
	case strings.HasSuffix(reply, "OK"):
	default:
		result.Error = fmt.Errorf("clamd: unexpected reply %q", reply)
	}
	return result
}
