package probe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/status"
)

// ClassifyError converts a transport error into an Error status:
// timeouts become "timeout", connection-level failures "network:<cause>"
// and anything else "unknown:<cause>".
func ClassifyError(err error) status.Status {
	if err == nil {
		return status.Unknown("nil")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Timeout()
	}
	if errors.Is(err, context.Canceled) {
		return status.Unknown("canceled")
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return status.Timeout()
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return status.Network("dns")
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return status.Network("refused")
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return status.Network("reset")
	}
	if isTLSError(err) {
		return status.Network("tls")
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return status.Network("eof")
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return status.Network(opErr.Op)
	}

	cause := err
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		cause = urlErr.Err
	}
	return status.Unknown(strings.TrimPrefix(fmt.Sprintf("%T", cause), "*"))
}

func isTLSError(err error) bool {
	var (
		recErr    tls.RecordHeaderError
		verifyErr *tls.CertificateVerificationError
		unknownCA x509.UnknownAuthorityError
		hostErr   x509.HostnameError
		invalid   x509.CertificateInvalidError
	)
	return errors.As(err, &recErr) ||
		errors.As(err, &verifyErr) ||
		errors.As(err, &unknownCA) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalid)
}
