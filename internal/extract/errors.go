package extract

import "errors"

// Sentinel errors for outcomes callers branch on. Everything else coming out
// of Extract is a wrapped backend failure.
var (
	// ErrUnsupported means the file extension is not in the registry (or the
	// owning backend has no converter for it).
	ErrUnsupported = errors.New("unsupported file type")

	// ErrPasswordProtected means the document requires a password. Detection
	// is supported; decryption is not.
	ErrPasswordProtected = errors.New("document is password protected")

	// ErrProbe means the external stream-probing tool failed: missing binary,
	// non-zero exit, or unparsable output.
	ErrProbe = errors.New("media probe failed")
)

// FailureReason classifies an extraction error for callers that report
// outcomes (HTTP status mapping, CLI messages) without matching sentinels
// themselves.
type FailureReason string

const (
	// ReasonNone means no failure.
	ReasonNone FailureReason = ""
	// ReasonUnsupported covers ErrUnsupported.
	ReasonUnsupported FailureReason = "unsupported"
	// ReasonPasswordProtected covers ErrPasswordProtected.
	ReasonPasswordProtected FailureReason = "password_protected"
	// ReasonProbeFailed covers ErrProbe.
	ReasonProbeFailed FailureReason = "probe_failed"
	// ReasonParseFailed covers every other extraction failure.
	ReasonParseFailed FailureReason = "parse_failed"
)

// Reason maps err to its FailureReason. A nil error maps to ReasonNone.
func Reason(err error) FailureReason {
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, ErrUnsupported):
		return ReasonUnsupported
	case errors.Is(err, ErrPasswordProtected):
		return ReasonPasswordProtected
	case errors.Is(err, ErrProbe):
		return ReasonProbeFailed
	default:
		return ReasonParseFailed
	}
}
