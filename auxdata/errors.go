package auxdata

import "errors"

// NOTE ON NAMING & PREFIXING
// Every message is prefixed with "auxdata: ...". Sentinels are returned
// wrapped with file context via fmt.Errorf("...: %w", ErrX); callers match
// with errors.Is.

var (
	// ErrDataUnavailable indicates the auxiliary file is missing or
	// unreadable. The store never fabricates data; the caller decides
	// whether an identity transform is an acceptable substitute.
	ErrDataUnavailable = errors.New("auxdata: data file unavailable")

	// ErrBadToken indicates a whitespace-separated token could not be
	// parsed as a number.
	ErrBadToken = errors.New("auxdata: malformed numeric token")

	// ErrBadShuffleIndex indicates a shuffle entry outside the valid
	// coordinate range for the requested dimension.
	ErrBadShuffleIndex = errors.New("auxdata: shuffle index out of range")

	// ErrUnsupportedVersion indicates the requested version/function-id
	// combination has no published sizing rule.
	ErrUnsupportedVersion = errors.New("auxdata: unsupported suite version or function id")
)
