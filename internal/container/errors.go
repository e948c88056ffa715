package container

import "errors"

var (
	ErrBadSignature       = errors.New("container: invalid codestream signature")
	ErrTruncatedHeader    = errors.New("container: truncated header")
	ErrTruncatedBox       = errors.New("container: box extends past end of data")
	ErrMissingCodestream  = errors.New("container: no jxlc box present")
	ErrDuplicateCodestream = errors.New("container: more than one jxlc box present")
	ErrTruncatedFrameIndex = errors.New("container: truncated frame index entry")
	ErrInvalidBoxSize     = errors.New("container: box size smaller than header")
)
