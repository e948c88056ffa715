package jxl

import (
	"errors"

	"github.com/deepteams/jxl/internal/bitio"
	"github.com/deepteams/jxl/internal/container"
	"github.com/deepteams/jxl/internal/entropy"
	"github.com/deepteams/jxl/internal/modular"
	"github.com/deepteams/jxl/internal/vardct"
)

// kindOf classifies an error surfaced by a leaf package into the
// domain-neutral taxonomy, so every public entry point can return a single
// *Error regardless of which internal package actually detected the
// failure. Errors this function doesn't recognise are treated as
// bitstream-level (the most common catch-all: truncation/malformed data).
func kindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, container.ErrBadSignature),
		errors.Is(err, container.ErrMissingCodestream),
		errors.Is(err, container.ErrDuplicateCodestream),
		errors.Is(err, container.ErrTruncatedBox),
		errors.Is(err, container.ErrInvalidBoxSize):
		return KindSignature

	case errors.Is(err, container.ErrTruncatedHeader),
		errors.Is(err, container.ErrTruncatedFrameIndex):
		return KindHeaderParse

	case errors.Is(err, entropy.ErrEmptyDistribution),
		errors.Is(err, entropy.ErrSumMismatch),
		errors.Is(err, entropy.ErrSymbolOutOfRange),
		errors.Is(err, entropy.ErrUnknownMode),
		errors.Is(err, entropy.ErrContextOutOfRange),
		errors.Is(err, entropy.ErrStateUnderflow),
		errors.Is(err, entropy.ErrInvalidLZ77Match),
		errors.Is(err, entropy.ErrUnknownLZ77Marker),
		errors.Is(err, entropy.ErrAlphabetTooLarge),
		errors.Is(err, entropy.ErrTruncated):
		return KindEntropy

	case errors.Is(err, vardct.ErrTruncatedBlock),
		errors.Is(err, vardct.ErrUnknownANSMarker),
		errors.Is(err, vardct.ErrBlockCountMismatch),
		errors.Is(err, vardct.ErrUnknownPassIndex),
		errors.Is(err, vardct.ErrFrameChannelCount),
		errors.Is(err, modular.ErrChannelCountMismatch):
		return KindBlockData

	case errors.Is(err, bitio.ErrUnexpectedEOF),
		errors.Is(err, bitio.ErrVarintOverflow),
		errors.Is(err, bitio.ErrPaddingNotZero):
		return KindBitstream

	default:
		return KindBitstream
	}
}

// classify wraps err (if non-nil) as a *Error using kindOf.
func classify(err error) error {
	if err == nil {
		return nil
	}
	return wrapErr(kindOf(err), err)
}
