package bitstream

import "errors"

var (
	// ErrInvalidBitCount reports a bit count outside the valid range of the
	// entry point it was passed to: negative, or larger than the bit-width
	// of the value type. It is detected before any bit is consumed, so the
	// writer's state is unchanged when this error is returned.
	ErrInvalidBitCount = errors.New("bit count exceeds value width")

	// ErrSink reports that the byte sink rejected a write. The underlying
	// cause is attached and can be recovered with errors.Unwrap or matched
	// with errors.Is/errors.As. Sink failures are never retried internally.
	ErrSink = errors.New("byte sink write failed")
)
