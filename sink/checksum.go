package sink

import (
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/varbit/endian"
)

// Checksum is a pass-through sink that computes the xxHash64 digest of
// every byte accepted by the inner writer.
//
// The digest covers the packed stream exactly as emitted, including the
// zero-padded trailing byte, and is meant to travel out-of-band next to the
// padding count. It is not encoded into the stream itself.
type Checksum struct {
	inner   io.Writer
	innerBW io.ByteWriter // non-nil when inner natively supports byte writes
	digest  *xxhash.Digest
	engine  endian.EndianEngine
	one     [1]byte
}

// NewChecksum wraps inner with xxHash64 accounting. The engine controls the
// byte order AppendSum uses to serialize the digest; pass
// endian.GetLittleEndianEngine() unless a big-endian consumer requires
// otherwise.
func NewChecksum(inner io.Writer, engine endian.EndianEngine) *Checksum {
	bw, _ := inner.(io.ByteWriter)

	return &Checksum{
		inner:   inner,
		innerBW: bw,
		digest:  xxhash.New(),
		engine:  engine,
	}
}

// Write forwards data to the inner writer and folds the accepted prefix
// into the digest.
func (c *Checksum) Write(data []byte) (int, error) {
	n, err := c.inner.Write(data)
	if n > 0 {
		_, _ = c.digest.Write(data[:n]) // xxhash.Digest.Write never fails
	}

	return n, err
}

// WriteByte forwards one byte to the inner writer and folds it into the
// digest if it was accepted.
func (c *Checksum) WriteByte(b byte) error {
	if c.innerBW != nil {
		if err := c.innerBW.WriteByte(b); err != nil {
			return err
		}
	} else {
		c.one[0] = b
		if _, err := c.inner.Write(c.one[:]); err != nil {
			return err
		}
	}

	c.one[0] = b
	_, _ = c.digest.Write(c.one[:])

	return nil
}

// Sum64 returns the xxHash64 digest of the bytes accepted so far.
func (c *Checksum) Sum64() uint64 {
	return c.digest.Sum64()
}

// AppendSum appends the 8-byte digest to dst using the configured byte
// order and returns the extended slice.
func (c *Checksum) AppendSum(dst []byte) []byte {
	return c.engine.AppendUint64(dst, c.digest.Sum64())
}

// Reset clears the digest for a fresh stream. The inner writer is not
// touched.
func (c *Checksum) Reset() {
	c.digest.Reset()
}
