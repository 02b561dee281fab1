package sink

import "io"

// Counting is a pass-through sink that counts the bytes accepted by the
// inner writer.
//
// Since a packed stream emits exactly ceil(totalBits/8) bytes, the count
// together with the padding report lets callers verify no bits were lost
// without buffering the stream.
type Counting struct {
	inner   io.Writer
	innerBW io.ByteWriter
	count   int64
	one     [1]byte
}

// NewCounting wraps inner with byte accounting.
func NewCounting(inner io.Writer) *Counting {
	bw, _ := inner.(io.ByteWriter)

	return &Counting{inner: inner, innerBW: bw}
}

// Write forwards data to the inner writer and counts the accepted prefix.
func (c *Counting) Write(data []byte) (int, error) {
	n, err := c.inner.Write(data)
	c.count += int64(n)

	return n, err
}

// WriteByte forwards one byte to the inner writer, counting it if accepted.
func (c *Counting) WriteByte(b byte) error {
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

	c.count++

	return nil
}

// Count returns the number of bytes accepted so far.
func (c *Counting) Count() int64 {
	return c.count
}

// Reset clears the count. The inner writer is not touched.
func (c *Counting) Reset() {
	c.count = 0
}
