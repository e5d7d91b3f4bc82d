package blob

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/metablob/encoding"
	"github.com/arloliu/metablob/errs"
	"github.com/arloliu/metablob/internal/hash"
	"github.com/arloliu/metablob/internal/pool"
	"github.com/arloliu/metablob/point"
	"github.com/arloliu/metablob/section"
)

// Write serializes the header and every point to the file at path, creating
// or truncating it.
//
// The file image is encoded in memory first: a point that cannot be encoded
// fails the call before the file is touched. Filesystem failures are
// reported as errs.ErrIO.
func (b *Blob) Write(path string) error {
	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	if err := b.encode(buf); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	n, writeErr := buf.WriteTo(f)
	if err := errors.Join(writeErr, f.Close()); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	b.logger.Debug().
		Str("path", path).
		Int("points", b.points.Len()).
		Bool("binary", b.binary).
		Stringer("element_type", b.elemType).
		Int64("bytes", n).
		Msg("blob written")

	return nil
}

// WriteTo writes the encoded file image to w. It implements io.WriterTo.
func (b *Blob) WriteTo(w io.Writer) (int64, error) {
	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	if err := b.encode(buf); err != nil {
		return 0, err
	}

	n, err := buf.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	return n, nil
}

// Fingerprint returns the xxHash64 of the encoded file image. Two blobs with
// the same fingerprint write identical files.
func (b *Blob) Fingerprint() (uint64, error) {
	d := hash.NewDigest()
	if _, err := b.WriteTo(d); err != nil {
		return 0, err
	}

	return d.Sum64(), nil
}

func (b *Blob) encode(buf *pool.ByteBuffer) error {
	h := b.header()
	if err := h.Validate(); err != nil {
		return err
	}

	codec, err := encoding.NewRecordCodec(encoding.Layout{
		ElementType: b.elemType,
		Dim:         b.dim,
		Aux:         len(b.auxNames),
		Binary:      b.binary,
		Engine:      h.Engine(),
	})
	if err != nil {
		return err
	}

	buf.B = h.AppendTo(buf.B)
	buf.Grow(b.points.Len() * codec.RecordWidth())

	for i, rec := range b.points.All() {
		if buf.B, err = codec.Append(buf.B, rec); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}

	return nil
}

// Read replaces the content of b with the blob stored in the file at path.
//
// The dimension, element type, encoding mode and byte order are taken from
// the file header. Read is all-or-nothing: on error b is left unchanged.
//
// Returns an error wrapping errs.ErrIO if the file cannot be opened or read,
// or errs.ErrFormat if its content is inconsistent: malformed header,
// missing mandatory key, invalid dimension or count, truncated binary data,
// or a record count that does not match NPoints.
func (b *Blob) Read(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	defer f.Close()

	n, err := b.ReadFrom(f)
	if err != nil {
		b.logger.Warn().Err(err).Str("path", path).Msg("blob read failed")
		return fmt.Errorf("read %s: %w", path, err)
	}

	b.logger.Debug().
		Str("path", path).
		Int("points", b.points.Len()).
		Bool("binary", b.binary).
		Stringer("element_type", b.elemType).
		Int64("bytes", n).
		Msg("blob read")

	return nil
}

// ReadFrom replaces the content of b with the blob read from r.
// It implements io.ReaderFrom and has the same semantics as Read.
func (b *Blob) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	br := bufio.NewReader(cr)

	h, _, err := section.ParseHeader(br)
	if err != nil {
		return cr.n, err
	}

	codec, err := encoding.NewRecordCodec(encoding.Layout{
		ElementType: h.ElementType,
		Dim:         h.NDims,
		Aux:         h.AuxCount(),
		Binary:      h.BinaryData,
		Engine:      h.Engine(),
	})
	if err != nil {
		return cr.n, fmt.Errorf("%w: %v", errs.ErrMalformedHeader, err)
	}

	list := point.NewList(h.NDims, h.AuxCount())
	if err := codec.ReadRecords(br, h.NPoints, list); err != nil {
		return cr.n, err
	}

	b.commit(h, list)

	return cr.n, nil
}

// countingReader counts the bytes read from the underlying reader.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}
