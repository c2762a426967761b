package huffio

import (
	"bufio"
	"io"
)

// Encode compresses src onto dst: a frequency-table header followed by
// the packed bitstream.  The source is scanned twice, once to count
// bytes and once to emit codes, which is why it must be seekable.
// Encoding an empty source yields ErrEmptyInput.
func Encode(dst io.Writer, src io.ReadSeeker) error {
	br := bufio.NewReader(src)
	freqs, err := CountBytes(br)
	if err != nil {
		return err
	}
	if _, err := freqs.WriteTo(dst); err != nil {
		return err
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	br.Reset(src)

	w := NewWriter(dst, NewTree(freqs))
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := w.WriteByte(b); err != nil {
			return err
		}
	}
	return w.Close()
}

// Decode reads a header and bitstream produced by Encode from src and
// writes the original bytes to dst.  The bitstream carries no length;
// decoding stops when the end-of-stream code is reached.  A source that
// ends first yields io.ErrUnexpectedEOF.
func Decode(dst io.Writer, src io.Reader) error {
	br := bufio.NewReader(src)
	freqs, err := ReadFrequencies(br)
	if err != nil {
		return err
	}

	r := NewReader(dst, NewTree(freqs))
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
		more, err := r.Feed(b)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}
