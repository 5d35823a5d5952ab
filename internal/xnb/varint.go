package xnb

import (
	"errors"
	"io"
)

// ErrVarintOverflow is returned by [ReadUvarint7] when the encoded value
// does not fit in 32 bits.
var ErrVarintOverflow = errors.New("xnb: 7-bit encoded integer overflows uint32")

// maxVarintLen is the longest 7-bit encoding of a uint32.
const maxVarintLen = 5

// AppendUvarint7 appends v as a 7-bit variable-length integer: low seven
// bits first, high bit set on every byte except the last.
func AppendUvarint7(buf []byte, v uint32) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// Uvarint7Len returns the number of bytes [AppendUvarint7] writes for v.
func Uvarint7Len(v uint32) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// ReadUvarint7 decodes one 7-bit variable-length integer from r.
func ReadUvarint7(r io.ByteReader) (uint32, error) {
	var v uint32
	for i := 0; i < maxVarintLen; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && i > 0 {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if i == maxVarintLen-1 && b > 0x0f {
			return 0, ErrVarintOverflow
		}
		v |= uint32(b&0x7f) << (7 * i)
		if b < 0x80 {
			return v, nil
		}
	}
	return 0, ErrVarintOverflow
}

// AppendString appends s as a length-prefixed string: the UTF-8 byte count
// as a 7-bit integer, then the bytes, no terminator.
func AppendString(buf []byte, s string) []byte {
	buf = AppendUvarint7(buf, uint32(len(s)))
	return append(buf, s...)
}

// ReadString decodes one length-prefixed string written by [AppendString].
func ReadString(r interface {
	io.Reader
	io.ByteReader
}) (string, error) {
	n, err := ReadUvarint7(r)
	if err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}
	return string(b), nil
}
