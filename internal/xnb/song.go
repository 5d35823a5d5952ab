// Package xnb encodes streaming Song .xnb descriptors: a fixed XNB header
// naming two type readers, followed by the file name of the external audio
// file and its duration in milliseconds. The audio itself is never embedded.
package xnb

import (
	"encoding/binary"
	"io"
)

// Header constants.
const (
	Magic          = "XNB"
	PlatformWindow = 'w'
	FormatVersion  = 5
	FlagsNone      = 0
)

// Type reader names understood by the content runtime.
const (
	SongReaderName  = "Microsoft.Xna.Framework.Content.SongReader"
	Int32ReaderName = "Microsoft.Xna.Framework.Content.Int32Reader"
)

// Type ids are 1-based indexes into the type reader table.
const (
	SongTypeID  = 1
	Int32TypeID = 2
)

// HeaderOverhead is the byte count of every fixed field in a song
// descriptor: everything except the streaming file name and its own length
// prefix. The declared size field is HeaderOverhead plus the UTF-8 length of
// the file name.
const HeaderOverhead = len(Magic) + // magic
	1 + // platform
	1 + // format version
	1 + // flags
	4 + // declared size
	1 + // type reader count (2 fits in one 7-bit byte)
	1 + len(SongReaderName) + 4 + // reader 1: prefix, name, version
	1 + len(Int32ReaderName) + 4 + // reader 2: prefix, name, version
	1 + // shared resource count
	1 + // primary object type id
	1 + // duration type id
	4 // duration value

// TypeReader names one deserializer in the descriptor's reader table.
type TypeReader struct {
	Name    string
	Version int32
}

// songReaders is the fixed reader table: index 0 is type id 1.
var songReaders = [2]TypeReader{
	{Name: SongReaderName, Version: 0},
	{Name: Int32ReaderName, Version: 0},
}

// Song is the in-memory form of a streaming song descriptor. Only the file
// name and duration vary; every other field is fixed.
type Song struct {
	// Filename is the audio file name without any directory component.
	Filename string
	// DurationMs is the playback length in milliseconds.
	DurationMs int32
}

// DeclaredSize is the value written to the header's size field.
func (s Song) DeclaredSize() uint32 {
	return uint32(HeaderOverhead + len(s.Filename))
}

// EncodedLen is the exact number of bytes [Song.AppendBinary] produces.
func (s Song) EncodedLen() int {
	return HeaderOverhead + Uvarint7Len(uint32(len(s.Filename))) + len(s.Filename)
}

// AppendBinary appends the descriptor's wire form to buf. Output is fully
// determined by Filename and DurationMs.
func (s Song) AppendBinary(buf []byte) ([]byte, error) {
	buf = append(buf, Magic...)
	buf = append(buf, PlatformWindow, FormatVersion, FlagsNone)
	buf = binary.LittleEndian.AppendUint32(buf, s.DeclaredSize())

	buf = AppendUvarint7(buf, uint32(len(songReaders)))
	for _, tr := range songReaders {
		buf = AppendString(buf, tr.Name)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(tr.Version))
	}

	buf = append(buf, 0)          // shared resource count
	buf = append(buf, SongTypeID) // primary object: Song
	buf = AppendString(buf, s.Filename)
	buf = append(buf, Int32TypeID) // duration is a polymorphic Int32
	buf = binary.LittleEndian.AppendUint32(buf, uint32(s.DurationMs))
	return buf, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s Song) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, s.EncodedLen()))
}

// WriteTo writes the descriptor to w.
func (s Song) WriteTo(w io.Writer) (int64, error) {
	b, err := s.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}
