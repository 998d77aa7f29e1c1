package statexml

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrDecompress is returned for a payload that is neither XML nor a valid
// compressed stream.
var ErrDecompress = errors.New("cannot decompress layout state")

const maxUncompressedSize = 64 << 20

var (
	// xmlPrefix marks an uncompressed payload.
	xmlPrefix = []byte("<?xml")
	utf8BOM   = []byte("\xef\xbb\xbf")
)

// IsCompressed reports whether data needs Decompress before parsing.
// A byte order mark and leading whitespace before the XML declaration are
// ignored.
func IsCompressed(data []byte) bool {
	return !bytes.HasPrefix(trimXMLPrefix(data), xmlPrefix)
}

func trimXMLPrefix(data []byte) []byte {
	return bytes.TrimLeft(bytes.TrimPrefix(bytes.TrimLeft(data, " \t\r\n"), utf8BOM), " \t\r\n")
}

// Compress returns data as a big-endian uint32 length followed by a zlib
// stream, the layout produced by Qt's qCompress.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(data)))
	buf.Write(size[:])

	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("create zlib writer: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("compress state: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress state: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: payload too short", ErrDecompress)
	}
	expected := binary.BigEndian.Uint32(data[:4])
	if expected > maxUncompressedSize {
		return nil, fmt.Errorf("%w: declared size %d too large", ErrDecompress, expected)
	}
	zr, err := zlib.NewReader(bytes.NewReader(data[4:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	defer func() { _ = zr.Close() }()

	out, err := io.ReadAll(io.LimitReader(zr, maxUncompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	if uint32(len(out)) != expected {
		return nil, fmt.Errorf("%w: size mismatch", ErrDecompress)
	}
	return out, nil
}
