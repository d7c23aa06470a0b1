// Package compress encodes values as tagged compressed payloads.
//
// A payload is laid out as
//
//	tag (1 byte) | uncompressed length (uvarint) | body
//
// where the tag names the algorithm that produced body. Compression that
// does not shrink the data falls back to an uncompressed body, so the tag
// actually written may be None even when LZ4 or Zstd was requested.
package compress

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/Altair-Bueno/encode"
)

// Tag identifies the compression algorithm of a payload. The values are
// part of the wire format.
type Tag uint8

const (
	// None stores the data as-is.
	None Tag = 0
	// LZ4 is LZ4 block compression: fast, moderate ratio.
	LZ4 Tag = 1
	// Zstd is zstd at the default level: better ratio for text-like data.
	Zstd Tag = 2
)

// ErrUnknownTag is returned for a Tag outside the known set.
var ErrUnknownTag = errors.New("compress: unknown compression tag")

var errIncompressible = errors.New("compress: data is incompressible")

// String returns the name of the tag.
func (t Tag) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseTag parses the name returned by Tag.String.
func ParseTag(name string) (Tag, error) {
	switch name {
	case "none":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return Zstd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTag, name)
	}
}

func (t Tag) Encode(dst encode.ByteDestination) error { return dst.AppendByte(byte(t)) }

// zstdEncoder is shared by every payload. EncodeAll is safe for
// concurrent use and a single-goroutine encoder keeps output deterministic.
var zstdEncoder *zstd.Encoder

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		panic("compress: zstd encoder initialization failed: " + err.Error())
	}
}

// Payload encodes Inner compressed with Algorithm.
//
// Inner is staged in a pooled buffer, compressed, and written with its
// header. Sizing a Payload with encode.SizeOf compresses it as well.
type Payload struct {
	Inner     encode.Encodable[encode.ByteDestination]
	Algorithm Tag
}

// New returns a Payload of inner compressed with tag.
func New(inner encode.Encodable[encode.ByteDestination], tag Tag) Payload {
	return Payload{Inner: inner, Algorithm: tag}
}

func (p Payload) Encode(dst encode.ByteDestination) error {
	return encode.Stage(p.Inner, func(raw []byte) error {
		tag, body, err := compress(raw, p.Algorithm)
		if err != nil {
			return err
		}
		return encode.NewTuple3[encode.ByteDestination](tag, encode.Uvarint(len(raw)), encode.Bytes(body)).Encode(dst)
	})
}

func compress(raw []byte, tag Tag) (Tag, []byte, error) {
	var (
		body []byte
		err  error
	)
	switch tag {
	case None:
		return None, raw, nil
	case LZ4:
		body, err = compressLZ4(raw)
	case Zstd:
		body, err = compressZstd(raw)
	default:
		return 0, nil, fmt.Errorf("%w: %d", ErrUnknownTag, uint8(tag))
	}
	if errors.Is(err, errIncompressible) {
		return None, raw, nil
	}
	return tag, body, err
}

func compressLZ4(data []byte) ([]byte, error) {
	destination := make([]byte, lz4.CompressBlockBound(len(data)))
	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	// CompressBlock returns 0 when it determines the data is incompressible.
	if written == 0 || written >= len(data) {
		return nil, errIncompressible
	}
	return destination[:written], nil
}

func compressZstd(data []byte) ([]byte, error) {
	compressed := zstdEncoder.EncodeAll(data, nil)
	if len(compressed) >= len(data) {
		return nil, errIncompressible
	}
	return compressed, nil
}
