package adapter

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the algorithm used by the Compressing wrapper.
type Compression uint8

const (
	// CompressionZSTD indicates ZSTD compression (better ratio, good default).
	CompressionZSTD Compression = 0
	// CompressionLZ4 indicates LZ4 block compression (fast, lighter ratio).
	CompressionLZ4 Compression = 1
)

// frameHeaderSize is the per-record header: uncompressed size + compressed
// size, both uint32 little-endian. A compressed size of zero marks content
// that was stored uncompressed because compression did not pay off.
const frameHeaderSize = 8

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Compressing wraps an Adapter and transparently compresses record content
// before it reaches the backend. Loads decompress on the way out, so callers
// above the wrapper only ever see plain content.
type Compressing struct {
	inner Adapter
	algo  Compression
}

// NewCompressing creates a compressing wrapper around inner.
func NewCompressing(inner Adapter, algo Compression) *Compressing {
	return &Compressing{inner: inner, algo: algo}
}

// Save compresses the record content and delegates.
func (c *Compressing) Save(ctx context.Context, rec *Record) (bool, error) {
	framed, err := compressFrame(rec.Content, c.algo)
	if err != nil {
		return false, err
	}
	return c.inner.Save(ctx, &Record{Key: rec.Key, Content: framed})
}

// Load delegates and decompresses the stored content.
func (c *Compressing) Load(ctx context.Context, key string) (*Record, error) {
	rec, err := c.inner.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	content, err := decompressFrame(rec.Content, c.algo)
	if err != nil {
		return nil, err
	}
	return &Record{Key: key, Content: content}, nil
}

// Init passes through to the inner adapter.
func (c *Compressing) Init(ctx context.Context, key string, touch bool) (*Record, error) {
	return c.inner.Init(ctx, key, touch)
}

// Delete passes through to the inner adapter.
func (c *Compressing) Delete(ctx context.Context, key string) (bool, error) {
	return c.inner.Delete(ctx, key)
}

// compressFrame compresses data and prepends the frame header.
// Empty content maps to an empty frame so sentinel records survive the
// round trip byte-exact.
func compressFrame(data []byte, algo Compression) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var compressed []byte
	switch algo {
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		buf := make([]byte, bound)
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		compressed = buf[:n] // n == 0 means incompressible
	default:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		putZstdEncoder(enc)
	}

	// If compression doesn't help, store uncompressed
	if len(compressed) == 0 || len(compressed) >= len(data) {
		result := make([]byte, frameHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0)
		copy(result[frameHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, frameHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[frameHeaderSize:], compressed)
	return result, nil
}

// decompressFrame reverses compressFrame.
func decompressFrame(data []byte, algo Compression) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < frameHeaderSize {
		return nil, errors.New("frame too small for header")
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])

	if compressedSize == 0 {
		if uint32(len(data)) < frameHeaderSize+uncompressedSize {
			return nil, errors.New("frame data too small")
		}
		return data[frameHeaderSize : frameHeaderSize+uncompressedSize], nil
	}

	if uint32(len(data)) < frameHeaderSize+compressedSize {
		return nil, errors.New("compressed frame data too small")
	}
	payload := data[frameHeaderSize : frameHeaderSize+compressedSize]

	switch algo {
	case CompressionLZ4:
		result := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return result, nil
	default:
		dec := getZstdDecoder()
		decoded, err := dec.DecodeAll(payload, make([]byte, 0, uncompressedSize))
		putZstdDecoder(dec)
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return decoded, nil
	}
}
