package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorWriter struct {
	err error
}

func (w *errorWriter) Write([]byte) (int, error) {
	return 0, w.err
}

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(128)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 128, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(BlobBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	bb.MustWrite([]byte(" world"))
	require.NoError(t, bb.WriteByte('!'))
	assert.Equal(t, []byte("hello world!"), bb.Bytes())

	originalCap := bb.Cap()
	bb.Reset()
	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Clone(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte{1, 2, 3})

	out := bb.Clone()
	require.Equal(t, []byte{1, 2, 3}, out)

	out[0] = 9
	assert.Equal(t, byte(1), bb.B[0], "clone must not share memory with the buffer")
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	t.Run("zeroes reused capacity", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte{0xFF, 0xFF, 0xFF, 0xFF})
		bb.Reset()

		bb.ExtendOrGrow(4)
		assert.Equal(t, []byte{0, 0, 0, 0}, bb.Bytes())
	})

	t.Run("grows past capacity", func(t *testing.T) {
		bb := NewByteBuffer(2)
		bb.MustWrite([]byte{7})

		bb.ExtendOrGrow(10)
		require.Equal(t, 11, bb.Len())
		assert.Equal(t, byte(7), bb.B[0])
		assert.Equal(t, make([]byte, 10), bb.B[1:])
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(BlobBufferDefaultSize)
	bb.MustWrite([]byte("test data"))

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(BlobBufferDefaultSize)
	bb.MustWrite([]byte("test"))

	n, err := bb.WriteTo(&errorWriter{err: io.ErrShortWrite})

	assert.Equal(t, io.ErrShortWrite, err)
	assert.Equal(t, int64(0), n)
}

// =============================================================================
// ByteBuffer Grow Tests
// =============================================================================

func TestByteBuffer_Grow(t *testing.T) {
	tests := []struct {
		name    string
		filled  int
		request int
		minCap  int
		sameCap bool
	}{
		{name: "sufficient capacity", filled: 0, request: 100, minCap: BlobBufferDefaultSize, sameCap: true},
		{name: "zero bytes", filled: 0, request: 0, minCap: BlobBufferDefaultSize, sameCap: true},
		{name: "one byte past full", filled: BlobBufferDefaultSize, request: 1, minCap: BlobBufferDefaultSize + 1},
		{name: "more than default growth", filled: BlobBufferDefaultSize, request: BlobBufferDefaultSize * 10, minCap: BlobBufferDefaultSize * 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := NewByteBuffer(BlobBufferDefaultSize)
			bb.MustWrite(make([]byte, tt.filled))
			originalCap := bb.Cap()

			bb.Grow(tt.request)

			assert.GreaterOrEqual(t, bb.Cap(), tt.minCap)
			assert.Equal(t, tt.filled, bb.Len(), "length should not change")
			if tt.sameCap {
				assert.Equal(t, originalCap, bb.Cap(), "should not reallocate")
			}
		})
	}
}

func TestByteBuffer_Grow_PreservesData(t *testing.T) {
	bb := NewByteBuffer(BlobBufferDefaultSize)
	testData := []byte("important data that must be preserved")
	bb.MustWrite(testData)

	bb.Grow(BlobBufferDefaultSize * 2)

	assert.Equal(t, testData, bb.B, "data should be preserved after growth")
}

// =============================================================================
// Pool Tests
// =============================================================================

func TestGetBlobBuffer(t *testing.T) {
	bb := GetBlobBuffer()
	defer PutBlobBuffer(bb)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "pooled buffer should be empty")
	assert.GreaterOrEqual(t, bb.Cap(), BlobBufferDefaultSize)
}

func TestGetTextBuffer(t *testing.T) {
	bb := GetTextBuffer()
	defer PutTextBuffer(bb)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), TextBufferDefaultSize)
}

func TestPutBlobBuffer_NilBuffer(t *testing.T) {
	assert.NotPanics(t, func() {
		PutBlobBuffer(nil)
		PutTextBuffer(nil)
	})
}

func TestPool_ResetsClearsData(t *testing.T) {
	bb := GetBlobBuffer()
	bb.MustWrite([]byte("sensitive data"))

	PutBlobBuffer(bb)

	bb2 := GetBlobBuffer()
	defer PutBlobBuffer(bb2)
	assert.Equal(t, 0, bb2.Len(), "buffer should be empty after retrieval from pool")
	assert.Equal(t, 0, bb.Len(), "PutBlobBuffer should reset the buffer")
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	large := NewByteBuffer(1024)
	large.MustWrite([]byte("large"))
	p.Put(large)
	assert.Equal(t, 5, large.Len(), "buffers over threshold are dropped without reset")

	small := p.Get()
	small.MustWrite([]byte("small"))
	p.Put(small)
	assert.Equal(t, 0, small.Len(), "buffers under threshold are reset on Put")
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 50
	const numIterations = 500

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for range numGoroutines {
		go func() {
			defer wg.Done()
			for range numIterations {
				bb := GetBlobBuffer()
				bb.MustWrite([]byte("data"))
				assert.Equal(t, 4, bb.Len())
				PutBlobBuffer(bb)
			}
		}()
	}

	wg.Wait()
}

func BenchmarkPool_GetWritePut(b *testing.B) {
	data := make([]byte, 300)
	for b.Loop() {
		bb := GetBlobBuffer()
		bb.MustWrite(data)
		PutBlobBuffer(bb)
	}
}
