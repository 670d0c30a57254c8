package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_AppendPair(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.AppendPair(3, 'a')
	bb.AppendPair(255, 0)

	assert.Equal(t, []byte{3, 'a', 255, 0}, bb.Bytes())
	assert.Equal(t, 4, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	bb.AppendPair(1, 2)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Clone(t *testing.T) {
	t.Run("copy is independent", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.AppendPair(2, 'x')

		out := bb.Clone()
		bb.Reset()
		bb.AppendPair(9, 9)

		require.Equal(t, []byte{2, 'x'}, out)
	})

	t.Run("empty buffer yields empty non-nil slice", func(t *testing.T) {
		out := NewByteBuffer(8).Clone()
		require.NotNil(t, out)
		require.Empty(t, out)
	})
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns reset buffer", func(t *testing.T) {
		p := NewByteBufferPool(16, 64)
		bb := p.Get()
		require.NotNil(t, bb)
		bb.AppendPair(1, 1)
		p.Put(bb)

		again := p.Get()
		require.Equal(t, 0, again.Len())
	})

	t.Run("put nil is a no-op", func(t *testing.T) {
		p := NewByteBufferPool(16, 64)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		bb := NewByteBuffer(128)
		require.NotPanics(t, func() { p.Put(bb) })
	})

	t.Run("concurrent use", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func(v byte) {
				defer wg.Done()
				bb := GetEncodeBuffer()
				bb.AppendPair(v, v)
				assert.Equal(t, []byte{v, v}, bb.Bytes())
				PutEncodeBuffer(bb)
			}(byte(i))
		}
		wg.Wait()
	})
}
