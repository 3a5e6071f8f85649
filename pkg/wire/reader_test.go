package wire

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_LittleEndianScalars(t *testing.T) {
	r := NewReader([]byte{
		0x7F,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01,
	})

	assert.Equal(t, uint8(0x7F), r.Uint8())
	assert.Equal(t, uint16(0x1234), r.Uint16())
	assert.Equal(t, uint32(0x12345678), r.Uint32())
	assert.Equal(t, uint64(0x0123456789ABCDEF), r.Uint64())
	require.NoError(t, r.Err())
	assert.Equal(t, 15, r.Consumed())
	assert.Equal(t, 0, r.Remaining())
}

func TestReader_NoSignExtension(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	assert.Equal(t, uint32(0xFFFFFFFF), r.Uint32())
	require.NoError(t, r.Err())
}

func TestReader_Truncation(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		read func(r *Reader)
	}{
		{"uint8", nil, func(r *Reader) { r.Uint8() }},
		{"uint16", []byte{1}, func(r *Reader) { r.Uint16() }},
		{"uint32", []byte{1, 2, 3}, func(r *Reader) { r.Uint32() }},
		{"uint64", []byte{1, 2, 3, 4, 5, 6, 7}, func(r *Reader) { r.Uint64() }},
		{"fixed", make([]byte, 31), func(r *Reader) { r.Fixed(make([]byte, 32)) }},
		{"bytes", []byte{1, 2}, func(r *Reader) { r.Bytes(3) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(tc.data)
			tc.read(r)
			require.Error(t, r.Err())
			assert.True(t, errors.Is(r.Err(), ErrTruncatedInput))
			assert.Equal(t, 0, OffsetOf(r.Err()))
		})
	}
}

func TestReader_StickyError(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	r.Uint32()
	first := r.Err()
	require.Error(t, first)

	// later reads are no-ops and keep the first failure
	assert.Equal(t, uint8(0), r.Uint8())
	assert.Same(t, first, r.Err())
	assert.Equal(t, 0, r.Consumed())
}

func TestReader_ErrorReportsOffset(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	r.Uint32()
	r.Uint16()

	err := r.Err()
	require.Error(t, err)
	assert.Equal(t, 4, OffsetOf(err))
	assert.Contains(t, err.Error(), "offset 4")
	assert.Equal(t, ErrTruncatedInput, KindOf(err))
}

func TestReader_FixedCopiesOut(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	r := NewReader(buf)

	var dst [4]byte
	r.Fixed(dst[:])
	require.NoError(t, r.Err())

	buf[0] = 0xFF
	assert.Equal(t, [4]byte{1, 2, 3, 4}, dst)

	r = NewReader(buf)
	b := r.Bytes(2)
	buf[1] = 0xEE
	assert.Equal(t, []byte{0xFF, 2}, b)
}

func TestReader_ZeroHashWithTrailingBytes(t *testing.T) {
	data := make([]byte, 32+5)
	for i := 32; i < len(data); i++ {
		data[i] = 0xAA
	}

	r := NewReader(data)
	var hash [32]byte
	r.Fixed(hash[:])
	require.NoError(t, r.Err())
	assert.Equal(t, [32]byte{}, hash)
	assert.Equal(t, 32, r.Consumed())
	assert.Equal(t, 5, r.Remaining())
}

func TestReader_Reserved(t *testing.T) {
	t.Run("zero reserved field", func(t *testing.T) {
		r := NewReader([]byte{0, 0, 0, 0, 9})
		r.Reserved(Width32)
		require.NoError(t, r.Err())
		assert.Equal(t, uint8(9), r.Uint8())
	})

	t.Run("non-zero reserved field", func(t *testing.T) {
		r := NewReader([]byte{0xAA, 0, 1, 0, 0})
		r.Uint8()
		r.Reserved(Width32)
		require.Error(t, r.Err())
		assert.True(t, errors.Is(r.Err(), ErrReservedNotZero))
		assert.Equal(t, 1, OffsetOf(r.Err()))
	})

	t.Run("non-zero padding", func(t *testing.T) {
		r := NewReader([]byte{0, 0, 7})
		r.Padding(3)
		require.Error(t, r.Err())
		assert.True(t, errors.Is(r.Err(), ErrReservedNotZero))
		assert.Equal(t, 2, OffsetOf(r.Err()))
	})
}

func TestReader_Region(t *testing.T) {
	r := NewReader([]byte{9, 1, 2, 3, 4})
	r.Uint8()

	sub := r.Region(3, ErrSizeMismatch)
	assert.Equal(t, 1, sub.Offset())
	assert.Equal(t, uint16(0x0201), sub.Uint16())
	sub.Uint16()
	require.Error(t, sub.Err())
	assert.True(t, errors.Is(sub.Err(), ErrSizeMismatch))
	assert.Equal(t, 3, OffsetOf(sub.Err()))

	// the parent already moved past the region
	assert.Equal(t, 4, r.Consumed())
	require.NoError(t, r.Err())

	r.Join(sub)
	assert.True(t, errors.Is(r.Err(), ErrSizeMismatch))
}

func TestReader_RegionLongerThanInput(t *testing.T) {
	r := NewReader([]byte{1, 2})
	sub := r.Region(3, ErrArrayBudgetOverrun)
	require.Error(t, r.Err())
	assert.True(t, errors.Is(r.Err(), ErrTruncatedInput))
	assert.Equal(t, r.Err(), sub.Err())
}

func TestWriter_RoundTripScalars(t *testing.T) {
	w := NewWriter(0)
	w.Uint8(0x01)
	w.Uint16(0x0203)
	w.Uint32(0x04050607)
	w.Uint64(0x08090A0B0C0D0E0F)
	w.Reserved(Width32)
	w.Fixed([]byte{0xAA, 0xBB})
	w.Padding(2)
	require.NoError(t, w.Err())

	assert.Equal(t, []byte{
		0x01,
		0x03, 0x02,
		0x07, 0x06, 0x05, 0x04,
		0x0F, 0x0E, 0x0D, 0x0C, 0x0B, 0x0A, 0x09, 0x08,
		0, 0, 0, 0,
		0xAA, 0xBB,
		0, 0,
	}, w.Bytes())
}

func TestWriter_CountOverflow(t *testing.T) {
	w := NewWriter(0)
	w.Count(Width8, 256)
	require.Error(t, w.Err())
	assert.True(t, errors.Is(w.Err(), ErrCountOverflow))

	w = NewWriter(0)
	w.Count(Width16, 0xFFFF)
	require.NoError(t, w.Err())
	assert.Equal(t, []byte{0xFF, 0xFF}, w.Bytes())
}

func TestPaddingSize(t *testing.T) {
	assert.Equal(t, 0, PaddingSize(0, 8))
	assert.Equal(t, 7, PaddingSize(1, 8))
	assert.Equal(t, 0, PaddingSize(48, 8))
	assert.Equal(t, 4, PaddingSize(52, 8))
	assert.Equal(t, 0, PaddingSize(5, 0))
}

func TestWidth_Max(t *testing.T) {
	assert.Equal(t, uint64(0xFF), Width8.Max())
	assert.Equal(t, uint64(0xFFFF), Width16.Max())
	assert.Equal(t, uint64(0xFFFFFFFF), Width32.Max())
	assert.Equal(t, ^uint64(0), Width64.Max())
}

func TestWidth_Unsupported(t *testing.T) {
	assert.True(t, Width16.Valid())
	assert.False(t, Width(3).Valid())

	r := NewReader([]byte{1, 2, 3, 4})
	assert.Zero(t, r.Uint(Width(3)))
	require.Error(t, r.Err())
	assert.Equal(t, ErrUnsupportedWidth, KindOf(r.Err()))
	assert.False(t, errors.Is(r.Err(), ErrSizeMismatch))

	w := NewWriter(0)
	w.Uint(Width(3), 0)
	require.Error(t, w.Err())
	assert.Equal(t, ErrUnsupportedWidth, KindOf(w.Err()))
	assert.Zero(t, w.Len())
}

func TestCheckSize(t *testing.T) {
	require.NoError(t, CheckSize(10, 10))

	err := CheckSize(12, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSizeMismatch))
	assert.Equal(t, -1, OffsetOf(err))
	assert.NotContains(t, err.Error(), "offset")
}

func TestReader_Frame(t *testing.T) {
	t.Run("frames declared size", func(t *testing.T) {
		r := NewReader([]byte{7, 0, 0, 0, 0xAA, 0xBB, 0xCC, 0xDD})
		sub, declared := r.Frame()
		require.NoError(t, r.Err())
		assert.Equal(t, 7, declared)
		assert.Equal(t, 3, sub.Remaining())
		assert.Equal(t, 4, sub.Offset())
		assert.Equal(t, 1, r.Remaining())
	})

	t.Run("declared size beyond input", func(t *testing.T) {
		r := NewReader([]byte{9, 0, 0, 0, 1, 2})
		sub, _ := r.Frame()
		require.Error(t, r.Err())
		assert.True(t, errors.Is(r.Err(), ErrTruncatedInput))
		assert.Equal(t, 0, OffsetOf(r.Err()))
		assert.Error(t, sub.Err())
	})

	t.Run("record runs past declared size", func(t *testing.T) {
		r := NewReader([]byte{6, 0, 0, 0, 1, 2, 3, 4})
		sub, _ := r.Frame()
		require.NoError(t, r.Err())
		sub.Uint32()
		r.Join(sub)
		require.Error(t, r.Err())
		assert.True(t, errors.Is(r.Err(), ErrSizeMismatch))
		assert.Equal(t, 4, OffsetOf(r.Err()))
	})

	t.Run("size smaller than its own field", func(t *testing.T) {
		r := NewReader([]byte{2, 0, 0, 0})
		r.Frame()
		assert.True(t, errors.Is(r.Err(), ErrSizeMismatch))
	})
}
