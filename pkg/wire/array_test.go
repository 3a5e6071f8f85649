package wire

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type byteItem uint8

func (v byteItem) Size() int { return 1 }

func (v byteItem) Serialize(w *Writer) { w.Uint8(uint8(v)) }

func readByteItem(r *Reader) byteItem { return byteItem(r.Uint8()) }

type shortItem uint16

func (v shortItem) Size() int { return 2 }

func (v shortItem) Serialize(w *Writer) { w.Uint16(uint16(v)) }

func readShortItem(r *Reader) shortItem { return shortItem(r.Uint16()) }

// blobItem has a variable size: a one byte length followed by that many bytes.
type blobItem []byte

func (v blobItem) Size() int { return 1 + len(v) }

func (v blobItem) Serialize(w *Writer) {
	w.Count(Width8, len(v))
	w.Fixed(v)
}

func readBlobItem(r *Reader) blobItem {
	n := r.Uint8()
	return blobItem(r.Bytes(int(n)))
}

func TestPrefixedArray_Encode(t *testing.T) {
	w := NewWriter(0)
	WritePrefixedArray(w, Width8, []byteItem{7, 9, 11})
	require.NoError(t, w.Err())
	assert.Equal(t, []byte{0x03, 0x07, 0x09, 0x0B}, w.Bytes())
}

func TestPrefixedArray_Decode(t *testing.T) {
	items, n, err := Unmarshal([]byte{0x03, 0x07, 0x09, 0x0B, 0xFF}, func(r *Reader) []byteItem {
		return ReadPrefixedArray(r, Width8, readByteItem)
	})
	require.NoError(t, err)
	assert.Equal(t, []byteItem{7, 9, 11}, items)
	assert.Equal(t, 4, n)
}

func TestPrefixedArray_CountWidths(t *testing.T) {
	for _, width := range []Width{Width8, Width16, Width32, Width64} {
		w := NewWriter(0)
		WritePrefixedArray(w, width, []shortItem{1, 2})
		require.NoError(t, w.Err())
		assert.Len(t, w.Bytes(), int(width)+4)

		r := NewReader(w.Bytes())
		items := ReadPrefixedArray(r, width, readShortItem)
		require.NoError(t, r.Err())
		assert.Equal(t, []shortItem{1, 2}, items)
		assert.Equal(t, 0, r.Remaining())
	}
}

func TestPrefixedArray_Empty(t *testing.T) {
	w := NewWriter(0)
	WritePrefixedArray[byteItem](w, Width16, nil)
	require.NoError(t, w.Err())
	assert.Equal(t, []byte{0, 0}, w.Bytes())

	r := NewReader(w.Bytes())
	items := ReadPrefixedArray(r, Width16, readByteItem)
	require.NoError(t, r.Err())
	assert.Nil(t, items)
	assert.Equal(t, 2, r.Consumed())
}

func TestPrefixedArray_VariableSizeElements(t *testing.T) {
	in := []blobItem{{1}, {}, {2, 3, 4}}
	w := NewWriter(ArraySize(in) + 1)
	WritePrefixedArray(w, Width8, in)
	require.NoError(t, w.Err())
	assert.Equal(t, 1+ArraySize(in), w.Len())

	r := NewReader(w.Bytes())
	out := ReadPrefixedArray(r, Width8, readBlobItem)
	require.NoError(t, r.Err())
	require.Len(t, out, 3)
	assert.Equal(t, blobItem{1}, out[0])
	assert.Empty(t, out[1])
	assert.Equal(t, blobItem{2, 3, 4}, out[2])
}

func TestPrefixedArray_CountBeyondInput(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 1, 2})
	items := ReadPrefixedArray(r, Width64, readByteItem)
	assert.Nil(t, items)
	require.Error(t, r.Err())
	assert.True(t, errors.Is(r.Err(), ErrTruncatedInput))
}

func TestPrefixedArray_CountOverflowOnEncode(t *testing.T) {
	items := make([]byteItem, 256)
	w := NewWriter(0)
	WritePrefixedArray(w, Width8, items)
	require.Error(t, w.Err())
	assert.True(t, errors.Is(w.Err(), ErrCountOverflow))
}

func TestPrefixedArray_Truncation(t *testing.T) {
	w := NewWriter(0)
	WritePrefixedArray(w, Width8, []shortItem{1, 2, 3})
	data := w.Bytes()

	for cut := 1; cut < len(data); cut++ {
		r := NewReader(data[:len(data)-cut])
		ReadPrefixedArray(r, Width8, readShortItem)
		require.Error(t, r.Err(), "cut %d", cut)
		assert.True(t, errors.Is(r.Err(), ErrTruncatedInput), "cut %d", cut)
	}
}

func TestExternallyCountedArray(t *testing.T) {
	r := NewReader([]byte{1, 0, 2, 0, 3, 0})
	items := ReadArray(r, 2, readShortItem)
	require.NoError(t, r.Err())
	assert.Equal(t, []shortItem{1, 2}, items)
	assert.Equal(t, 2, r.Remaining())
}

func TestFillArray(t *testing.T) {
	t.Run("region of exactly three elements", func(t *testing.T) {
		r := NewReader([]byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00})
		items := ReadFillArray(r, 6, readShortItem)
		require.NoError(t, r.Err())
		assert.Equal(t, []shortItem{1, 2, 3}, items)
		assert.Equal(t, 6, r.Consumed())
	})

	t.Run("element overshooting the region", func(t *testing.T) {
		r := NewReader([]byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00})
		items := ReadFillArray(r, 5, readShortItem)
		assert.Nil(t, items)
		require.Error(t, r.Err())
		assert.True(t, errors.Is(r.Err(), ErrArrayBudgetOverrun))
		assert.Equal(t, 4, OffsetOf(r.Err()))
	})

	t.Run("region stops before trailing bytes", func(t *testing.T) {
		r := NewReader([]byte{0x01, 0x00, 0x02, 0x00, 0xEE})
		items := ReadFillArray(r, 4, readShortItem)
		require.NoError(t, r.Err())
		assert.Equal(t, []shortItem{1, 2}, items)
		assert.Equal(t, 1, r.Remaining())
	})

	t.Run("empty region", func(t *testing.T) {
		r := NewReader([]byte{0xEE})
		items := ReadFillArray(r, 0, readShortItem)
		require.NoError(t, r.Err())
		assert.Nil(t, items)
		assert.Equal(t, 0, r.Consumed())
	})

	t.Run("region longer than input", func(t *testing.T) {
		r := NewReader([]byte{0x01, 0x00})
		ReadFillArray(r, 4, readShortItem)
		require.Error(t, r.Err())
		assert.True(t, errors.Is(r.Err(), ErrTruncatedInput))
	})

	t.Run("variable size elements", func(t *testing.T) {
		in := []blobItem{{1, 2}, {3}, {}}
		w := NewWriter(0)
		WriteArray(w, in)
		require.NoError(t, w.Err())

		r := NewReader(w.Bytes())
		out := ReadFillRest(r, readBlobItem)
		require.NoError(t, r.Err())
		require.Len(t, out, 3)
		assert.Equal(t, ArraySize(in), r.Consumed())
	})

	t.Run("variable size element overshooting", func(t *testing.T) {
		// second element claims 5 bytes but only 2 remain in the region
		r := NewReader([]byte{0x01, 0xAA, 0x05, 0xBB, 0xCC, 0xDD, 0xEE})
		ReadFillArray(r, 5, readBlobItem)
		require.Error(t, r.Err())
		assert.True(t, errors.Is(r.Err(), ErrArrayBudgetOverrun))
	})
}

func TestArraySize(t *testing.T) {
	assert.Equal(t, 0, ArraySize[byteItem](nil))
	assert.Equal(t, 6, ArraySize([]shortItem{1, 2, 3}))
	assert.Equal(t, 6, ArraySize([]blobItem{{1, 2}, {3}, {}}))
}
