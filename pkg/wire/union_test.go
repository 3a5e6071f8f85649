package wire

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type targetKind uint8

const (
	targetMosaic  targetKind = 0
	targetAddress targetKind = 1
)

func (k targetKind) Valid() bool { return k <= targetAddress }

type target interface {
	Serializer
	kind() targetKind
}

type mosaicTarget struct{ ID uint64 }

func (mosaicTarget) kind() targetKind { return targetMosaic }

func (mosaicTarget) Size() int { return 8 }

func (t mosaicTarget) Serialize(w *Writer) { w.Uint64(t.ID) }

type addressTarget struct{ Address [24]byte }

func (addressTarget) kind() targetKind { return targetAddress }

func (addressTarget) Size() int { return 24 }

func (t addressTarget) Serialize(w *Writer) { w.Fixed(t.Address[:]) }

var targets = NewUnion("target", map[targetKind]DecodeFunc[target]{
	targetMosaic: func(r *Reader) target {
		return mosaicTarget{ID: r.Uint64()}
	},
	targetAddress: func(r *Reader) target {
		var t addressTarget
		r.Fixed(t.Address[:])
		return t
	},
})

type tagged struct {
	Target target
}

func (t tagged) Size() int {
	if t.Target == nil {
		return 1
	}
	return 1 + t.Target.Size()
}

func (t tagged) Serialize(w *Writer) {
	if t.Target == nil {
		w.Fail(ErrNoActiveVariant)
		return
	}
	WriteEnum8(w, t.Target.kind())
	t.Target.Serialize(w)
}

func readTagged(r *Reader) tagged {
	kind := ReadEnum8[targetKind](r)
	return tagged{Target: targets.Decode(r, kind)}
}

func TestUnion_EncodeMosaicBranch(t *testing.T) {
	data, err := Marshal(tagged{Target: mosaicTarget{ID: 42}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 42, 0, 0, 0, 0, 0, 0, 0}, data)
}

func TestUnion_DecodeAndAccess(t *testing.T) {
	data := []byte{0x00, 42, 0, 0, 0, 0, 0, 0, 0}
	v, n, err := Unmarshal(data, readTagged)
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	mosaic, err := As[mosaicTarget](v.Target)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), mosaic.ID)

	_, err = As[addressTarget](v.Target)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrongVariant))
	assert.Contains(t, err.Error(), "mosaicTarget")
}

func TestUnion_AddressBranchConsumesOnlyItsBytes(t *testing.T) {
	in := tagged{Target: addressTarget{Address: [24]byte{1, 2, 3}}}
	data, err := Marshal(in)
	require.NoError(t, err)
	require.Len(t, data, 25)

	out, n, err := Unmarshal(append(data, 0xEE, 0xEE), readTagged)
	require.NoError(t, err)
	assert.Equal(t, 25, n)
	assert.Equal(t, in, out)

	_, err = As[mosaicTarget](out.Target)
	assert.True(t, errors.Is(err, ErrWrongVariant))
}

func TestUnion_UnknownTag(t *testing.T) {
	for _, tag := range []byte{2, 3, 0x7F, 0xFF} {
		_, _, err := Unmarshal([]byte{tag, 0, 0, 0, 0, 0, 0, 0, 0}, readTagged)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnrecognizedVariant), "tag %d", tag)
		assert.Equal(t, 0, OffsetOf(err))
	}
}

func TestUnion_TagWithoutBranch(t *testing.T) {
	partial := NewUnion("partial", map[targetKind]DecodeFunc[target]{
		targetMosaic: func(r *Reader) target { return mosaicTarget{ID: r.Uint64()} },
	})
	assert.True(t, partial.Has(targetMosaic))
	assert.False(t, partial.Has(targetAddress))
	assert.Equal(t, 1, partial.Len())

	r := NewReader(make([]byte, 24))
	partial.Decode(r, targetAddress)
	require.Error(t, r.Err())
	assert.True(t, errors.Is(r.Err(), ErrUnrecognizedVariant))
}

func TestUnion_NoActiveBranch(t *testing.T) {
	_, err := Marshal(tagged{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoActiveVariant))

	_, err = As[mosaicTarget](nil)
	assert.True(t, errors.Is(err, ErrNoActiveVariant))
}

func TestUnion_EncodeRefusesUnknownTag(t *testing.T) {
	w := NewWriter(0)
	WriteEnum8(w, targetKind(9))
	require.Error(t, w.Err())
	assert.True(t, errors.Is(w.Err(), ErrUnrecognizedVariant))
}

type testFlags uint16

const (
	flagA testFlags = 0x01
	flagB testFlags = 0x02
	flagC testFlags = 0x04
)

var testFlagNames = []Flag{
	{Bit: uint64(flagA), Name: "A"},
	{Bit: uint64(flagB), Name: "B"},
	{Bit: uint64(flagC), Name: "C"},
}

func TestFlags(t *testing.T) {
	w := NewWriter(2)
	w.Uint16(uint16(flagA | flagC))
	assert.Equal(t, []byte{0x05, 0x00}, w.Bytes())

	r := NewReader([]byte{0x06, 0x00})
	decoded := testFlags(r.Uint16())
	require.NoError(t, r.Err())
	assert.Equal(t, []string{"B", "C"}, FlagNames(uint64(decoded), testFlagNames))
	assert.Equal(t, "B|C", FormatFlags(uint64(decoded), testFlagNames))
}

func TestFlags_UnknownBitsRetained(t *testing.T) {
	r := NewReader([]byte{0x81, 0x00})
	decoded := testFlags(r.Uint16())

	w := NewWriter(2)
	w.Uint16(uint16(decoded))
	assert.Equal(t, []byte{0x81, 0x00}, w.Bytes())
	assert.Equal(t, "A|0x80", FormatFlags(uint64(decoded), testFlagNames))
	assert.Equal(t, "NONE", FormatFlags(0, testFlagNames))
}

type badSize struct{}

func (badSize) Size() int { return 3 }

func (badSize) Serialize(w *Writer) { w.Uint16(1) }

func TestMarshal_SizeDisagreement(t *testing.T) {
	_, err := Marshal(badSize{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSizeMismatch))
}
