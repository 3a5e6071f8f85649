package receipt

import (
	"encoding/binary"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

var (
	harvester = model.Address{0x98, 0x01}
	currency  = model.Mosaic{MosaicID: 0x6BED913FA20223F8, Amount: 2_000_000}
)

func sampleReceipts() []*Receipt {
	return []*Receipt{
		{Version: 1, Type: model.ReceiptHarvestFee, Body: BalanceChangeBody{Mosaic: currency, TargetAddress: harvester}},
		{Version: 1, Type: model.ReceiptLockSecretExpired, Body: BalanceChangeBody{Mosaic: currency, TargetAddress: harvester}},
		{Version: 1, Type: model.ReceiptNamespaceRentalFee, Body: BalanceTransferBody{
			Mosaic:           currency,
			SenderAddress:    harvester,
			RecipientAddress: model.Address{0x98, 0x02},
		}},
		{Version: 1, Type: model.ReceiptMosaicExpired, Body: MosaicExpiryBody{ArtifactID: 0x1234}},
		{Version: 1, Type: model.ReceiptNamespaceDeleted, Body: NamespaceExpiryBody{ArtifactID: 0x85BBEA6CC462B244}},
		{Version: 1, Type: model.ReceiptInflation, Body: InflationBody{Mosaic: currency}},
	}
}

func TestReceipt_Layout(t *testing.T) {
	rc := &Receipt{Version: 1, Type: model.ReceiptHarvestFee, Body: BalanceChangeBody{Mosaic: currency, TargetAddress: harvester}}
	data, err := Marshal(rc)
	require.NoError(t, err)
	require.Len(t, data, HeaderSize+40)

	assert.Equal(t, uint32(48), binary.LittleEndian.Uint32(data))
	assert.Equal(t, []byte{1, 0}, data[4:6])
	assert.Equal(t, []byte{0x43, 0x21}, data[6:8])
	assert.Equal(t, uint64(currency.MosaicID), binary.LittleEndian.Uint64(data[8:]))
	assert.Equal(t, byte(0x98), data[24])
}

func TestReceipt_RoundTrip(t *testing.T) {
	for _, rc := range sampleReceipts() {
		t.Run(rc.Type.String(), func(t *testing.T) {
			data, err := Marshal(rc)
			require.NoError(t, err)

			decoded, n, err := Decode(append(data, 0xAB))
			require.NoError(t, err)
			assert.Equal(t, len(data), n)
			assert.Equal(t, rc, decoded)
			assert.NoError(t, decoded.CheckSize(n))
		})
	}
}

func TestReceipt_Truncated(t *testing.T) {
	for _, rc := range sampleReceipts() {
		data, err := Marshal(rc)
		require.NoError(t, err)

		for i := 0; i < len(data); i++ {
			_, _, err := Decode(data[:i])
			require.Error(t, err)
			assert.True(t, errors.Is(err, wire.ErrTruncatedInput))
		}
	}
}

func TestReceipt_TypeWithoutBody(t *testing.T) {
	data := []byte{8, 0, 0, 0, 1, 0, 0x43, 0xE1}
	_, _, err := Decode(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrUnrecognizedVariant))
	assert.Equal(t, 8, wire.OffsetOf(err))

	data[7] = 0x00
	_, _, err = Decode(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrUnrecognizedVariant))
	assert.Equal(t, 6, wire.OffsetOf(err))
}

func TestReceipt_EncodeChecksBodyLayout(t *testing.T) {
	_, err := Marshal(&Receipt{Type: model.ReceiptInflation, Body: BalanceChangeBody{}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrWrongVariant))

	_, err = Marshal(&Receipt{Type: model.ReceiptTransactionGroup, Body: InflationBody{}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrUnrecognizedVariant))

	_, err = Marshal(&Receipt{Type: model.ReceiptInflation})
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrNoActiveVariant))
}

func TestReceipt_BodyAccess(t *testing.T) {
	rc := sampleReceipts()[0]
	change, err := As[BalanceChangeBody](rc)
	require.NoError(t, err)
	assert.Equal(t, harvester, change.TargetAddress)

	_, err = As[InflationBody](rc)
	assert.True(t, errors.Is(err, wire.ErrWrongVariant))
}

func TestTransactionStatement_RoundTrip(t *testing.T) {
	stmt := &TransactionStatement{
		Source:   model.ReceiptSource{PrimaryID: 3, SecondaryID: 0},
		Receipts: sampleReceipts(),
	}
	data, err := wire.Marshal(stmt)
	require.NoError(t, err)
	assert.Equal(t, uint32(len(stmt.Receipts)), binary.LittleEndian.Uint32(data[8:12]))

	decoded, n, err := DecodeTransactionStatement(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, stmt, decoded)
}

func TestTransactionStatement_CountBeyondInput(t *testing.T) {
	data := []byte{1, 0, 0, 0, 0, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF}
	_, _, err := DecodeTransactionStatement(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrTruncatedInput))
}

func TestTransactionStatement_Empty(t *testing.T) {
	stmt := &TransactionStatement{Source: model.ReceiptSource{PrimaryID: 1}}
	data, err := wire.Marshal(stmt)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, data)

	decoded, _, err := DecodeTransactionStatement(data)
	require.NoError(t, err)
	assert.Equal(t, stmt, decoded)
}

func TestResolutionStatements(t *testing.T) {
	t.Run("address", func(t *testing.T) {
		stmt := AddressResolutionStatement{
			Unresolved: model.Address{0x99},
			Entries: []ResolutionEntry[model.Address]{
				{Source: model.ReceiptSource{PrimaryID: 1}, Resolved: model.Address{0x98, 1}},
				{Source: model.ReceiptSource{PrimaryID: 2, SecondaryID: 1}, Resolved: model.Address{0x98, 2}},
			},
		}
		data, err := wire.Marshal(stmt)
		require.NoError(t, err)
		require.Len(t, data, 24+4+2*32)

		decoded, n, err := DecodeAddressResolutionStatement(data)
		require.NoError(t, err)
		assert.Equal(t, len(data), n)
		assert.Equal(t, stmt, decoded)
	})

	t.Run("mosaic", func(t *testing.T) {
		stmt := MosaicResolutionStatement{
			Unresolved: 0x85BBEA6CC462B244,
			Entries: []ResolutionEntry[model.MosaicID]{
				{Source: model.ReceiptSource{PrimaryID: 1}, Resolved: 0x6BED913FA20223F8},
			},
		}
		data, err := wire.Marshal(stmt)
		require.NoError(t, err)
		require.Len(t, data, 8+4+16)

		decoded, _, err := DecodeMosaicResolutionStatement(data)
		require.NoError(t, err)
		assert.Equal(t, stmt, decoded)

		_, _, err = DecodeMosaicResolutionStatement(data[:len(data)-1])
		require.Error(t, err)
		assert.True(t, errors.Is(err, wire.ErrTruncatedInput))
	})
}
