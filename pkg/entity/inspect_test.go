package entity

import (
	"encoding/binary"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/transaction"
	"github.com/ssargent/catbuffer/pkg/wire"
)

func aggregateOn(outer, inner model.NetworkType) *transaction.Transaction {
	return &transaction.Transaction{
		Version: 1,
		Network: outer,
		Body: transaction.AggregateCompleteBody{Aggregate: transaction.Aggregate{
			Transactions: []*transaction.EmbeddedTransaction{{
				Version: 1,
				Network: inner,
				Body:    transaction.TransferBody{Recipient: model.Address{0x98}},
			}},
		}},
	}
}

func TestInspect(t *testing.T) {
	data, err := wire.Marshal(samples()[Transaction])
	require.NoError(t, err)

	report, err := Inspect(Transaction, data, Policy{})
	require.NoError(t, err)
	assert.Equal(t, Transaction, report.Kind)
	assert.Equal(t, len(data), report.Declared)
	assert.Equal(t, len(data), report.Computed)
	assert.Zero(t, report.Trailing)
	assert.Empty(t, report.Warnings)
}

func TestInspect_Trailing(t *testing.T) {
	data, err := wire.Marshal(samples()[MosaicEntry])
	require.NoError(t, err)
	data = append(data, 0xAA, 0xBB)

	_, err = Inspect(MosaicEntry, data, Policy{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrSizeMismatch))

	report, err := Inspect(MosaicEntry, data, Policy{AllowTrailing: true})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Trailing)
}

func TestInspect_DeclaredSize(t *testing.T) {
	data, err := wire.Marshal(samples()[Transaction])
	require.NoError(t, err)
	data = append(data, 0, 0)
	binary.LittleEndian.PutUint32(data, uint32(len(data)))

	report, err := Inspect(Transaction, data, Policy{})
	require.NoError(t, err)
	assert.Equal(t, len(data), report.Declared)
	assert.Equal(t, len(data)-2, report.Computed)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "size mismatch")

	_, err = Inspect(Transaction, data, Policy{StrictSize: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrSizeMismatch))
}

func TestInspect_Network(t *testing.T) {
	testnet := model.NetworkTestnet

	tests := []struct {
		name    string
		kind    Kind
		entity  Entity
		wantErr bool
	}{
		{name: "matching transaction", kind: Transaction, entity: samples()[Transaction]},
		{name: "matching embedded", kind: EmbeddedTransaction, entity: samples()[EmbeddedTransaction]},
		{
			name: "foreign transaction",
			kind: Transaction,
			entity: &transaction.Transaction{
				Version: 1,
				Network: model.NetworkMainnet,
				Body:    transaction.TransferBody{},
			},
			wantErr: true,
		},
		{name: "foreign inner transaction", kind: Transaction, entity: aggregateOn(testnet, model.NetworkMainnet), wantErr: true},
		{name: "matching aggregate", kind: Transaction, entity: aggregateOn(testnet, testnet)},
		{name: "state entry has no network", kind: MosaicEntry, entity: samples()[MosaicEntry]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := wire.Marshal(tt.entity)
			require.NoError(t, err)

			_, err = Inspect(tt.kind, data, Policy{Network: &testnet})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrNetworkMismatch))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInspect_DecodeFailure(t *testing.T) {
	_, err := Inspect(HashLock, []byte{1, 0}, Policy{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrTruncatedInput))
}

func TestInspect_EmbeddedSizeSlack(t *testing.T) {
	tx := aggregateOn(model.NetworkTestnet, model.NetworkTestnet)
	agg, err := transaction.As[transaction.AggregateCompleteBody](tx)
	require.NoError(t, err)
	agg.Transactions[0].Body = transaction.TransferBody{Recipient: model.Address{0x98}, Message: model.HexBytes("hi")}
	data, err := wire.Marshal(tx)
	require.NoError(t, err)

	// The embedded transfer is 82 bytes followed by 6 bytes of padding.
	embedded := transaction.HeaderSize + model.Hash256Size + 8
	binary.LittleEndian.PutUint32(data[embedded:], 88)
	copy(data[embedded+82:], []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x77, 0x01})

	for _, strict := range []bool{false, true} {
		_, err := Inspect(Transaction, data, Policy{StrictSize: strict})
		require.Error(t, err)
		assert.True(t, errors.Is(err, wire.ErrSizeMismatch), "%v", err)
		assert.Equal(t, embedded, wire.OffsetOf(err))
	}
}
