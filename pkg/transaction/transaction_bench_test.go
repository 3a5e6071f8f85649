//go:build bench
// +build bench

package transaction

import (
	"testing"
)

func BenchmarkTransaction_Encode(b *testing.B) {
	benchmarks := []struct {
		name string
		tx   *Transaction
	}{
		{name: "transfer", tx: newTransfer()},
		{name: "aggregate", tx: newAggregate()},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Marshal(bm.tx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTransaction_Decode(b *testing.B) {
	benchmarks := []struct {
		name string
		tx   *Transaction
	}{
		{name: "transfer", tx: newTransfer()},
		{name: "aggregate", tx: newAggregate()},
	}

	for _, bm := range benchmarks {
		data, err := Marshal(bm.tx)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := Decode(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
