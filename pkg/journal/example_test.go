package journal_test

import (
	"fmt"
	"log"
	"time"

	"github.com/ssargent/catbuffer/pkg/entity"
	"github.com/ssargent/catbuffer/pkg/journal"
	"github.com/ssargent/catbuffer/pkg/state"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// ExampleEncode frames an encoded mosaic entry and reads it back.
func ExampleEncode() {
	payload, err := wire.Marshal(&state.MosaicEntry{Version: 1, MosaicID: 0x6BED913FA20223F8, Supply: 1000})
	if err != nil {
		log.Fatal(err)
	}

	at := time.Date(2024, 6, 22, 8, 0, 0, 0, time.UTC)
	framed, err := journal.Encode(entity.MosaicEntry, payload, at)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Encoded %d bytes\n", len(framed))

	rec, err := journal.DecodeRecord(framed)
	if err != nil {
		log.Fatal(err)
	}
	e, err := rec.Entity()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Kind: %s\n", rec.Kind)
	fmt.Printf("Mosaic: %s\n", e.(*state.MosaicEntry).MosaicID)
	fmt.Printf("Written: %s\n", rec.Time().Format(time.RFC3339))

	// Output:
	// Encoded 84 bytes
	// Kind: mosaic-entry
	// Mosaic: 6BED913FA20223F8
	// Written: 2024-06-22T08:00:00Z
}
