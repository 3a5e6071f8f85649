package cmd

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/catbuffer/pkg/entity"
	"github.com/ssargent/catbuffer/pkg/journal"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Append to and read the entity journal",
		Long: `The journal is an append-only file of checksummed records under the
data directory. Each record holds one validated entity.`,
	}
	cmd.AddCommand(newJournalAppendCmd(), newJournalDumpCmd(), newJournalStatsCmd())
	return cmd
}

type appendResult struct {
	Offset int64       `json:"offset"`
	Kind   entity.Kind `json:"kind"`
	Size   int         `json:"size"`
}

func newJournalAppendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "append <kind> [hex]",
		Short: "Validate a payload and append it to the journal",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, payload, err := kindAndPayload(cmd, args)
			if err != nil {
				return err
			}

			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
				return errors.Wrap(err, "failed to create data dir")
			}

			writer, err := journal.NewWriter(journal.WriterConfig{Path: cfg.JournalPath()})
			if err != nil {
				return err
			}

			offset, err := writer.AppendRaw(kind, payload)
			if closeErr := writer.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}
			return printValue(cmd, appendResult{Offset: offset, Kind: kind, Size: len(payload)})
		},
	}
	addInputFlags(cmd)
	return cmd
}

func newJournalDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the records in the journal",
		Long: `Print every record in the journal, starting at --from. Reading stops
with an error at the first torn or corrupt record.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			from, _ := cmd.Flags().GetInt64("from")
			withEntities, _ := cmd.Flags().GetBool("entities")

			var lines journalTable
			if name, _ := cmd.Flags().GetString("kind"); name != "" {
				kind, err := entity.ParseKind(name)
				if err != nil {
					return err
				}
				lines, err = dumpKind(cfg.JournalPath(), kind, from, withEntities)
				if err != nil {
					return err
				}
			} else {
				lines, err = dumpAll(cfg.JournalPath(), from, withEntities)
				if err != nil {
					return err
				}
			}
			return printValue(cmd, lines)
		},
	}
	cmd.Flags().Int64("from", 0, "Byte offset of the first record to read")
	cmd.Flags().Bool("entities", false, "Include the decoded entities")
	cmd.Flags().String("kind", "", "Only print records of this kind")
	return cmd
}

func newLine(entry *journal.Entry, withEntity bool) journalLine {
	line := journalLine{
		Offset:  entry.Offset,
		Kind:    entry.Record.Kind,
		Written: entry.Record.Time(),
		Size:    entry.Record.Length,
		CRC32:   fmt.Sprintf("%08x", entry.Record.CRC32),
	}
	if withEntity {
		line.Entity = entry.Entity
	}
	return line
}

func dumpAll(path string, from int64, withEntities bool) (journalTable, error) {
	reader, err := journal.NewReader(journal.ReaderConfig{Path: path, StartOffset: from})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	lines := journalTable{}
	it := reader.Iterator()
	for it.Next() {
		lines = append(lines, newLine(it.Entry(), withEntities))
	}
	if err := it.Err(); err != nil {
		return nil, errors.Wrapf(err, "read journal at offset %d", reader.Offset())
	}
	return lines, nil
}

// dumpKind reads only the records of kind, located through the index.
func dumpKind(path string, kind entity.Kind, from int64, withEntities bool) (journalTable, error) {
	idx, err := journal.BuildIndex(path)
	if err != nil {
		return nil, err
	}

	lines := journalTable{}
	for _, loc := range idx.Locations(kind) {
		if loc.Offset < from {
			continue
		}
		entry, err := journal.ReadAt(path, loc.Offset)
		if err != nil {
			return nil, err
		}
		lines = append(lines, newLine(entry, withEntities))
	}
	return lines, nil
}

func newJournalStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count the records in the journal by kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			idx, err := journal.BuildIndex(cfg.JournalPath())
			if err != nil {
				return err
			}
			return printValue(cmd, idx.Stats())
		},
	}
}
