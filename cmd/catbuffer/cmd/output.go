package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/catbuffer/pkg/archive"
	"github.com/ssargent/catbuffer/pkg/entity"
)

const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

// tabular values can render themselves as a table.
type tabular interface {
	writeTable(w io.Writer) error
}

// printValue writes v in the format selected by --output.
func printValue(cmd *cobra.Command, v interface{}) error {
	format, _ := cmd.Flags().GetString("output")
	out := cmd.OutOrStdout()

	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		return writeYAML(out, v)
	case formatTable:
		t, ok := v.(tabular)
		if !ok {
			return errors.Newf("%s does not support table output", cmd.CommandPath())
		}
		return t.writeTable(out)
	}
	return errors.Newf("unknown output format %q", format)
}

// writeYAML renders v through its JSON form so YAML output uses the same
// field names and text encodings as JSON output.
func writeYAML(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshal output")
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return errors.Wrap(err, "convert output")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return errors.Wrap(err, "write output")
	}
	return enc.Close()
}

type kindRow struct {
	Name  string `json:"name"`
	Value uint8  `json:"value"`
}

type kindTable []kindRow

func (t kindTable) writeTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tVALUE")
	for _, row := range t {
		fmt.Fprintf(tw, "%s\t%d\n", row.Name, row.Value)
	}
	return tw.Flush()
}

type reportView struct {
	*entity.Report
}

func (v reportView) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Report)
}

func (v reportView) writeTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kind:\t%s\n", v.Kind)
	fmt.Fprintf(tw, "Declared size:\t%d\n", v.Declared)
	fmt.Fprintf(tw, "Computed size:\t%d\n", v.Computed)
	if v.Trailing > 0 {
		fmt.Fprintf(tw, "Trailing bytes:\t%d\n", v.Trailing)
	}
	for _, warning := range v.Warnings {
		fmt.Fprintf(tw, "Warning:\t%s\n", warning)
	}
	return tw.Flush()
}

type itemTable []*archive.Item

func (t itemTable) writeTable(w io.Writer) error {
	if len(t) == 0 {
		_, err := fmt.Fprintln(w, "No archived entities found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tSIZE\tCREATED")
	for _, item := range t {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", item.ID, item.Kind, item.Size, item.Created.UTC().Format(time.RFC3339))
	}
	return tw.Flush()
}

type journalLine struct {
	Offset  int64         `json:"offset"`
	Kind    entity.Kind   `json:"kind"`
	Written time.Time     `json:"written"`
	Size    uint32        `json:"size"`
	CRC32   string        `json:"crc32"`
	Entity  entity.Entity `json:"entity,omitempty"`
}

type journalTable []journalLine

func (t journalTable) writeTable(w io.Writer) error {
	if len(t) == 0 {
		_, err := fmt.Fprintln(w, "Journal is empty")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OFFSET\tKIND\tSIZE\tCRC32\tWRITTEN")
	for _, line := range t {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
			line.Offset, line.Kind, line.Size, strings.ToUpper(line.CRC32), line.Written.Format(time.RFC3339Nano))
	}
	return tw.Flush()
}
