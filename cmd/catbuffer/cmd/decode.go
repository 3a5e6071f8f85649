package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/catbuffer/pkg/entity"
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <kind> [hex]",
		Short: "Decode a payload and print its structure",
		Long: `Decode one catbuffer record of the given kind and print the decoded
structure together with its declared and computed sizes.

Examples:
  catbuffer decode mosaic-entry 0100F82302A23F91ED6B...
  catbuffer decode transaction --file tx.bin
  catbuffer decode receipt --file - --hex-input < receipt.hex`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, payload, err := kindAndPayload(cmd, args)
			if err != nil {
				return err
			}
			policy, err := policyFromFlags(cmd)
			if err != nil {
				return err
			}

			report, err := entity.Inspect(kind, payload, policy)
			if err != nil {
				return errors.Wrapf(err, "decode %s", kind)
			}
			return printValue(cmd, reportView{report})
		},
	}
	addInputFlags(cmd)
	addPolicyFlags(cmd)
	return cmd
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <kind> [hex]",
		Short: "Check that a payload is exactly one valid record",
		Long: `Validate one catbuffer record of the given kind. The command exits
non-zero when the payload does not decode, carries trailing bytes, names a
foreign network, or (with --strict) declares a size that disagrees with
its content.

Examples:
  catbuffer validate hash-lock --file lock.bin --strict
  catbuffer validate transaction 3C01000000... --network testnet`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, payload, err := kindAndPayload(cmd, args)
			if err != nil {
				return err
			}
			policy, err := policyFromFlags(cmd)
			if err != nil {
				return err
			}

			report, err := entity.Inspect(kind, payload, policy)
			if err != nil {
				return errors.Wrapf(err, "invalid %s", kind)
			}

			out := cmd.OutOrStdout()
			for _, warning := range report.Warnings {
				fmt.Fprintf(out, "warning: %s\n", warning)
			}
			fmt.Fprintf(out, "valid %s: %d bytes\n", kind, report.Declared)
			return nil
		},
	}
	addInputFlags(cmd)
	addPolicyFlags(cmd)
	return cmd
}

type sizeReport struct {
	Kind     entity.Kind `json:"kind"`
	Declared int         `json:"declaredSize"`
	Computed int         `json:"computedSize"`
	Trailing int         `json:"trailingBytes"`
}

func newSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size <kind> [hex]",
		Short: "Print the declared and computed size of a payload",
		Long: `Decode one record of the given kind and report how many bytes it
occupies, how many bytes its content requires, and how many bytes follow it.
Size mismatches and trailing bytes are reported rather than rejected.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, payload, err := kindAndPayload(cmd, args)
			if err != nil {
				return err
			}

			report, err := entity.Inspect(kind, payload, entity.Policy{AllowTrailing: true})
			if err != nil {
				return errors.Wrapf(err, "decode %s", kind)
			}
			return printValue(cmd, sizeReport{
				Kind:     report.Kind,
				Declared: report.Declared,
				Computed: report.Computed,
				Trailing: report.Trailing,
			})
		},
	}
	addInputFlags(cmd)
	return cmd
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the entity kinds the decoder accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := entity.Kinds()
			rows := make(kindTable, 0, len(kinds))
			for _, k := range kinds {
				rows = append(rows, kindRow{Name: k.String(), Value: uint8(k)})
			}
			return printValue(cmd, rows)
		},
	}
}
