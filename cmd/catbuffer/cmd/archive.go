package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/catbuffer/pkg/api"
	"github.com/ssargent/catbuffer/pkg/archive"
	"github.com/ssargent/catbuffer/pkg/entity"
)

func newArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Store and retrieve validated entities",
		Long: `Manage the entity archive under the data directory. Entities are
validated before they are stored and are listed in creation order.`,
	}
	cmd.AddCommand(
		newArchivePutCmd(),
		newArchiveGetCmd(),
		newArchiveListCmd(),
		newArchiveDeleteCmd(),
	)
	return cmd
}

// openArchive opens the archive configured for cmd.
func openArchive(cmd *cobra.Command) (api.ArchiveStore, error) {
	cfg, err := configFrom(cmd)
	if err != nil {
		return nil, err
	}
	c, err := requireContainer()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
		return nil, errors.Wrap(err, "failed to create data dir")
	}
	return c.GetArchiveFactory().OpenArchive(archive.Config{Path: cfg.ArchivePath()})
}

func newArchivePutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "put <kind> [hex]",
		Short: "Validate and archive a payload",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, payload, err := kindAndPayload(cmd, args)
			if err != nil {
				return err
			}

			store, err := openArchive(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := store.Put(kind, payload)
			if err != nil {
				return err
			}
			return printValue(cmd, api.StoredResponse{ID: id.String(), Kind: kind, Size: len(payload)})
		},
	}
	addInputFlags(cmd)
	return cmd
}

func newArchiveGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print an archived entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := archive.ParseID(args[0])
			if err != nil {
				return err
			}

			store, err := openArchive(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			item, err := store.Get(id)
			if err != nil {
				return err
			}

			if raw, _ := cmd.Flags().GetBool("hex"); raw {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(item.Payload))
				return err
			}
			return printValue(cmd, item)
		},
	}
	cmd.Flags().Bool("hex", false, "Print the stored payload as hex")
	return cmd
}

func newArchiveListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts archive.ListOptions
			if name, _ := cmd.Flags().GetString("kind"); name != "" {
				kind, err := entity.ParseKind(name)
				if err != nil {
					return err
				}
				opts.Kind = kind
			}
			opts.Limit, _ = cmd.Flags().GetInt("limit")
			if opts.Limit < 0 {
				return errors.Newf("invalid limit %d", opts.Limit)
			}

			store, err := openArchive(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			items, err := store.List(opts)
			if err != nil {
				return err
			}
			if items == nil {
				items = []*archive.Item{}
			}
			return printValue(cmd, itemTable(items))
		},
	}
	cmd.Flags().String("kind", "", "Only list entities of this kind")
	cmd.Flags().Int("limit", 0, "Maximum number of entities to list (0 lists all)")
	return cmd
}

func newArchiveDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an archived entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := archive.ParseID(args[0])
			if err != nil {
				return err
			}

			store, err := openArchive(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			return err
		},
	}
}
