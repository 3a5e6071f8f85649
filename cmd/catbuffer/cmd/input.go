package cmd

import (
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/catbuffer/pkg/entity"
	"github.com/ssargent/catbuffer/pkg/model"
)

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", `Read the payload from a file, "-" for stdin`)
	cmd.Flags().Bool("hex-input", false, "Treat file or stdin content as hex text")
}

func addPolicyFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strict", false, "Reject declared sizes that disagree with the content (default from config)")
	cmd.Flags().Bool("trailing", false, "Accept bytes after the record")
	cmd.Flags().String("network", "", "Require transactions to carry this network (default from config)")
}

// readPayload returns the payload from the optional hex argument, or from
// --file when no argument is given.
func readPayload(cmd *cobra.Command, args []string) ([]byte, error) {
	file, _ := cmd.Flags().GetString("file")
	hexInput, _ := cmd.Flags().GetBool("hex-input")

	if len(args) > 0 {
		if file != "" {
			return nil, errors.New("pass either a hex argument or --file, not both")
		}
		return decodeHex(args[0])
	}

	var data []byte
	var err error
	switch file {
	case "":
		return nil, errors.New("no payload: pass a hex argument or --file")
	case "-":
		data, err = io.ReadAll(cmd.InOrStdin())
	default:
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read payload")
	}

	if hexInput {
		return decodeHex(string(data))
	}
	return data, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex payload")
	}
	return b, nil
}

// policyFromFlags starts from the configured policy and applies flags that
// were set explicitly.
func policyFromFlags(cmd *cobra.Command) (entity.Policy, error) {
	var policy entity.Policy

	cfg, err := configFrom(cmd)
	if err != nil {
		return policy, err
	}
	policy.StrictSize = cfg.Codec.StrictSize
	policy.Network, err = cfg.Network()
	if err != nil {
		return policy, err
	}

	if cmd.Flags().Changed("strict") {
		policy.StrictSize, _ = cmd.Flags().GetBool("strict")
	}
	policy.AllowTrailing, _ = cmd.Flags().GetBool("trailing")

	if name, _ := cmd.Flags().GetString("network"); name != "" {
		network, ok := model.ParseNetworkType(strings.ToUpper(name))
		if !ok {
			return policy, errors.Newf("unknown network %q", name)
		}
		policy.Network = &network
	}
	return policy, nil
}

// kindAndPayload parses "<kind> [hex]" arguments.
func kindAndPayload(cmd *cobra.Command, args []string) (entity.Kind, []byte, error) {
	kind, err := entity.ParseKind(args[0])
	if err != nil {
		return 0, nil, err
	}
	payload, err := readPayload(cmd, args[1:])
	if err != nil {
		return 0, nil, err
	}
	return kind, payload, nil
}
