package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fleetcore/hxglue/internal/errors"
	"github.com/fleetcore/hxglue/pkg/toast"
)

func decodeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode <header-value>",
		Short: "Decode an HX-Trigger value",
		Long: `Decode an HX-Trigger response header value the way the host does
and print the outcome: toast, absent, malformed, or ignored.

Examples:
  hxglue decode '{"showToast":{"message":"Saved","type":"success"}}'
  hxglue decode --json '{"itemAdded":true}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New(errors.CodeInvalidArgs).
					WithDetail("decode takes one header value; quote it.")
			}
			var value string
			if len(args) == 1 {
				value = args[0]
			}
			return runDecode(cmd, value, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

type decodeResult struct {
	Outcome toast.DecodeOutcome `json:"outcome"`
	Message string              `json:"message,omitempty"`
	Type    toast.Type          `json:"type,omitempty"`
}

func runDecode(cmd *cobra.Command, value string, asJSON bool) error {
	req, outcome := toast.DecodeTrigger(value)
	res := decodeResult{Outcome: outcome}
	if outcome == toast.OutcomeToast {
		res.Message = req.Message
		res.Type = req.Type.Normalize()
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(out, "outcome: %s\n", res.Outcome)
	if outcome == toast.OutcomeToast {
		fmt.Fprintf(out, "message: %s\n", res.Message)
		fmt.Fprintf(out, "type:    %s\n", res.Type)
	}
	return nil
}
