package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/recid"
	"github.com/hupe1980/recid/codec"
	"github.com/hupe1980/recid/formkey"
)

type classifyResult struct {
	Input  string `json:"input"`
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Prefix string `json:"prefix,omitempty"`
}

func newClassifyCmd() *cobra.Command {
	var (
		prefixes string
		format   string
		strict   bool
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "classify <input>...",
		Short: "Classify identifier strings",
		Long: `The classify command prints the identifier kind of every input.

Example:
  recid classify 0x1A3~Skyrim.esm Skyrim.esm IronSword 0x00012EB7
  recid classify --prefixes '!-' --format skse '!012EB7:Skyrim.esm'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formkey.ParseFormat(format)
			if err != nil {
				return err
			}

			opts := []recid.ClassifierOption{recid.WithAllowedPrefixes([]rune(prefixes)...)}
			if strict {
				opts = append(opts, recid.WithStrictNames())
			}
			c := recid.NewClassifier(opts...)

			results := make([]classifyResult, 0, len(args))
			for _, in := range args {
				id, prefix, ok := c.Classify(in)
				r := classifyResult{Input: in, Kind: id.Kind().String(), ID: id.Format(f)}
				if ok {
					r.Prefix = string(prefix)
				}
				results = append(results, r)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				data, err := codec.Default.Marshal(results)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}
			for _, r := range results {
				if r.Prefix != "" {
					fmt.Fprintf(out, "%s\t%s\t%s\tprefix=%s\n", r.Input, r.Kind, r.ID, r.Prefix)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", r.Input, r.Kind, r.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefixes, "prefixes", "", "Allowed single-character prefixes, e.g. '!-'")
	cmd.Flags().StringVar(&format, "format", "default", "FormKey format (default, skse, or hex|trim|tilde)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Only accept alphanumeric names")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	return cmd
}
