package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/recid"
	"github.com/hupe1980/recid/codec"
)

// readRecords decodes a JSON record object or an array of them.
func readRecords(path string) ([]*recid.StaticRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var recs []*recid.StaticRecord
		if err := codec.Default.Unmarshal(data, &recs); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return recs, nil
	}

	rec := &recid.StaticRecord{}
	if err := codec.Default.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return []*recid.StaticRecord{rec}, nil
}

func newMatchCmd(g *globalFlags) *cobra.Command {
	var (
		lf        loadFlags
		record    string
		keywords  string
		fields    string
		cacheSize int
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match records against rules",
		Long: `The match command loads rules and prints the values whose identifiers
match each record, one line per value with the matching identifiers.

Records and keywords are JSON objects:
  {"formKey": "012EB7:Skyrim.esm", "editorId": "IronSword", "name": "Iron Sword",
   "keywords": ["01E711:Skyrim.esm"]}

Example:
  recid match --rules ./rules --record sword.json --keywords keywords.json
  recid match --rules s3://my-bucket/rules --record records.json --fields editorid,name`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			e, err := commandEnv(cmd, g)
			if err != nil {
				return err
			}

			mask, err := recid.ParseFieldMask(fields)
			if err != nil {
				return err
			}

			recs, err := readRecords(record)
			if err != nil {
				return err
			}

			var resolver recid.KeywordResolver
			if keywords != "" {
				kws, err := readRecords(keywords)
				if err != nil {
					return err
				}
				table := recid.NewKeywordTable()
				for _, kw := range kws {
					table.Put(kw)
				}
				resolver = table
				if cacheSize > 0 {
					if resolver, err = recid.NewCachingResolver(table, cacheSize); err != nil {
						return err
					}
				}
			}

			idx, _, err := lf.load(ctx, e)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rec := range recs {
				fmt.Fprintf(out, "%s\n", rec.Key)
				for m := range idx.FindAll(rec, mask, resolver) {
					ids := make([]string, len(m.IDs))
					for i, id := range m.IDs {
						ids[i] = id.String()
					}
					fmt.Fprintf(out, "  %s\t%s\n", m.Value, strings.Join(ids, ", "))
				}
			}
			return e.writeMetrics(cmd.ErrOrStderr())
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&record, "record", "", "JSON file with a record or an array of records")
	cmd.Flags().StringVar(&keywords, "keywords", "", "JSON file with an array of keyword records")
	cmd.Flags().StringVar(&fields, "fields", "all", "Fields to match (formkey, editorid, modkey, name, keywords, all)")
	cmd.Flags().IntVar(&cacheSize, "keyword-cache", 0, "Cache size for keyword lookups (0 = no cache)")
	_ = cmd.MarkFlagRequired("record")
	return cmd
}
