package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func newLoadCmd(configPath *string) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "load <file.ttl>",
		Short: "Parse a Turtle file and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			ld, err := newLoader(cfg)
			if err != nil {
				return err
			}

			doc, stats, err := ld.LoadFile(args[0])
			if err != nil {
				return err
			}

			if name == "" {
				base := filepath.Base(args[0])
				name = strings.TrimSuffix(base, filepath.Ext(base))
			}

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			res, err := store.Put(name, doc)
			if err != nil {
				return err
			}

			if res.Unchanged {
				fmt.Printf("%s unchanged (%s)\n", name, res.Fingerprint)
				return nil
			}
			fmt.Printf("%s stored: %d headers, %d statements, %d triples (%s)\n",
				name, len(doc.Headers), len(doc.Body), doc.TripleCount(), res.Fingerprint)
			if stats.Skipped > 0 || stats.Truncated {
				fmt.Printf("warnings: skipped=%d malformed=%d truncated=%v\n",
					stats.Skipped, stats.Malformed, stats.Truncated)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "store under this name instead of the file basename")
	return cmd
}
