package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semanticowl/semowl/pkg/turtle"
)

func newPrefixesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefixes",
		Short: "Print the well-known namespace prefixes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range turtle.StandardPrefixes {
				fmt.Printf("%s\t%s\n", p.Name, p.IRI)
			}
			return nil
		},
	}
}
