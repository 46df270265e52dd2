package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/yourmjk/d3f-metadata-exporter/internal/export"
	"github.com/yourmjk/d3f-metadata-exporter/internal/metadata"
)

func newNamesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "names <input.json>",
		Short:       "Print the directory name of every top-level entry without writing anything",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := metadata.NewParser().ParseFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()
			for _, plan := range export.Plan(doc) {
				for _, planned := range plan.Entries {
					if planned.Err != nil {
						fmt.Fprintf(errOut, "%s[%d] %q: %v\n", plan.Collection.Key(), planned.Position, planned.Entry.DisplayTitle(), planned.Err)
						continue
					}
					fmt.Fprintln(out, path.Join(plan.Collection.Name(), planned.Name))
				}
			}
			return nil
		},
	}
}
