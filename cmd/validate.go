package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorkit/internal/graphio"
)

var validateCmd = &cobra.Command{
	Use:   "validate <graph.json>",
	Short: "Validate a skill graph document",
	Long:  "Checks a skill graph JSON document against the schema and the structural rules (unique ids, resolvable edges, no cycles).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := graphio.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("OK: %d skills, %d in topological order\n",
			len(g.Skills()), len(g.TopologicalOrder()))
		return nil
	},
}
