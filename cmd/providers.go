package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/enrich-cli/internal/llm"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported LLM providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, name := range llm.Names() {
			marker := " "
			if name == cfg.LLM.Provider {
				marker = "*"
			}
			if _, err := fmt.Fprintf(w, "%s %s\n", marker, name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
