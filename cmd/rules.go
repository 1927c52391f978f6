// Copyright © 2025 The pyvet authors

package cmd

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/tjkuson/pyvet/check"
)

var rulesDoc bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available rule checks",
	Long: `List the available rule checks.

Without flags, prints each rule's name, status, and one-line summary. With
--doc, prints the full documentation for every rule.`,
	Run: func(cmd *cobra.Command, args []string) {
		if rulesDoc {
			printRuleDocs()
			return
		}
		fmt.Print(check.RuleDoc())
	},
}

func printRuleDocs() {
	for i, r := range check.DefaultRules() {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%s)\n", r.Name, r.Status)
		wrapped := wordwrap.String(strings.TrimSpace(r.Doc), 72)
		fmt.Println(indent.String(wrapped, 4))
	}
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesCmd.Flags().BoolVar(&rulesDoc, "doc", false,
		"Print full documentation for every rule.")
}
