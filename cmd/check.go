// Copyright © 2025 The pyvet authors

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tjkuson/pyvet/check"
)

var (
	checkJSON     bool
	checkRules    string
	checkListAll  bool
	checkExcludes []string
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [files...]",
	Short: "Run rule checks on parsed source files",
	Long: `Run rule checks on parsed source files.

Each argument is a JSON syntax-tree dump emitted by the front end. With no
files, reads a single dump from stdin. Arguments ending in /... expand to
all .json files under the directory.

Exit codes:
  0  No problems found
  1  One or more problems were reported
  2  Bad invocation (invalid flags, unreadable files)

To suppress a specific diagnostic, record a noqa directive on its line:
  x = 1  # noqa: private-import

Configuration (.pyvet.yaml or PYVET_* environment):
  banned-from:  modules whose members must not be imported explicitly
  disable:      rule names to skip
  jobs:         maximum files checked in parallel

Examples:
  pyvet check file.ast.json                  # Check a single parsed file
  pyvet check ./...                          # Check every dump under .
  pyvet check --json file.ast.json           # Output diagnostics as JSON
  pyvet check --rules=while-loop ./...       # Run only specific rules
  pyvet check --exclude='**/vendor/**' ./... # Exclude paths by glob
  cat file.ast.json | pyvet check            # Check from stdin`,
	Run: func(cmd *cobra.Command, args []string) {
		if checkListAll {
			for _, name := range check.RuleNames() {
				fmt.Println(name)
			}
			return
		}

		rules := check.DefaultRules()
		if checkRules != "" {
			selected := make(map[string]bool)
			for _, name := range strings.Split(checkRules, ",") {
				selected[strings.TrimSpace(name)] = true
			}
			var filtered []*check.Rule
			for _, r := range rules {
				if selected[r.Name] {
					filtered = append(filtered, r)
					delete(selected, r.Name)
				}
			}
			for name := range selected {
				fmt.Fprintf(os.Stderr, "pyvet check: unknown rule: %s\n", name)
				os.Exit(2)
			}
			rules = filtered
		}

		cfg := &check.Config{
			BannedFrom: viper.GetStringSlice("banned-from"),
			Disabled:   viper.GetStringSlice("disable"),
		}
		runner := &check.Runner{
			Checker: &check.Checker{Rules: rules, Config: cfg},
			Jobs:    viper.GetInt("jobs"),
		}

		if len(args) == 0 {
			if err := checkStdin(runner); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			return
		}

		expanded, err := expandArgs(args, checkExcludes)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		diags, err := runner.Files(context.Background(), expanded)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		reportDiagnostics(diags)
	},
}

func checkStdin(runner *check.Runner) error {
	src, err := readStdin()
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	diags, err := runner.Source(src, "<stdin>")
	if err != nil {
		return err
	}
	reportDiagnostics(diags)
	return nil
}

// reportDiagnostics writes findings and exits 1 when there are any.
func reportDiagnostics(diags []check.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	if checkJSON {
		if err := check.FormatJSON(os.Stdout, diags); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	} else {
		check.FormatText(os.Stdout, diags)
	}
	os.Exit(1)
}

func readStdin() ([]byte, error) {
	return os.ReadFile("/dev/stdin")
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output diagnostics as JSON.")
	checkCmd.Flags().StringVar(&checkRules, "rules", "",
		"Comma-separated list of rules to run (default: all).")
	checkCmd.Flags().BoolVar(&checkListAll, "list", false,
		"List available rules and exit.")
	checkCmd.Flags().StringArrayVar(&checkExcludes, "exclude", nil,
		"Glob pattern for files to exclude (may be repeated).")

	checkCmd.Flags().StringSlice("banned-from", nil,
		"Module names whose members must not be imported explicitly.")
	checkCmd.Flags().StringSlice("disable", nil,
		"Rule names to skip.")
	checkCmd.Flags().Int("jobs", 0,
		"Maximum files checked in parallel (0 = number of CPUs).")
	viper.BindPFlag("banned-from", checkCmd.Flags().Lookup("banned-from")) //nolint:errcheck // flag exists
	viper.BindPFlag("disable", checkCmd.Flags().Lookup("disable"))         //nolint:errcheck // flag exists
	viper.BindPFlag("jobs", checkCmd.Flags().Lookup("jobs"))               //nolint:errcheck // flag exists
}
