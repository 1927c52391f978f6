// Copyright © 2025 The pyvet authors

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pyvet",
	Short: "pyvet — rule checks for parsed Python source",
	Long: `pyvet runs rule checks over parsed Python source files, similar to
"go vet" for Go.

pyvet does not parse Python itself. A front end parses each source file and
emits its statement tree as JSON; pyvet decodes the tree, resolves import
bindings, evaluates rules, and reports diagnostics.

Getting started:
  pyvet check file.ast.json    Check a single parsed file
  pyvet check ./...            Check every parsed file under the current directory
  pyvet rules                  List available rules
  pyvet rules --doc            Show full rule documentation

Rules run in two phases. Immediate checks fire while walking the statement
tree, using only what is spelled in the source. Deferred checks fire after
the whole file has been resolved into bindings, when fully qualified import
origins are known.

To suppress a finding, record a noqa directive on its line in the front
end's output:  x = 1  # noqa: while-loop`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.pyvet.yaml, then $HOME/.pyvet.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search the working directory first, then the home directory.
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".pyvet")
	}

	viper.SetEnvPrefix("pyvet")
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "pyvet: reading config:", err)
			os.Exit(2)
		}
	}
}
