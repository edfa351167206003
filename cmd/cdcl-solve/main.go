// Command cdcl-solve is a small CLI front end over the CDCL engine: a
// solve subcommand that runs the search driver to completion and a
// verify-model subcommand that checks a candidate model against a CNF
// without running any search at all.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "cdcl-solve",
		Short: "A CDCL boolean satisfiability solver",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		log := logrus.StandardLogger()
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.InfoLevel)
		}
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	root.AddCommand(newSolveCommand())
	root.AddCommand(newVerifyModelCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "c error:", err)
		os.Exit(1)
	}
}
