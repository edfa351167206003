package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hartcorrin/cdcl/internal/core"
	"github.com/hartcorrin/cdcl/internal/dimacsio"
)

func newVerifyModelCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "verify-model <instance.cnf> <models-file>",
		Short: "Check that every model in a file satisfies a CNF instance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cnfPath, modelsPath := args[0], args[1]

			if err := verifyModels(cmd, cnfPath, modelsPath); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchAndReverify(cmd, cnfPath, modelsPath)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "re-verify whenever the instance or models file changes")
	return cmd
}

func verifyModels(cmd *cobra.Command, cnfPath, modelsPath string) error {
	problem, err := dimacsio.ReadCNF(cnfPath, false)
	if err != nil {
		return fmt.Errorf("reading instance: %w", err)
	}
	models, err := dimacsio.ReadModels(modelsPath)
	if err != nil {
		return fmt.Errorf("reading models: %w", err)
	}

	out := cmd.OutOrStdout()
	allOK := true
	for i, model := range models {
		unsatisfied := firstUnsatisfiedClause(problem, model)
		if unsatisfied < 0 {
			fmt.Fprintf(out, "c model %d: OK\n", i)
			continue
		}
		allOK = false
		fmt.Fprintf(out, "c model %d: FAILS clause %d\n", i, unsatisfied)
	}
	if !allOK {
		return fmt.Errorf("at least one model failed verification")
	}
	return nil
}

// firstUnsatisfiedClause returns the index of the first clause in problem
// that model does not satisfy, or -1 if model satisfies every clause.
func firstUnsatisfiedClause(problem core.CNF, model []bool) int {
	for ci, clause := range problem.Clauses {
		satisfied := false
		for _, l := range clause {
			v := l.VarID()
			if v < len(model) && model[v] == l.IsPositive() {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return ci
		}
	}
	return -1
}

// watchAndReverify re-runs verifyModels whenever cnfPath or modelsPath
// changes on disk. fsnotify watches the containing directories rather than
// the files directly, since editors commonly replace a file (rename plus
// create) instead of writing it in place, an event a direct file watch
// would miss.
func watchAndReverify(cmd *cobra.Command, cnfPath, modelsPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer watcher.Close()

	dirs := map[string]bool{
		filepath.Dir(cnfPath):    true,
		filepath.Dir(modelsPath): true,
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	log := logrus.StandardLogger()
	log.WithFields(logrus.Fields{"cnf": cnfPath, "models": modelsPath}).Info("watching for changes")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if name != filepath.Clean(cnfPath) && name != filepath.Clean(modelsPath) {
				continue
			}
			log.WithField("file", name).Info("change detected, re-verifying")
			if err := verifyModels(cmd, cnfPath, modelsPath); err != nil {
				log.WithError(err).Warn("verification failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watcher error")
		}
	}
}
