package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/argue/internal/config"
	"github.com/Iron-Ham/argue/internal/solver"
	"github.com/Iron-Ham/argue/internal/tui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse a framework's extensions interactively",
	Long: `Enumerate the extensions of an APX framework and browse them in an
interactive terminal view: the list pane shows each extension, the detail
pane shows the full IN/OUT/UNDEC labelling of the selected one, and "/"
filters by argument name.

Example:
  argue explore -f af.apx -s ST`,
	RunE: runExplore,
}

var (
	exploreFile      string
	exploreSemantics string
)

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().StringVarP(&exploreFile, "file", "f", "", "APX framework file")
	exploreCmd.Flags().StringVarP(&exploreSemantics, "semantics", "s", "CO", "Semantics: CO (complete) or ST (stable)")
	_ = exploreCmd.MarkFlagRequired("file")
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	log, err := newRunLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	engine, err := newEngine(exploreFile, cfg, log)
	if err != nil {
		return err
	}

	labellings, err := engine.Labellings(cmd.Context(), solver.Semantics(exploreSemantics), cfg.Solver.MaxExtensions)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s · %s", filepath.Base(exploreFile), exploreSemantics)
	return tui.Run(title, labellings)
}
