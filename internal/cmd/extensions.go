package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/argue/internal/config"
	"github.com/Iron-Ham/argue/internal/solver"
)

var extensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "Enumerate the extensions of a framework",
	Long: `Enumerate the extensions of an APX framework under the chosen semantics,
one per line in search order. The enumeration can be capped with --max or
the solver.max_extensions config key; 0 means no cap.

Examples:
  # All complete extensions
  argue extensions -f af.apx

  # At most five stable extensions, as JSON
  argue extensions -f af.apx -s ST --max 5 --json`,
	RunE: runExtensions,
}

var (
	extensionsFile      string
	extensionsSemantics string
	extensionsMax       int
	extensionsJSON      bool
)

func init() {
	rootCmd.AddCommand(extensionsCmd)

	extensionsCmd.Flags().StringVarP(&extensionsFile, "file", "f", "", "APX framework file")
	extensionsCmd.Flags().StringVarP(&extensionsSemantics, "semantics", "s", "CO", "Semantics: CO (complete) or ST (stable)")
	extensionsCmd.Flags().IntVar(&extensionsMax, "max", -1, "Maximum extensions to enumerate (0 = unlimited, default from config)")
	extensionsCmd.Flags().BoolVar(&extensionsJSON, "json", false, "Emit a JSON array of extensions")
	_ = extensionsCmd.MarkFlagRequired("file")
}

func runExtensions(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	log, err := newRunLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	engine, err := newEngine(extensionsFile, cfg, log)
	if err != nil {
		return err
	}

	max := extensionsMax
	if max < 0 {
		max = cfg.Solver.MaxExtensions
	}

	exts, err := engine.Extensions(cmd.Context(), solver.Semantics(extensionsSemantics), max)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if extensionsJSON {
		payload := make([][]string, len(exts))
		for i, ext := range exts {
			payload[i] = make([]string, len(ext))
			for j, arg := range ext {
				payload[i][j] = string(arg)
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	for _, ext := range exts {
		fmt.Fprintln(out, renderExtension(ext))
	}
	return nil
}
