package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/argue/internal/config"
	"github.com/Iron-Ham/argue/internal/semantics"
)

var groundedCmd = &cobra.Command{
	Use:   "grounded",
	Short: "Compute the grounded extension of a framework",
	Long: `Compute the grounded labelling of an APX framework: the unique minimal
complete labelling reached by propagation alone. By default only the
extension (the IN arguments) is printed; --labelling prints the full
IN/OUT/UNDEC partition.

Examples:
  argue grounded -f af.apx
  argue grounded -f af.apx --labelling`,
	RunE: runGrounded,
}

var (
	groundedFile      string
	groundedLabelling bool
)

func init() {
	rootCmd.AddCommand(groundedCmd)

	groundedCmd.Flags().StringVarP(&groundedFile, "file", "f", "", "APX framework file")
	groundedCmd.Flags().BoolVar(&groundedLabelling, "labelling", false, "Print the full IN/OUT/UNDEC partition")
	_ = groundedCmd.MarkFlagRequired("file")
}

func runGrounded(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	log, err := newRunLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	engine, err := newEngine(groundedFile, cfg, log)
	if err != nil {
		return err
	}

	l := engine.Grounded()
	out := cmd.OutOrStdout()

	if !groundedLabelling {
		fmt.Fprintln(out, renderExtension(l.Extension()))
		return nil
	}

	for _, lbl := range []semantics.Label{semantics.In, semantics.Out, semantics.Undec} {
		fmt.Fprintf(out, "%-5s %s\n", lbl.String()+":", renderExtension(l.WithLabel(lbl)))
	}
	return nil
}
