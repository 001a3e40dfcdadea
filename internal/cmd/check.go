package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/argue/internal/apx"
	"github.com/Iron-Ham/argue/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate an APX framework file",
	Long: `Parse an APX framework file and report whether it is well formed: every
line a valid directive, every attack endpoint declared. Exits non-zero on
the first problem found.

Examples:
  argue check -f af.apx
  argue check -f af.apx --print   # re-emit the framework in canonical form`,
	RunE: runCheck,
}

var (
	checkFile  string
	checkPrint bool
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "APX framework file")
	checkCmd.Flags().BoolVar(&checkPrint, "print", false, "Print the framework in canonical APX form")
	_ = checkCmd.MarkFlagRequired("file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	log, err := newRunLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	fw, err := apx.ParseFile(checkFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if checkPrint {
		return apx.Write(out, fw)
	}

	fmt.Fprintf(out, "%s: %d arguments, %d attacks\n", checkFile, fw.Size(), len(fw.Attacks()))
	return nil
}
