package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/argue/internal/config"
	"github.com/Iron-Ham/argue/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Answer one decision problem about a framework",
	Long: `Answer one of the six decision problems about an APX framework.

Problem codes combine a task with a semantics:
  VE-CO, VE-ST  verify that the -a set is a complete / stable extension
  DC-CO, DC-ST  credulous acceptance: is -a in some extension?
  DS-CO, DS-ST  skeptical acceptance: is -a in every extension?

Examples:
  # Is {a,c} a complete extension of the framework?
  argue solve -f af.apx -p VE-CO -a a,c

  # Is the empty set a stable extension?
  argue solve -f af.apx -p VE-ST

  # Is b credulously accepted under stable semantics?
  argue solve -f af.apx -p DC-ST -a b`,
	RunE: runSolve,
}

var (
	solveProblem string
	solveFile    string
	solveArgs    string
)

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveProblem, "problem", "p", "", "Problem code (VE-CO, DC-CO, DS-CO, VE-ST, DC-ST, DS-ST)")
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "APX framework file")
	solveCmd.Flags().StringVarP(&solveArgs, "arguments", "a", "", "Target arguments, comma-separated (one for DC-*/DS-*, any number for VE-*)")
	_ = solveCmd.MarkFlagRequired("problem")
	_ = solveCmd.MarkFlagRequired("file")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	log, err := newRunLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	problem, err := solver.ParseProblem(solveProblem)
	if err != nil {
		return err
	}
	target, err := parseTargets(solveArgs)
	if err != nil {
		return err
	}

	engine, err := newEngine(solveFile, cfg, log)
	if err != nil {
		return err
	}

	answer, err := engine.Evaluate(cmd.Context(), problem, target)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderAnswer(answer, colorEnabled(cfg.Output.Color)))
	return nil
}
