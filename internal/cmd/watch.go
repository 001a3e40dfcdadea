package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/argue/internal/config"
	"github.com/Iron-Ham/argue/internal/solver"
	"github.com/Iron-Ham/argue/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-solve a query whenever the framework file changes",
	Long: `Solve a query, then keep watching the framework file and print a fresh
answer every time the file changes. A file revision that fails to parse
is reported to stderr and the watch continues. Stop with Ctrl+C.

Example:
  argue watch -f af.apx -p DS-CO -a b`,
	RunE: runWatch,
}

var (
	watchProblem string
	watchFile    string
	watchArgs    string
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchProblem, "problem", "p", "", "Problem code (VE-CO, DC-CO, DS-CO, VE-ST, DC-ST, DS-ST)")
	watchCmd.Flags().StringVarP(&watchFile, "file", "f", "", "APX framework file")
	watchCmd.Flags().StringVarP(&watchArgs, "arguments", "a", "", "Target arguments, comma-separated")
	_ = watchCmd.MarkFlagRequired("problem")
	_ = watchCmd.MarkFlagRequired("file")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	log, err := newRunLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	problem, err := solver.ParseProblem(watchProblem)
	if err != nil {
		return err
	}
	target, err := parseTargets(watchArgs)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	color := colorEnabled(cfg.Output.Color)
	solveOnce := func() {
		engine, err := newEngine(watchFile, cfg, log)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return
		}
		answer, err := engine.Evaluate(ctx, problem, target)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderAnswer(answer, color))
	}

	// The first answer comes before any file change; validation errors in
	// the initial query (bad problem, bad file) already aborted above, so
	// from here on every failure is transient and the watch keeps going.
	solveOnce()

	w, err := watch.New(watchFile, cfg.Watch.Debounce(), solveOnce)
	if err != nil {
		return err
	}
	defer w.Stop()
	w.Start()

	log.Info("watching framework file", "file", watchFile, "problem", problem.String())
	<-ctx.Done()
	return nil
}
