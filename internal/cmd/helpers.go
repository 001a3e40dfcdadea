package cmd

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/Iron-Ham/argue/internal/af"
	"github.com/Iron-Ham/argue/internal/apx"
	"github.com/Iron-Ham/argue/internal/config"
	"github.com/Iron-Ham/argue/internal/errors"
	"github.com/Iron-Ham/argue/internal/logging"
	"github.com/Iron-Ham/argue/internal/solver"
)

var (
	yesStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")) // Green
	noStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F87171")) // Red
)

// newRunLogger builds the logger for one command invocation, tagged with a
// fresh run ID. Logging defaults to off; when enabled, records go to stderr
// or the configured file so stdout stays reserved for answers.
func newRunLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}

	log, err := logging.NewLogger(cfg.Logging.File, cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return nil, err
	}
	return log.WithRun(uuid.NewString()), nil
}

// newEngine parses the framework file and builds a solver engine configured
// per the solver section of the config.
func newEngine(path string, cfg *config.Config, log *logging.Logger) (*solver.Engine, error) {
	fw, err := apx.ParseFile(path)
	if err != nil {
		return nil, err
	}

	opts := []solver.Option{solver.WithLogger(log.WithFramework(path))}
	if cfg.Solver.Order == "lexicographic" {
		opts = append(opts, solver.WithLexicographicOrder())
	}
	return solver.New(fw, opts...), nil
}

// parseTargets splits a comma-separated argument list into argument names.
// An empty or omitted list is the empty target set, which is a valid
// candidate extension for VE-* problems. Names are validated lexically here
// so a typo like "a;b" fails before the framework is consulted.
func parseTargets(list string) ([]af.Argument, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	parts := strings.Split(list, ",")
	out := make([]af.Argument, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if !apx.ValidName(name) {
			return nil, errors.Wrapf(errors.ErrSyntax, "%q is not a valid argument name", name)
		}
		out = append(out, af.Argument(name))
	}
	return out, nil
}

// colorEnabled resolves the configured color mode against the terminal.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

// renderAnswer formats a boolean answer as the YES/NO output token.
func renderAnswer(answer, color bool) string {
	if answer {
		if color {
			return yesStyle.Render("YES")
		}
		return "YES"
	}
	if color {
		return noStyle.Render("NO")
	}
	return "NO"
}

// renderExtension formats an extension as "{a,b,c}".
func renderExtension(ext []af.Argument) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, arg := range ext {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(arg))
	}
	b.WriteByte('}')
	return b.String()
}
