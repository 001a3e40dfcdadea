package solver

import (
	"strings"

	"github.com/Iron-Ham/argue/internal/errors"
)

// Problem identifies one of the six decision problems the engine answers.
// A code is a task prefix and a semantics suffix joined by a dash, e.g.
// "DC-CO" asks for credulous acceptance under complete semantics.
type Problem string

const (
	// ProblemVerifyComplete asks whether the target set is a complete
	// extension.
	ProblemVerifyComplete Problem = "VE-CO"
	// ProblemCredulousComplete asks whether some complete extension
	// contains the target argument.
	ProblemCredulousComplete Problem = "DC-CO"
	// ProblemSkepticalComplete asks whether every complete extension
	// contains the target argument.
	ProblemSkepticalComplete Problem = "DS-CO"
	// ProblemVerifyStable asks whether the target set is a stable
	// extension.
	ProblemVerifyStable Problem = "VE-ST"
	// ProblemCredulousStable asks whether some stable extension contains
	// the target argument.
	ProblemCredulousStable Problem = "DC-ST"
	// ProblemSkepticalStable asks whether every stable extension contains
	// the target argument. With zero stable extensions the answer is
	// vacuously true.
	ProblemSkepticalStable Problem = "DS-ST"
)

// Task is the decision flavor of a problem code.
type Task string

const (
	// TaskVerify checks a candidate extension.
	TaskVerify Task = "VE"
	// TaskCredulous asks for membership in at least one extension.
	TaskCredulous Task = "DC"
	// TaskSkeptical asks for membership in every extension.
	TaskSkeptical Task = "DS"
)

// Semantics selects the extension semantics of a problem code.
type Semantics string

const (
	// SemanticsComplete selects Dung's complete semantics.
	SemanticsComplete Semantics = "CO"
	// SemanticsStable selects Dung's stable semantics.
	SemanticsStable Semantics = "ST"
)

// Valid reports whether sem is a recognized semantics code.
func (s Semantics) Valid() bool {
	return s == SemanticsComplete || s == SemanticsStable
}

// String returns the problem code.
func (p Problem) String() string {
	return string(p)
}

// Valid reports whether p is one of the six recognized problem codes.
func (p Problem) Valid() bool {
	switch p {
	case ProblemVerifyComplete, ProblemCredulousComplete, ProblemSkepticalComplete,
		ProblemVerifyStable, ProblemCredulousStable, ProblemSkepticalStable:
		return true
	}
	return false
}

// Task returns the task prefix of the code, or "" for a malformed code.
func (p Problem) Task() Task {
	if i := strings.IndexByte(string(p), '-'); i > 0 {
		return Task(p[:i])
	}
	return ""
}

// Semantics returns the semantics suffix of the code, or "" for a malformed
// code.
func (p Problem) Semantics() Semantics {
	if i := strings.IndexByte(string(p), '-'); i >= 0 && i+1 < len(p) {
		return Semantics(p[i+1:])
	}
	return ""
}

// Problems returns all recognized problem codes, verification tasks first.
func Problems() []Problem {
	return []Problem{
		ProblemVerifyComplete,
		ProblemCredulousComplete,
		ProblemSkepticalComplete,
		ProblemVerifyStable,
		ProblemCredulousStable,
		ProblemSkepticalStable,
	}
}

// ParseProblem validates a problem code supplied by a caller. Codes are
// case-sensitive.
func ParseProblem(code string) (Problem, error) {
	p := Problem(code)
	if p.Valid() {
		return p, nil
	}

	valid := make([]string, 0, 6)
	for _, known := range Problems() {
		valid = append(valid, known.String())
	}
	return "", errors.Wrapf(errors.ErrUnknownProblem,
		"%q is not a problem code (choose one of %s)", code, strings.Join(valid, ", "))
}
