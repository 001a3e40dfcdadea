package semantics

import (
	"context"

	"github.com/Iron-Ham/argue/internal/af"
	"github.com/Iron-Ham/argue/internal/errors"
)

// Visit receives each complete labelling the search yields, in enumeration
// order. Returning false stops the search immediately.
type Visit func(l *Labelling) bool

// Options tune the labelling search.
type Options struct {
	// Order fixes the branching order as a permutation of the framework's
	// argument indexes. Nil means declaration order. The order affects
	// performance and yield order, never which labellings are found.
	Order []int

	// StableOnly restricts enumeration to labellings with no UNDEC
	// argument, pruning every branch that would force one. The yielded
	// labellings are exactly the stable ones.
	StableOnly bool
}

// Enumerate walks the complete labellings of fw depth-first and calls visit
// for each one. Branching assigns the first unassigned argument in the fixed
// order, trying IN, then OUT, then UNDEC; constraint propagation runs to a
// fixed point after every assignment, so forced arguments are never branched
// on. Every recursive branch works on its own copy of the labelling state.
//
// For a fixed order the yield sequence is deterministic. The search finishes
// with a nil error when it exhausts the space or visit stops it; ctx is
// checked between backtracking steps and its error is returned on
// cancellation.
func Enumerate(ctx context.Context, fw *af.Framework, opts Options, visit Visit) error {
	order := opts.Order
	if order == nil {
		order = make([]int, fw.Size())
		for i := range order {
			order[i] = i
		}
	} else if !validOrder(fw.Size(), order) {
		return errors.New("search order must be a permutation of the framework's argument indexes")
	}

	s := &searcher{
		ctx:        ctx,
		fw:         fw,
		order:      order,
		stableOnly: opts.StableOnly,
		visit:      visit,
	}
	_, err := s.search(newState(fw.Size()))
	return err
}

// Grounded returns the grounded labelling of fw: run propagation from the
// empty assignment to its fixed point, then label UNDEC everything left
// unforced. The result is always a complete labelling, which is why complete
// extensions exist for every framework.
func Grounded(fw *af.Framework) *Labelling {
	s := &searcher{fw: fw}
	st := newState(fw.Size())
	// Propagation from the empty assignment cannot contradict: every label
	// it forces holds in the grounded labelling.
	s.propagate(st)
	for i, lbl := range st.labels {
		if lbl == Unset {
			st.labels[i] = Undec
		}
	}
	return &Labelling{fw: fw, labels: st.labels}
}

// searcher carries the per-enumeration invariants: the framework, branching
// order, and visitor. All mutable labelling state lives in state values.
type searcher struct {
	ctx        context.Context
	fw         *af.Framework
	order      []int
	stableOnly bool
	visit      Visit
}

// state is one node of the search tree. Branching clones it, so sibling
// branches never observe each other's assignments.
type state struct {
	labels     []Label
	unassigned int
}

func newState(n int) *state {
	return &state{labels: make([]Label, n), unassigned: n}
}

func (st *state) clone() *state {
	labels := make([]Label, len(st.labels))
	copy(labels, st.labels)
	return &state{labels: labels, unassigned: st.unassigned}
}

func (st *state) assign(i int, lbl Label) {
	st.labels[i] = lbl
	st.unassigned--
}

// search returns false when the visitor stopped the enumeration.
func (s *searcher) search(st *state) (bool, error) {
	if err := s.ctx.Err(); err != nil {
		return false, err
	}

	if !s.propagate(st) {
		return true, nil // contradiction, prune this branch
	}

	if st.unassigned == 0 {
		l := &Labelling{fw: s.fw, labels: st.labels}
		if !s.accept(l) {
			return true, nil
		}
		return s.visit(l), nil
	}

	i := s.firstUnassigned(st)
	for _, lbl := range s.branchLabels() {
		child := st.clone()
		child.assign(i, lbl)
		keep, err := s.search(child)
		if err != nil || !keep {
			return keep, err
		}
	}
	return true, nil
}

// propagate applies the forced-label rules until no unassigned argument can
// be resolved, and checks every committed label against its attackers. It
// returns false on contradiction.
//
// Rules for an unassigned argument: some attacker IN forces OUT; all
// attackers OUT forces IN; all attackers assigned with none IN and at least
// one UNDEC forces UNDEC (a conflict instead when only stable labellings
// are wanted).
func (s *searcher) propagate(st *state) bool {
	for {
		changed := false
		for i := range st.labels {
			p := s.profile(st, i)
			switch st.labels[i] {
			case Unset:
				switch {
				case p.someIn:
					st.assign(i, Out)
					changed = true
				case p.allOut:
					st.assign(i, In)
					changed = true
				case p.allAssigned && p.someUndec:
					if s.stableOnly {
						return false
					}
					st.assign(i, Undec)
					changed = true
				}
			case In:
				// An IN argument tolerates only OUT or still-open attackers.
				if p.someIn || p.someUndec {
					return false
				}
			case Out:
				// An OUT argument needs an IN attacker eventually.
				if p.allAssigned && !p.someIn {
					return false
				}
			case Undec:
				// An UNDEC argument must keep an UNDEC attacker and never
				// gain an IN one.
				if p.someIn || (p.allAssigned && !p.someUndec) {
					return false
				}
			}
		}
		if !changed {
			return true
		}
	}
}

type attackerProfile struct {
	someIn      bool
	someUndec   bool
	allOut      bool
	allAssigned bool
}

func (s *searcher) profile(st *state, i int) attackerProfile {
	p := attackerProfile{allOut: true, allAssigned: true}
	for _, b := range s.fw.Attackers(i) {
		switch st.labels[b] {
		case In:
			p.someIn = true
			p.allOut = false
		case Out:
		case Undec:
			p.someUndec = true
			p.allOut = false
		case Unset:
			p.allAssigned = false
			p.allOut = false
		}
	}
	return p
}

// accept is the final gate before a total labelling reaches the visitor.
// It re-verifies the candidate's extension with the set predicates.
func (s *searcher) accept(l *Labelling) bool {
	ext := l.Extension()
	if s.stableOnly {
		return IsStable(s.fw, ext)
	}
	return IsComplete(s.fw, ext)
}

func (s *searcher) firstUnassigned(st *state) int {
	for _, i := range s.order {
		if st.labels[i] == Unset {
			return i
		}
	}
	return -1
}

func (s *searcher) branchLabels() []Label {
	if s.stableOnly {
		return []Label{In, Out}
	}
	return []Label{In, Out, Undec}
}

func validOrder(n int, order []int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, i := range order {
		if i < 0 || i >= n || seen[i] {
			return false
		}
		seen[i] = true
	}
	return true
}
