// Package af defines the abstract argumentation framework model: a finite
// set of named arguments together with a directed attack relation over them.
//
// A [Framework] is immutable once constructed through [Build]. Arguments keep
// their declaration order, which downstream enumeration relies on for
// deterministic output. Both name-level accessors ([Framework.AttackersOf])
// and index-level accessors ([Framework.Attackers]) are provided; the index
// form avoids per-call allocation in the solver's inner loops.
package af

import (
	"github.com/Iron-Ham/argue/internal/errors"
)

// Argument is the opaque, case-sensitive identity of a single argument.
// The model places no lexical restrictions on names; input formats may.
type Argument string

// String returns the argument name.
func (a Argument) String() string {
	return string(a)
}

// Attack is one directed edge of the attack relation: Source attacks Target.
// Self-attacks (Source == Target) are legal.
type Attack struct {
	Source Argument
	Target Argument
}

// String renders the attack as "source -> target".
func (a Attack) String() string {
	return string(a.Source) + " -> " + string(a.Target)
}

// Framework is an immutable abstract argumentation framework. Arguments are
// stored in declaration order and addressable both by name and by dense
// index in [0, Size).
type Framework struct {
	args    []Argument
	index   map[Argument]int
	attacks []Attack

	// Adjacency by argument index.
	attackers [][]int // attackers[i] = indexes of arguments attacking args[i]
	targets   [][]int // targets[i] = indexes of arguments attacked by args[i]
}

// Build constructs a framework from a list of arguments and a list of
// attacks. Duplicate arguments and duplicate attacks are collapsed; the
// first occurrence fixes an argument's position in declaration order.
//
// Every attack endpoint must name a declared argument. An attack touching
// an undeclared argument aborts construction with a
// [errors.MalformedFrameworkError].
func Build(arguments []Argument, attacks []Attack) (*Framework, error) {
	fw := &Framework{
		index: make(map[Argument]int, len(arguments)),
	}

	for _, arg := range arguments {
		if _, ok := fw.index[arg]; ok {
			continue
		}
		fw.index[arg] = len(fw.args)
		fw.args = append(fw.args, arg)
	}

	fw.attackers = make([][]int, len(fw.args))
	fw.targets = make([][]int, len(fw.args))

	seen := make(map[Attack]struct{}, len(attacks))
	for _, atk := range attacks {
		src, ok := fw.index[atk.Source]
		if !ok {
			return nil, errors.NewMalformedFrameworkError(string(atk.Source), string(atk.Target), string(atk.Source))
		}
		dst, ok := fw.index[atk.Target]
		if !ok {
			return nil, errors.NewMalformedFrameworkError(string(atk.Source), string(atk.Target), string(atk.Target))
		}
		if _, dup := seen[atk]; dup {
			continue
		}
		seen[atk] = struct{}{}

		fw.attacks = append(fw.attacks, atk)
		fw.attackers[dst] = append(fw.attackers[dst], src)
		fw.targets[src] = append(fw.targets[src], dst)
	}

	return fw, nil
}

// Size returns the number of arguments.
func (f *Framework) Size() int {
	return len(f.args)
}

// Contains reports whether arg is a declared argument of the framework.
func (f *Framework) Contains(arg Argument) bool {
	_, ok := f.index[arg]
	return ok
}

// Index returns the dense index of arg and whether arg is declared.
func (f *Framework) Index(arg Argument) (int, bool) {
	i, ok := f.index[arg]
	return i, ok
}

// At returns the argument at index i. It panics if i is out of range,
// matching slice semantics.
func (f *Framework) At(i int) Argument {
	return f.args[i]
}

// Arguments returns the arguments in declaration order. The returned slice
// is a copy and may be modified freely.
func (f *Framework) Arguments() []Argument {
	out := make([]Argument, len(f.args))
	copy(out, f.args)
	return out
}

// Attacks returns the attack relation in declaration order, duplicates
// removed. The returned slice is a copy and may be modified freely.
func (f *Framework) Attacks() []Attack {
	out := make([]Attack, len(f.attacks))
	copy(out, f.attacks)
	return out
}

// AttackersOf returns the arguments attacking arg, in declaration order of
// the corresponding attacks. The result is empty when arg has no attackers
// or is not declared.
func (f *Framework) AttackersOf(arg Argument) []Argument {
	i, ok := f.index[arg]
	if !ok {
		return nil
	}
	return f.lift(f.attackers[i])
}

// AttackedBy returns the arguments that arg attacks, in declaration order of
// the corresponding attacks. The result is empty when arg attacks nothing
// or is not declared.
func (f *Framework) AttackedBy(arg Argument) []Argument {
	i, ok := f.index[arg]
	if !ok {
		return nil
	}
	return f.lift(f.targets[i])
}

// Attackers returns the indexes of the arguments attacking the argument at
// index i. The returned slice is shared; callers must not modify it.
func (f *Framework) Attackers(i int) []int {
	return f.attackers[i]
}

// Targets returns the indexes of the arguments attacked by the argument at
// index i. The returned slice is shared; callers must not modify it.
func (f *Framework) Targets(i int) []int {
	return f.targets[i]
}

// lift converts argument indexes to argument names.
func (f *Framework) lift(idx []int) []Argument {
	if len(idx) == 0 {
		return nil
	}
	out := make([]Argument, len(idx))
	for n, i := range idx {
		out[n] = f.args[i]
	}
	return out
}
