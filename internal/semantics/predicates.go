package semantics

import (
	"github.com/Iron-Ham/argue/internal/af"
)

// The extension predicates check a candidate set directly, without search.
// They are the implementation of the VE-CO and VE-ST problems and serve as
// ground truth for the labelling search in tests.
//
// A set containing an argument the framework does not declare fails every
// predicate. Callers that need a typed error for that case validate
// membership before calling.

// IsConflictFree reports whether no member of set attacks another member.
func IsConflictFree(fw *af.Framework, set []af.Argument) bool {
	member, ok := memberMask(fw, set)
	if !ok {
		return false
	}
	return conflictFree(fw, member)
}

// IsAdmissible reports whether set is conflict-free and every member is
// defended by the set: each attacker of a member is counter-attacked by
// some member. The empty set is admissible.
func IsAdmissible(fw *af.Framework, set []af.Argument) bool {
	member, ok := memberMask(fw, set)
	if !ok {
		return false
	}
	return admissible(fw, member)
}

// IsComplete reports whether set is a complete extension: admissible and
// containing every argument it defends.
func IsComplete(fw *af.Framework, set []af.Argument) bool {
	member, ok := memberMask(fw, set)
	if !ok {
		return false
	}
	if !admissible(fw, member) {
		return false
	}
	for i := range member {
		if !member[i] && defended(fw, member, i) {
			return false
		}
	}
	return true
}

// IsStable reports whether set is a stable extension: conflict-free and
// attacking every argument outside itself.
func IsStable(fw *af.Framework, set []af.Argument) bool {
	member, ok := memberMask(fw, set)
	if !ok {
		return false
	}
	if !conflictFree(fw, member) {
		return false
	}
	for i := range member {
		if member[i] {
			continue
		}
		attacked := false
		for _, s := range fw.Attackers(i) {
			if member[s] {
				attacked = true
				break
			}
		}
		if !attacked {
			return false
		}
	}
	return true
}

// memberMask converts set to a membership mask over framework indexes.
// It reports false when set names an undeclared argument.
func memberMask(fw *af.Framework, set []af.Argument) ([]bool, bool) {
	member := make([]bool, fw.Size())
	for _, arg := range set {
		i, ok := fw.Index(arg)
		if !ok {
			return nil, false
		}
		member[i] = true
	}
	return member, true
}

func conflictFree(fw *af.Framework, member []bool) bool {
	for i := range member {
		if !member[i] {
			continue
		}
		for _, t := range fw.Targets(i) {
			if member[t] {
				return false
			}
		}
	}
	return true
}

func admissible(fw *af.Framework, member []bool) bool {
	if !conflictFree(fw, member) {
		return false
	}
	for i := range member {
		if member[i] && !defended(fw, member, i) {
			return false
		}
	}
	return true
}

// defended reports whether every attacker of the argument at index i is
// itself attacked by a member of the set.
func defended(fw *af.Framework, member []bool, i int) bool {
	for _, attacker := range fw.Attackers(i) {
		countered := false
		for _, s := range fw.Attackers(attacker) {
			if member[s] {
				countered = true
				break
			}
		}
		if !countered {
			return false
		}
	}
	return true
}
