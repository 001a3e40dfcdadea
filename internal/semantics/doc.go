// Package semantics implements Dung's complete and stable semantics over
// abstract argumentation frameworks: the IN/OUT/UNDEC labelling model, the
// extension predicates used for direct verification, and the backtracking
// search that enumerates complete labellings with constraint propagation.
//
// # Architecture
//
// The package has three layers:
//
//   - [Label] and [Labelling]: a total assignment of IN, OUT, or UNDEC to
//     every argument. The extension of a labelling is its IN set.
//   - Extension predicates ([IsConflictFree], [IsAdmissible], [IsComplete],
//     [IsStable]): pure checks of a candidate set against a framework.
//   - [Enumerate] and [Grounded]: the labelling search. Enumerate walks
//     complete labellings in a deterministic order and hands each to a
//     visitor that can stop the search early; Grounded computes the unique
//     minimal complete labelling by propagation alone.
//
// # Usage
//
// Deciding credulous acceptance of an argument:
//
//	found := false
//	err := semantics.Enumerate(ctx, fw, semantics.Options{}, func(l *semantics.Labelling) bool {
//		if l.Of(arg) == semantics.In {
//			found = true
//			return false // stop at the first witness
//		}
//		return true
//	})
//
// All state lives on the search stack. A framework is never mutated, so any
// number of enumerations may run concurrently against it.
package semantics
