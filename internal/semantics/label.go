package semantics

import (
	"strings"

	"github.com/Iron-Ham/argue/internal/af"
)

// Label is the status of one argument in a labelling.
type Label uint8

const (
	// Unset marks an argument the search has not yet committed. It never
	// appears in a labelling surfaced outside this package.
	Unset Label = iota
	// In marks an accepted argument: all of its attackers are Out.
	In
	// Out marks a rejected argument: at least one attacker is In.
	Out
	// Undec marks an undecided argument: no attacker is In, but not all
	// attackers are Out.
	Undec
)

// String returns the conventional uppercase name of the label.
func (l Label) String() string {
	switch l {
	case In:
		return "IN"
	case Out:
		return "OUT"
	case Undec:
		return "UNDEC"
	case Unset:
		return "UNSET"
	default:
		return "UNKNOWN"
	}
}

// Labelling is a total assignment of labels to the arguments of one
// framework. Instances produced by this package are immutable.
type Labelling struct {
	fw     *af.Framework
	labels []Label
}

// Framework returns the framework this labelling is defined over.
func (l *Labelling) Framework() *af.Framework {
	return l.fw
}

// Of returns the label of arg, or Unset when arg is not part of the
// framework.
func (l *Labelling) Of(arg af.Argument) Label {
	i, ok := l.fw.Index(arg)
	if !ok {
		return Unset
	}
	return l.labels[i]
}

// At returns the label of the argument at framework index i.
func (l *Labelling) At(i int) Label {
	return l.labels[i]
}

// Extension returns the IN arguments in declaration order. This is the
// extension characterized by the labelling.
func (l *Labelling) Extension() []af.Argument {
	return l.WithLabel(In)
}

// WithLabel returns the arguments carrying lbl, in declaration order.
func (l *Labelling) WithLabel(lbl Label) []af.Argument {
	var out []af.Argument
	for i, got := range l.labels {
		if got == lbl {
			out = append(out, l.fw.At(i))
		}
	}
	return out
}

// HasUndec reports whether any argument is labelled UNDEC. A complete
// labelling without UNDEC arguments is stable.
func (l *Labelling) HasUndec() bool {
	for _, lbl := range l.labels {
		if lbl == Undec {
			return true
		}
	}
	return false
}

// IsComplete reports whether the labelling is a fixed point of the
// characteristic update rule: every argument is IN iff all its attackers
// are OUT, OUT iff some attacker is IN, and UNDEC otherwise.
func (l *Labelling) IsComplete() bool {
	for i, lbl := range l.labels {
		someIn, allOut := l.attackerProfile(i)
		switch lbl {
		case In:
			if !allOut {
				return false
			}
		case Out:
			if !someIn {
				return false
			}
		case Undec:
			if someIn || allOut {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// attackerProfile reports whether some attacker of i is In and whether all
// attackers of i are Out. allOut is vacuously true for unattacked arguments.
func (l *Labelling) attackerProfile(i int) (someIn, allOut bool) {
	allOut = true
	for _, b := range l.fw.Attackers(i) {
		switch l.labels[b] {
		case In:
			someIn = true
			allOut = false
		case Out:
		default:
			allOut = false
		}
	}
	return someIn, allOut
}

// String renders the labelling as "{a=IN, b=OUT, c=UNDEC}" in declaration
// order.
func (l *Labelling) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, lbl := range l.labels {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(l.fw.At(i)))
		b.WriteByte('=')
		b.WriteString(lbl.String())
	}
	b.WriteByte('}')
	return b.String()
}

// FromExtension builds the labelling induced by a candidate extension:
// members are IN, arguments attacked by a member are OUT, everything else
// is UNDEC. It reports false when set contains an argument the framework
// does not declare. The result is only a complete labelling when set is a
// complete extension.
func FromExtension(fw *af.Framework, set []af.Argument) (*Labelling, bool) {
	member, ok := memberMask(fw, set)
	if !ok {
		return nil, false
	}

	labels := make([]Label, fw.Size())
	for i := range labels {
		labels[i] = Undec
	}
	for i, in := range member {
		if !in {
			continue
		}
		labels[i] = In
		for _, t := range fw.Targets(i) {
			if !member[t] {
				labels[t] = Out
			}
		}
	}
	return &Labelling{fw: fw, labels: labels}, true
}
