package semantics

import (
	"testing"

	"github.com/Iron-Ham/argue/internal/af"
)

func TestLabel_String(t *testing.T) {
	tests := []struct {
		label Label
		want  string
	}{
		{In, "IN"},
		{Out, "OUT"},
		{Undec, "UNDEC"},
		{Unset, "UNSET"},
		{Label(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.label.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromExtension(t *testing.T) {
	fw := chain3(t) // a -> b -> c

	l, ok := FromExtension(fw, []af.Argument{"a", "c"})
	if !ok {
		t.Fatal("FromExtension() ok = false")
	}

	want := map[af.Argument]Label{"a": In, "b": Out, "c": In}
	for arg, wantLbl := range want {
		if got := l.Of(arg); got != wantLbl {
			t.Errorf("Of(%s) = %v, want %v", arg, got, wantLbl)
		}
	}
	if !l.IsComplete() {
		t.Error("labelling induced by a complete extension should be complete")
	}
}

func TestFromExtension_NonCompleteSet(t *testing.T) {
	fw := chain3(t)

	// {a} leaves c UNDEC: not attacked by a member, not a member.
	l, ok := FromExtension(fw, []af.Argument{"a"})
	if !ok {
		t.Fatal("FromExtension() ok = false")
	}
	if got := l.Of("c"); got != Undec {
		t.Errorf("Of(c) = %v, want UNDEC", got)
	}
	if l.IsComplete() {
		t.Error("labelling induced by {a} should not be complete")
	}
}

func TestFromExtension_UnknownMember(t *testing.T) {
	if _, ok := FromExtension(chain3(t), []af.Argument{"ghost"}); ok {
		t.Error("FromExtension() ok = true for an undeclared member")
	}
}

func TestLabelling_Accessors(t *testing.T) {
	fw := chain3(t)
	l, _ := FromExtension(fw, []af.Argument{"a", "c"})

	if l.Framework() != fw {
		t.Error("Framework() returned a different framework")
	}
	if got := l.Of("nope"); got != Unset {
		t.Errorf("Of(unknown) = %v, want UNSET", got)
	}
	if got := l.At(1); got != Out {
		t.Errorf("At(1) = %v, want OUT", got)
	}

	ext := l.Extension()
	if len(ext) != 2 || ext[0] != "a" || ext[1] != "c" {
		t.Errorf("Extension() = %v, want [a c]", ext)
	}
	outs := l.WithLabel(Out)
	if len(outs) != 1 || outs[0] != "b" {
		t.Errorf("WithLabel(Out) = %v, want [b]", outs)
	}
	if l.HasUndec() {
		t.Error("HasUndec() = true, want false")
	}
}

func TestLabelling_HasUndec(t *testing.T) {
	l := Grounded(twoCycle(t))
	if !l.HasUndec() {
		t.Error("HasUndec() = false for the two-cycle grounded labelling")
	}
}

func TestLabelling_String(t *testing.T) {
	fw := chain3(t)
	l, _ := FromExtension(fw, []af.Argument{"a", "c"})

	want := "{a=IN, b=OUT, c=IN}"
	if got := l.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLabelling_IsComplete_RejectsBadAssignments(t *testing.T) {
	fw := chain3(t)

	tests := []struct {
		name string
		ext  []af.Argument
	}{
		{"everything in", []af.Argument{"a", "b", "c"}},
		{"empty leaves a unforced", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := FromExtension(fw, tt.ext)
			if !ok {
				t.Fatal("FromExtension() ok = false")
			}
			if l.IsComplete() {
				t.Errorf("IsComplete() = true for extension %v", tt.ext)
			}
		})
	}
}
