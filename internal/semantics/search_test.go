package semantics

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/Iron-Ham/argue/internal/af"
)

// extKey canonicalizes an extension for comparison. Members arrive in
// declaration order from both the search and the oracle.
func extKey(set []af.Argument) string {
	parts := make([]string, len(set))
	for i, a := range set {
		parts[i] = string(a)
	}
	return strings.Join(parts, ",")
}

// collectExtensions runs the search to exhaustion and returns the yielded
// extensions in yield order.
func collectExtensions(t *testing.T, fw *af.Framework, opts Options) []string {
	t.Helper()
	var keys []string
	err := Enumerate(context.Background(), fw, opts, func(l *Labelling) bool {
		keys = append(keys, extKey(l.Extension()))
		return true
	})
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}
	return keys
}

// oracleExtensions brute-forces the extensions of fw under pred by checking
// every subset of arguments.
func oracleExtensions(fw *af.Framework, pred func(*af.Framework, []af.Argument) bool) []string {
	var keys []string
	forEachSubset(fw, func(set []af.Argument) {
		if pred(fw, set) {
			keys = append(keys, extKey(set))
		}
	})
	sort.Strings(keys)
	return keys
}

func sorted(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	sort.Strings(out)
	return out
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEnumerate_FixtureExtensions(t *testing.T) {
	tests := []struct {
		name   string
		fw     *af.Framework
		wantCO []string // sorted
		wantST []string // sorted
	}{
		{"chain3", chain3(t), []string{"a,c"}, []string{"a,c"}},
		{"twoCycle", twoCycle(t), []string{"", "a", "b"}, []string{"a", "b"}},
		{"threeCycle", threeCycle(t), []string{""}, nil},
		{"selfLoop", selfLoop(t), []string{""}, nil},
		{"contested", contested(t), []string{"", "a", "b"}, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCO := sorted(collectExtensions(t, tt.fw, Options{}))
			if !equalKeys(gotCO, tt.wantCO) {
				t.Errorf("complete extensions = %v, want %v", gotCO, tt.wantCO)
			}
			gotST := sorted(collectExtensions(t, tt.fw, Options{StableOnly: true}))
			if !equalKeys(gotST, sorted(tt.wantST)) {
				t.Errorf("stable extensions = %v, want %v", gotST, tt.wantST)
			}
		})
	}
}

// The search must find exactly the extensions the set predicates accept.
func TestEnumerate_MatchesOracle(t *testing.T) {
	frameworks := map[string]*af.Framework{
		"chain3":     chain3(t),
		"twoCycle":   twoCycle(t),
		"threeCycle": threeCycle(t),
		"selfLoop":   selfLoop(t),
		"contested":  contested(t),
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 12; i++ {
		n := 4 + i%3
		frameworks[fmt.Sprintf("random%02d", i)] = randomFramework(t, rng, n, 0.3)
	}

	for name, fw := range frameworks {
		t.Run(name, func(t *testing.T) {
			gotCO := sorted(collectExtensions(t, fw, Options{}))
			wantCO := oracleExtensions(fw, IsComplete)
			if !equalKeys(gotCO, wantCO) {
				t.Errorf("complete: search = %v, oracle = %v", gotCO, wantCO)
			}

			gotST := sorted(collectExtensions(t, fw, Options{StableOnly: true}))
			wantST := oracleExtensions(fw, IsStable)
			if !equalKeys(gotST, wantST) {
				t.Errorf("stable: search = %v, oracle = %v", gotST, wantST)
			}
		})
	}
}

func TestEnumerate_Deterministic(t *testing.T) {
	fw := twoCycle(t)

	first := collectExtensions(t, fw, Options{})
	second := collectExtensions(t, fw, Options{})
	if !equalKeys(first, second) {
		t.Errorf("two runs differ: %v vs %v", first, second)
	}

	// Branching tries IN before OUT before UNDEC on argument a.
	want := []string{"a", "b", ""}
	if !equalKeys(first, want) {
		t.Errorf("yield order = %v, want %v", first, want)
	}
}

func TestEnumerate_CustomOrder(t *testing.T) {
	fw := twoCycle(t)

	// Branch on b first: the witness containing b now comes up first.
	got := collectExtensions(t, fw, Options{Order: []int{1, 0}})
	want := []string{"b", "a", ""}
	if !equalKeys(got, want) {
		t.Errorf("yield order = %v, want %v", got, want)
	}

	if !equalKeys(sorted(got), sorted(collectExtensions(t, fw, Options{}))) {
		t.Error("custom order changed the set of extensions")
	}
}

func TestEnumerate_InvalidOrder(t *testing.T) {
	tests := []struct {
		name  string
		order []int
	}{
		{"too short", []int{0}},
		{"repeated index", []int{0, 0}},
		{"out of range", []int{0, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Enumerate(context.Background(), twoCycle(t), Options{Order: tt.order}, func(*Labelling) bool {
				return true
			})
			if err == nil {
				t.Error("Enumerate() error = nil, want order validation error")
			}
		})
	}
}

func TestEnumerate_EarlyStop(t *testing.T) {
	fw := twoCycle(t)

	visits := 0
	err := Enumerate(context.Background(), fw, Options{}, func(*Labelling) bool {
		visits++
		return false
	})
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}
	if visits != 1 {
		t.Errorf("visits = %d, want 1", visits)
	}
}

func TestEnumerate_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Enumerate(ctx, twoCycle(t), Options{}, func(*Labelling) bool {
		t.Error("visitor ran after cancellation")
		return true
	})
	if err != context.Canceled {
		t.Errorf("Enumerate() error = %v, want context.Canceled", err)
	}
}

func TestEnumerate_EmptyFramework(t *testing.T) {
	fw := mustBuild(t, nil, nil)

	got := collectExtensions(t, fw, Options{})
	if !equalKeys(got, []string{""}) {
		t.Errorf("extensions = %v, want the single empty extension", got)
	}

	gotST := collectExtensions(t, fw, Options{StableOnly: true})
	if !equalKeys(gotST, []string{""}) {
		t.Errorf("stable extensions = %v, want the single empty extension", gotST)
	}
}

// Every yielded labelling must pass both the labelling-level and the
// set-level definitions of its semantics.
func TestEnumerate_YieldsAreWellFormed(t *testing.T) {
	fw := contested(t)

	err := Enumerate(context.Background(), fw, Options{}, func(l *Labelling) bool {
		if !l.IsComplete() {
			t.Errorf("yielded labelling %v is not a fixed point", l)
		}
		if !IsComplete(fw, l.Extension()) {
			t.Errorf("yielded extension %v fails IsComplete", l.Extension())
		}
		return true
	})
	if err != nil {
		t.Fatalf("Enumerate() error = %v", err)
	}

	err = Enumerate(context.Background(), fw, Options{StableOnly: true}, func(l *Labelling) bool {
		if l.HasUndec() {
			t.Errorf("stable search yielded %v with UNDEC arguments", l)
		}
		if !IsStable(fw, l.Extension()) {
			t.Errorf("yielded extension %v fails IsStable", l.Extension())
		}
		return true
	})
	if err != nil {
		t.Fatalf("Enumerate(StableOnly) error = %v", err)
	}
}

func TestGrounded_Fixtures(t *testing.T) {
	tests := []struct {
		name string
		fw   *af.Framework
		want map[af.Argument]Label
	}{
		{
			name: "chain3 resolves fully",
			fw:   chain3(t),
			want: map[af.Argument]Label{"a": In, "b": Out, "c": In},
		},
		{
			name: "twoCycle stays undecided",
			fw:   twoCycle(t),
			want: map[af.Argument]Label{"a": Undec, "b": Undec},
		},
		{
			name: "threeCycle stays undecided",
			fw:   threeCycle(t),
			want: map[af.Argument]Label{"a": Undec, "b": Undec, "c": Undec},
		},
		{
			name: "self attacker is undecided",
			fw:   selfLoop(t),
			want: map[af.Argument]Label{"a": Undec},
		},
		{
			name: "contested cycle drags target down",
			fw:   contested(t),
			want: map[af.Argument]Label{"a": Undec, "b": Undec, "c": Undec},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Grounded(tt.fw)
			for arg, want := range tt.want {
				if lbl := got.Of(arg); lbl != want {
					t.Errorf("Grounded().Of(%s) = %v, want %v", arg, lbl, want)
				}
			}
			if !got.IsComplete() {
				t.Error("grounded labelling is not complete")
			}
		})
	}
}

// The grounded extension is the least complete extension: contained in every
// complete extension the search finds.
func TestGrounded_Minimal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 8; i++ {
		fw := randomFramework(t, rng, 5, 0.35)
		grounded := Grounded(fw).Extension()

		err := Enumerate(context.Background(), fw, Options{}, func(l *Labelling) bool {
			ext := l.Extension()
			for _, g := range grounded {
				if !containsArg(ext, g) {
					t.Errorf("grounded member %s missing from complete extension %v", g, ext)
				}
			}
			return true
		})
		if err != nil {
			t.Fatalf("Enumerate() error = %v", err)
		}
	}
}

func TestGrounded_IsolatedArgumentIn(t *testing.T) {
	fw := mustBuild(t,
		[]af.Argument{"a", "b", "d"},
		[]af.Attack{{Source: "a", Target: "b"}, {Source: "b", Target: "a"}},
	)

	got := Grounded(fw)
	if lbl := got.Of("d"); lbl != In {
		t.Errorf("Grounded().Of(d) = %v, want IN", lbl)
	}
	if lbl := got.Of("a"); lbl != Undec {
		t.Errorf("Grounded().Of(a) = %v, want UNDEC", lbl)
	}
}

// randomFramework builds a deterministic pseudo-random framework with n
// arguments and independent attack probability p per ordered pair.
func randomFramework(t *testing.T, rng *rand.Rand, n int, p float64) *af.Framework {
	t.Helper()
	args := make([]af.Argument, n)
	for i := range args {
		args[i] = af.Argument(fmt.Sprintf("x%d", i))
	}
	var attacks []af.Attack
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rng.Float64() < p {
				attacks = append(attacks, af.Attack{Source: args[i], Target: args[j]})
			}
		}
	}
	return mustBuild(t, args, attacks)
}
