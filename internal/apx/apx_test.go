package apx

import (
	"os"
	"strings"
	"testing"

	"github.com/Iron-Ham/argue/internal/af"
	"github.com/Iron-Ham/argue/internal/errors"
)

func TestParse_Basic(t *testing.T) {
	input := `arg(a).
arg(b).
arg(c).
att(a,b).
att(b,c).
`
	fw, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if fw.Size() != 3 {
		t.Errorf("Size() = %d, want 3", fw.Size())
	}
	wantArgs := []af.Argument{"a", "b", "c"}
	for i, arg := range fw.Arguments() {
		if arg != wantArgs[i] {
			t.Errorf("Arguments()[%d] = %q, want %q", i, arg, wantArgs[i])
		}
	}
	if got := fw.AttackersOf("b"); len(got) != 1 || got[0] != "a" {
		t.Errorf("AttackersOf(b) = %v, want [a]", got)
	}
}

func TestParse_BlankLinesAndCRLF(t *testing.T) {
	input := "arg(a).\r\n\r\narg(b).  \natt(a,b).\r\n\n"
	fw, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if fw.Size() != 2 {
		t.Errorf("Size() = %d, want 2", fw.Size())
	}
}

func TestParse_AttackBeforeDeclaration(t *testing.T) {
	input := "att(a,b).\narg(a).\narg(b).\n"
	fw, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := fw.AttackedBy("a"); len(got) != 1 || got[0] != "b" {
		t.Errorf("AttackedBy(a) = %v, want [b]", got)
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{
			name:     "missing period",
			input:    "arg(a)\n",
			wantLine: 1,
		},
		{
			name:     "unknown directive",
			input:    "arg(a).\natk(a,b).\n",
			wantLine: 2,
		},
		{
			name:     "interior whitespace",
			input:    "arg(a).\natt(a, b).\n",
			wantLine: 2,
		},
		{
			name:     "leading whitespace",
			input:    " arg(a).\n",
			wantLine: 1,
		},
		{
			name:     "bad name characters",
			input:    "arg(a-b).\n",
			wantLine: 1,
		},
		{
			name:     "reserved name arg",
			input:    "arg(arg).\n",
			wantLine: 1,
		},
		{
			name:     "reserved name att in attack",
			input:    "arg(a).\natt(a,att).\n",
			wantLine: 2,
		},
		{
			name:     "trailing garbage",
			input:    "arg(a). arg(b).\n",
			wantLine: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Parse() error = nil, want SyntaxError")
			}
			var syntax *errors.SyntaxError
			if !errors.As(err, &syntax) {
				t.Fatalf("Parse() error = %T (%v), want *SyntaxError", err, err)
			}
			if syntax.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", syntax.Line, tt.wantLine)
			}
		})
	}
}

func TestParse_UndeclaredEndpoints(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantMissing string
	}{
		{
			name:        "undeclared target",
			input:       "arg(a).\natt(a,b).\n",
			wantMissing: "b",
		},
		{
			name:        "undeclared source",
			input:       "arg(b).\natt(a,b).\n",
			wantMissing: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Parse() error = nil, want MalformedFrameworkError")
			}
			var malformed *errors.MalformedFrameworkError
			if !errors.As(err, &malformed) {
				t.Fatalf("Parse() error = %T (%v), want *MalformedFrameworkError", err, err)
			}
			if malformed.Missing != tt.wantMissing {
				t.Errorf("Missing = %q, want %q", malformed.Missing, tt.wantMissing)
			}
		})
	}
}

func TestParse_DuplicatesCollapse(t *testing.T) {
	input := "arg(a).\narg(a).\narg(b).\natt(a,b).\natt(a,b).\n"
	fw, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if fw.Size() != 2 {
		t.Errorf("Size() = %d, want 2", fw.Size())
	}
	if n := len(fw.Attacks()); n != 1 {
		t.Errorf("len(Attacks()) = %d, want 1", n)
	}
}

func TestParse_Empty(t *testing.T) {
	fw, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if fw.Size() != 0 {
		t.Errorf("Size() = %d, want 0", fw.Size())
	}
}

func TestParseFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ParseFile(t.TempDir() + "/nope.apx")
		if err == nil {
			t.Fatal("ParseFile() error = nil, want open error")
		}
	})

	t.Run("error includes path", func(t *testing.T) {
		dir := t.TempDir()
		path := dir + "/bad.apx"
		if err := os.WriteFile(path, []byte("nonsense\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := ParseFile(path)
		if err == nil {
			t.Fatal("ParseFile() error = nil, want SyntaxError")
		}
		if !strings.Contains(err.Error(), "bad.apx") {
			t.Errorf("error %q does not mention the file path", err)
		}
		if !errors.Is(err, errors.ErrSyntax) {
			t.Error("error should remain a SyntaxError through wrapping")
		}
	})
}

func TestWrite_RoundTrip(t *testing.T) {
	input := "arg(a).\narg(b).\narg(c).\natt(a,b).\natt(c,c).\n"
	fw, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var buf strings.Builder
	if err := Write(&buf, fw); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.String() != input {
		t.Errorf("Write() = %q, want %q", buf.String(), input)
	}
}

func TestWrite_InvalidName(t *testing.T) {
	fw, err := af.Build([]af.Argument{"a b"}, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var buf strings.Builder
	err = Write(&buf, fw)
	if err == nil {
		t.Fatal("Write() error = nil, want error for unrepresentable name")
	}
	if buf.String() != "" {
		t.Errorf("Write() emitted %q on error, want nothing", buf.String())
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a", true},
		{"A_1", true},
		{"0", true},
		{"argument", true},
		{"attack", true},
		{"arg", false},
		{"att", false},
		{"", false},
		{"a-b", false},
		{"a b", false},
		{"a.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidName(tt.name); got != tt.want {
				t.Errorf("ValidName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
