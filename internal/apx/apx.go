// Package apx reads and writes argumentation frameworks in the APX text
// format. A framework is described line by line: "arg(name)." declares an
// argument, "att(source,target)." declares an attack. Argument names are
// sequences of letters, digits, and underscores; the tokens "arg" and "att"
// are reserved by the format and cannot name an argument.
//
// Parsing is strict. Every line that is not blank after trimming trailing
// whitespace must be a well-formed directive, and every attack endpoint must
// be declared somewhere in the file. Declarations may appear in any order;
// attacks may precede the arguments they mention.
package apx

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/Iron-Ham/argue/internal/af"
	"github.com/Iron-Ham/argue/internal/errors"
)

var (
	// lineRE matches one directive. Group 2 is a declared argument name;
	// groups 3 and 4 are an attack's source and target.
	lineRE = regexp.MustCompile(`^(arg\((\w+)\)|att\((\w+),(\w+)\))\.$`)

	// nameRE matches a bare argument name, reserved tokens excluded.
	nameRE = regexp.MustCompile(`^\w+$`)
)

// ValidName reports whether name is a lexically valid argument name:
// one or more word characters, and not a reserved format token.
func ValidName(name string) bool {
	if name == "arg" || name == "att" {
		return false
	}
	return nameRE.MatchString(name)
}

// Parse reads an APX framework description from r. Lines are validated as
// they are read; referential integrity of attacks is checked once the whole
// input is consumed, so declaration order does not matter.
//
// Errors are typed: [errors.SyntaxError] for a bad line,
// [errors.MalformedFrameworkError] for an attack endpoint that is never
// declared.
func Parse(r io.Reader) (*af.Framework, error) {
	var (
		arguments []af.Argument
		attacks   []af.Attack
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}

		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, errors.NewSyntaxError(lineNo, line)
		}

		if name := m[2]; name != "" {
			if !ValidName(name) {
				return nil, errors.NewSyntaxError(lineNo, line)
			}
			arguments = append(arguments, af.Argument(name))
			continue
		}

		source, target := m[3], m[4]
		if !ValidName(source) || !ValidName(target) {
			return nil, errors.NewSyntaxError(lineNo, line)
		}
		attacks = append(attacks, af.Attack{
			Source: af.Argument(source),
			Target: af.Argument(target),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read apx input")
	}

	return af.Build(arguments, attacks)
}

// ParseFile opens path and parses it as an APX framework description.
// Parse errors are annotated with the file path.
func ParseFile(path string) (*af.Framework, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fw, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return fw, nil
}

// Write renders fw in APX format: every argument declaration in framework
// order, then every attack. Output is buffered, so an argument name the
// format cannot represent aborts the write with nothing emitted.
func Write(w io.Writer, fw *af.Framework) error {
	bw := bufio.NewWriter(w)

	for _, arg := range fw.Arguments() {
		if !ValidName(string(arg)) {
			return errors.Wrapf(errors.ErrSyntax, "argument %q cannot be written as apx", arg)
		}
		if _, err := bw.WriteString("arg(" + string(arg) + ").\n"); err != nil {
			return err
		}
	}
	for _, atk := range fw.Attacks() {
		if _, err := bw.WriteString("att(" + string(atk.Source) + "," + string(atk.Target) + ").\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
