// Command mariec compiles a small C-flavored source language to
// MARIE-style accumulator-machine assembly.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"

	"github.com/skx/mariec/compiler"
	"github.com/skx/mariec/diag"
	"github.com/skx/mariec/lexer"
	"github.com/skx/mariec/libmerge"
	"github.com/skx/mariec/parser"
)

func main() {
	source := kingpin.Arg("source", "source file to compile (stdin if omitted)").String()
	libs := kingpin.Flag("l", "library source file to prepend, right-folded in the order given").Short('l').Strings()
	output := kingpin.Flag("o", "output path for the compiled assembly").Short('o').Default("a.marie").String()
	toStdout := kingpin.Flag("s", "write the compiled assembly to standard output instead of a file").Short('s').Bool()
	kingpin.Parse()

	if err := run(*source, *libs, *output, *toStdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(sourcePath string, libPaths []string, outputPath string, toStdout bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("internal error: %v", r)
		}
	}()

	code, err := readSource(sourcePath)
	if err != nil {
		return err
	}

	libCode := make([]string, len(libPaths))
	for i, p := range libPaths {
		raw, rerr := os.ReadFile(p)
		if rerr != nil {
			return errors.Wrapf(rerr, "reading library %q", p)
		}
		libCode[i] = string(raw)
	}

	lineOffset := 0
	if len(libCode) > 0 {
		combined := libmerge.Combine(libCode)
		lineOffset = strings.Count(combined, "\n")
		code = libmerge.Merge(code, libCode)
	}

	tree, cerr := compile(code)
	if cerr != nil {
		return diagnosticError(cerr, lineOffset)
	}

	asm := compiler.Compile(tree)

	if toStdout {
		_, err = fmt.Println(asm)
		return err
	}

	if err := os.WriteFile(outputPath, []byte(asm+"\n"), 0o644); err != nil {
		return errors.Wrapf(err, "writing output %q", outputPath)
	}
	return nil
}

func compile(code string) (*parser.ProgramTree, error) {
	lines, err := lexer.New(code).Tokenize()
	if err != nil {
		return nil, err
	}
	return parser.Parse(lines)
}

func readSource(path string) (string, error) {
	if path == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading source from stdin")
		}
		return string(raw), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading source %q", path)
	}
	return string(raw), nil
}

// diagnosticError turns a lexer/parser error into the final message the
// driver prints: the error text, the source line adjusted back past the
// library prepend, the original line text, and that line's token list.
// A non-lined error (an internal panic wrapped above, or an I/O error)
// passes through unchanged. When the offset correction would underflow
// — the error actually originated inside the prepended library text,
// which has no stable position in the user's un-spliced source — we
// fall back to a message that says so rather than print a bogus line.
func diagnosticError(err error, lineOffset int) error {
	lined, ok := err.(*diag.LinedError)
	if !ok {
		return err
	}

	adjustedLine := int(lined.Line) - lineOffset
	if adjustedLine < 0 {
		return errors.Errorf("%s (inside prepended library text, no source line to report)", lined.Message)
	}

	tokens := ""
	if toks, terr := lexer.New(lined.RelatedText).Tokenize(); terr == nil && len(toks) > 0 {
		parts := make([]string, len(toks[0].Elements))
		for i, t := range toks[0].Elements {
			parts[i] = t.String()
		}
		tokens = strings.Join(parts, " ")
	}

	return errors.Errorf("%s\n  at line %d: %q\n  tokens: %s",
		lined.Message, adjustedLine+1, lined.RelatedText, tokens)
}
