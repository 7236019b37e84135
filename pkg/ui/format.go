package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/wslaunch/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how a Renderer writes results
type Format int

const (
	FormatAuto Format = iota
	FormatTerminal
	FormatText
	FormatJSON
)

// formatNames lists the canonical name of each format first, then aliases.
var formatNames = map[Format][]string{
	FormatAuto:     {"auto", ""},
	FormatTerminal: {"term", "terminal"},
	FormatText:     {"text", "plain"},
	FormatJSON:     {"json"},
}

func (f Format) String() string {
	if names, ok := formatNames[f]; ok {
		return names[0]
	}
	return "unknown"
}

// Set implements pflag.Value so a Format can back the --output flag.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// FormatNames returns the canonical format names in declaration order.
func FormatNames() []string {
	return []string{
		FormatAuto.String(),
		FormatTerminal.String(),
		FormatText.String(),
		FormatJSON.String(),
	}
}

// ParseFormat accepts a canonical format name or one of its aliases,
// ignoring case.
func ParseFormat(s string) (Format, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for f, names := range formatNames {
		for _, name := range names {
			if name == want {
				return f, nil
			}
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown output format %q (want one of %s)",
		s, strings.Join(FormatNames(), ", ")).
		WithDetail("format", s)
}

// Resolve turns FormatAuto into a concrete format for output. Writers that
// are not files, such as buffers in tests, get FormatTerminal.
func (f Format) Resolve(output io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatTerminal
}

// DetectFormat picks FormatTerminal only when output is an interactive
// terminal with colour support and NO_COLOR is unset.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
