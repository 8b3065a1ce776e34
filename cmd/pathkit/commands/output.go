package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"sigs.k8s.io/yaml"

	"github.com/MacroPower/pathkit/pkg/batch"
)

// ErrUnknownOutput is returned when --output is not a known format.
var ErrUnknownOutput = errors.New("unknown output format")

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputText, OutputJSON, OutputYAML:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOutput, s)
}

type printer struct {
	w      io.Writer
	format OutputFormat
	check  lipgloss.Style
	cross  lipgloss.Style
	errMsg lipgloss.Style
}

// newPrinter creates a printer for w. Colors are only used if w is a
// terminal.
func newPrinter(w io.Writer, format OutputFormat) *printer {
	r := lipgloss.NewRenderer(w)
	if !isTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}

	return &printer{
		w:      w,
		format: format,
		check:  r.NewStyle().Foreground(lipgloss.Color("42")),
		cross:  r.NewStyle().Foreground(lipgloss.Color("196")),
		errMsg: r.NewStyle().Foreground(lipgloss.Color("211")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })

	return ok && isatty.IsTerminal(f.Fd())
}

// PrintResult writes the result of a single operation.
func (p *printer) PrintResult(res batch.Result) error {
	if p.format == OutputText {
		_, err := fmt.Fprintln(p.w, p.text(res))
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		return nil
	}

	return p.encode(res)
}

// PrintResults writes the results of a batch.
func (p *printer) PrintResults(results []batch.Result) error {
	if p.format != OutputText {
		return p.encode(results)
	}

	for i, res := range results {
		label := res.ID
		if label == "" {
			label = strconv.Itoa(i)
		}

		_, err := fmt.Fprintf(p.w, "%s\t%s\t%s\n", label, res.Op, p.text(res))
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}

func (p *printer) text(res batch.Result) string {
	if res.Error != "" {
		return p.errMsg.Render("error: " + res.Error)
	}

	switch v := res.Value.(type) {
	case bool:
		if v {
			return p.check.Render("true")
		}

		return p.cross.Render("false")
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (p *printer) encode(v any) error {
	var (
		b   []byte
		err error
	)

	switch p.format {
	case OutputJSON:
		b, err = json.MarshalIndent(v, "", "  ")
		b = append(b, '\n')
	case OutputYAML:
		b, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, p.format)
	}

	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	if _, err := p.w.Write(b); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
