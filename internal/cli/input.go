package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// PromptConfirmation asks the operator to approve the submission. The
// prompt is only offered on an interactive terminal; when stdin is not a
// TTY there is nobody to consent, so the gate declines (scripted runs
// skip the gate instead).
func PromptConfirmation(in *os.File, out io.Writer, runs int, outputDir string) (bool, error) {
	if !term.IsTerminal(int(in.Fd())) {
		fmt.Fprintln(out, "stdin is not a terminal; declining confirmation (use --no-confirm for scripted runs)")
		return false, nil
	}

	plural := ""
	if runs != 1 {
		plural = "s"
	}
	fmt.Fprintf(out, "Submit %d run%s and write outputs under '%s'? [y/N]: ", runs, plural, outputDir)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ParseTypedValue infers a typed value from free text at the editing
// boundary. Parsers are tried in fixed order: boolean literal, hex
// integer, decimal integer, float, fallback string. The canonical model
// never does this; only user-entered text passes through here.
func ParseTypedValue(text string) any {
	s := strings.TrimSpace(text)
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		if n, err := strconv.ParseInt(s[2:], 16, 64); err == nil {
			return n
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// ParseValueList splits comma-separated text into typed values.
func ParseValueList(text string) []any {
	parts := strings.Split(text, ",")
	values := make([]any, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		values = append(values, ParseTypedValue(p))
	}
	return values
}

// ParseMinMax parses "min,max,step" text into a numeric triple.
func ParseMinMax(text string) ([]any, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("minmax values must be 'min,max,step', got %q", text)
	}
	triple := make([]any, 0, 3)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v := ParseTypedValue(p)
		switch v.(type) {
		case int64, float64:
			triple = append(triple, v)
		default:
			return nil, fmt.Errorf("minmax bound %q is not numeric", p)
		}
	}
	return triple, nil
}
