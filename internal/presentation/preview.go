// Package presentation renders preview listings and progress lines for
// the terminal, degrading to plain text when no color profile is
// available.
package presentation

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/aretw0/wedgerun/pkg/domain"
)

// Preview writes the combination listing to a terminal-aware writer.
type Preview struct {
	out     io.Writer
	profile termenv.Profile
}

// NewPreview creates a preview renderer for the given writer.
func NewPreview(out io.Writer) *Preview {
	return &Preview{
		out:     out,
		profile: termenv.ColorProfile(),
	}
}

// Combination renders one planned combination with its 1-based index
// against the full cross-product size.
func (p *Preview) Combination(idx, total int, combo domain.Combination) {
	index := termenv.String(fmt.Sprintf("[%d/%d]", idx, total)).
		Foreground(p.profile.Color("#818cf8")).
		Bold()
	fmt.Fprintf(p.out, "  %s %s\n", index, domain.FormatCombination(combo))
}

// Summary renders the plan header ahead of the listing.
func (p *Preview) Summary(submitting, total int, outputDir string) {
	count := termenv.String(fmt.Sprintf("%d of %d", submitting, total)).
		Foreground(p.profile.Color("#a78bfa"))
	fmt.Fprintf(p.out, "Planned combinations (%s) -> %s\n", count, outputDir)
}
