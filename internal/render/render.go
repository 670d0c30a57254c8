// Package render turns trace sequences and compression stats into terminal
// output or structured documents.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/rlestep/compress"
	"github.com/arloliu/rlestep/trace"
)

// WriteSequence writes seq to w as "yaml", "json" or "text".
func WriteSequence(w io.Writer, seq trace.Sequence, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(seq); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(seq); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	case "text":
		return NewStepRenderer(w, trace.ListingFor(seq.Kind)).RenderAll(seq)
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}

// StepRenderer prints steps next to a listing with the step's lines
// highlighted.
type StepRenderer struct {
	w       io.Writer
	listing trace.Listing

	header    lipgloss.Style
	highlight lipgloss.Style
	dim       lipgloss.Style
	state     lipgloss.Style
}

// NewStepRenderer creates a renderer whose color profile follows w.
func NewStepRenderer(w io.Writer, listing trace.Listing) *StepRenderer {
	r := lipgloss.NewRenderer(w)

	return &StepRenderer{
		w:         w,
		listing:   listing,
		header:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		highlight: r.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
		dim:       r.NewStyle().Faint(true),
		state:     r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// RenderAll renders every step of seq in order.
func (r *StepRenderer) RenderAll(seq trace.Sequence) error {
	c := seq.Cursor()
	for {
		if err := r.RenderStep(c, seq.Len()); err != nil {
			return err
		}
		if !c.Next() {
			return nil
		}
	}
}

// RenderStep renders the step under c. total is used for the progress header.
func (r *StepRenderer) RenderStep(c *trace.Cursor, total int) error {
	step, ok := c.Current()
	if !ok {
		return nil
	}

	var b strings.Builder
	b.WriteString(r.header.Render(fmt.Sprintf("Step %d/%d  %s", c.Pos()+1, total, step.Op)))
	b.WriteByte('\n')

	marked := make(map[int]bool)
	for _, l := range r.listing.Lines(step.Op) {
		marked[l] = true
	}
	for i, line := range r.listing.SourceLines() {
		text := fmt.Sprintf("%3d  %s", i+1, strings.ReplaceAll(line, "\t", "    "))
		if marked[i+1] {
			b.WriteString(r.highlight.Render("> " + text))
		} else {
			b.WriteString(r.dim.Render("  " + text))
		}
		b.WriteByte('\n')
	}

	b.WriteString(r.state.Render(FormatState(step.State)))
	b.WriteByte('\n')
	if step.Description != "" {
		b.WriteString(step.Description)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	_, err := io.WriteString(r.w, b.String())

	return err
}

// FormatState prints the scratch variables of a state on one line.
func FormatState(st trace.State) string {
	switch s := st.(type) {
	case trace.EncodeState:
		parts := []string{fmt.Sprintf("i=%d", s.I)}
		if s.Count > 0 {
			parts = append(parts, fmt.Sprintf("count=%d", s.Count))
		}
		parts = append(parts, fmt.Sprintf("data=%v", []byte(s.Data)), fmt.Sprintf("result=%v", []byte(s.Result)))

		return strings.Join(parts, " ")
	case trace.DecodeState:
		parts := []string{fmt.Sprintf("i=%d", s.I)}
		if s.Count > 0 {
			parts = append(parts, fmt.Sprintf("count=%d", s.Count))
		}
		if s.HasValue {
			parts = append(parts, fmt.Sprintf("value=%d", s.Value))
		}
		if s.HasJ {
			parts = append(parts, fmt.Sprintf("j=%d", s.J))
		}
		parts = append(parts, fmt.Sprintf("input=%v", []byte(s.Input)), fmt.Sprintf("result=%v", []byte(s.Result)))

		return strings.Join(parts, " ")
	default:
		return fmt.Sprintf("%v", st)
	}
}

// WriteStats prints a comparison table of compression stats.
func WriteStats(w io.Writer, stats []compress.CompressionStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tORIGINAL\tCOMPRESSED\tRATIO\tSAVED\tCOMPRESS\tDECOMPRESS")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f\t%.1f%%\t%dns\t%dns\n",
			s.Algorithm, s.OriginalSize, s.CompressedSize,
			s.CompressionRatio(), s.SpaceSavings(),
			s.CompressionTimeNs, s.DecompressionTimeNs)
	}

	return tw.Flush()
}
