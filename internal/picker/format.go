package picker

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ScoreColumnWidth is the fixed width of the rendered score column.
const ScoreColumnWidth = 8

// MatchGroup is the highlight group for fuzzy-matched characters.
const MatchGroup = "FpickMatch"

// Formatter renders one result into a display line and records the
// byte offsets the host needs to place highlights.
type Formatter struct {
	WorkDir    string
	ShowScores bool
	ShowIcons  bool
}

// Relative returns path relative to the working directory, falling
// back to the absolute path for files outside it.
func (f *Formatter) Relative(path string) string {
	rel, err := filepath.Rel(f.WorkDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// FormatScore right-aligns score into the fixed column, using the most
// decimal places that fit: two, then one, then none.
func FormatScore(score float64, width int) string {
	for _, format := range []string{"%.2f", "%.1f", "%.0f"} {
		s := fmt.Sprintf(format, score)
		if len(s) <= width {
			return strings.Repeat(" ", width-len(s)) + s
		}
	}
	return fmt.Sprintf("%.0f", score)
}

// Fill renders w's display line and offsets in place. RelPath and
// Icon must already be set.
func (f *Formatter) Fill(w *WeightedFile) {
	var b strings.Builder
	w.IconOffset = -1

	if f.ShowScores {
		b.WriteString(FormatScore(w.Score, ScoreColumnWidth))
		b.WriteByte(' ')
	}
	if f.ShowIcons && w.Icon.Glyph != "" {
		w.IconOffset = b.Len()
		b.WriteString(w.Icon.Glyph)
		b.WriteByte(' ')
	}
	w.PathOffset = b.Len()
	b.WriteString(w.RelPath)
	w.Line = b.String()
}

// Span is a highlight instruction for the rendered line: byte range
// plus the highlight group to apply.
type Span struct {
	Start int
	End   int
	Group string
}

// Spans translates the matcher's path-relative positions and the icon
// column into absolute byte ranges within the formatted line. Adjacent
// match positions are merged into one span.
func (w *WeightedFile) Spans() []Span {
	var spans []Span
	if w.IconOffset >= 0 && w.Icon.Group != "" {
		spans = append(spans, Span{
			Start: w.IconOffset,
			End:   w.IconOffset + len(w.Icon.Glyph),
			Group: w.Icon.Group,
		})
	}
	for i := 0; i < len(w.Positions); {
		j := i
		for j+1 < len(w.Positions) && w.Positions[j+1] == w.Positions[j]+1 {
			j++
		}
		spans = append(spans, Span{
			Start: w.PathOffset + w.Positions[i],
			End:   w.PathOffset + w.Positions[j] + 1,
			Group: MatchGroup,
		})
		i = j + 1
	}
	return spans
}
