package report

import (
	"fmt"
	"io"
	"strings"

	"alumstats/internal/tally"
)

// renderText reproduces the analyst-facing plain text layout:
//
//	<Title>
//	---
//
//	<notes, then a blank line>
//	Total alums: N
//	<label>: P% (C)
//	 - <sub label>: P% (C)
func renderText(w io.Writer, r *Report) error {
	var b strings.Builder
	for i, sec := range r.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sec.Title)
		b.WriteString("\n---\n\n")

		for _, note := range sec.Notes {
			b.WriteString(note)
			b.WriteString("\n")
		}
		if len(sec.Notes) > 0 {
			b.WriteString("\n")
		}

		if len(sec.Shares) > 0 {
			fmt.Fprintf(&b, "Total alums: %d\n", sec.Total)
			for _, sh := range sec.Shares {
				b.WriteString(shareLine(sh))
				b.WriteString("\n")
			}
		}

		for _, st := range sec.Stories {
			writeStoryText(&b, st)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func shareLabel(sh Share) string {
	if sh.Depth == 0 {
		return sh.Label
	}
	return strings.Repeat("   ", sh.Depth-1) + " - " + sh.Label
}

func shareLine(sh Share) string {
	line, err := tally.FormatShare(shareLabel(sh), sh.Count, sh.Total)
	if err != nil || !sh.Defined {
		// Filled in by the zero-total policy.
		line = fmt.Sprintf("%s: %.0f%% (%d)", shareLabel(sh), sh.Percent, sh.Count)
	}
	if sh.Interval != nil {
		line += fmt.Sprintf(" [%s CI %.0f-%.0f%%]", levelLabel(sh.Interval.Level), sh.Interval.Lower, sh.Interval.Upper)
	}
	return line
}

func levelLabel(level float64) string {
	return fmt.Sprintf("%.4g%%", level*100)
}

func writeStoryText(b *strings.Builder, st Story) {
	if st.Award != "" {
		fmt.Fprintf(b, "Award: %s %s\n", st.Name, st.Award)
	}
	if st.Leadership != "" {
		fmt.Fprintf(b, "Leadership role: %s %s\n", st.Name, st.Leadership)
	}
	if st.Story != "" {
		fmt.Fprintf(b, "Success story: %s %s\n", st.Name, st.Story)
	}
	b.WriteString("\n")
}
