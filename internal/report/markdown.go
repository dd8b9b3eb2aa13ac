package report

import (
	"fmt"
	stdhtml "html"
	"io"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const documentTitle = "Alumni survey report"

func renderMarkdown(w io.Writer, r *Report) error {
	_, err := io.WriteString(w, markdownDocument(r, mdEscape))
	return err
}

// renderHTML converts the markdown rendering into a standalone page.
// Respondent text is HTML-escaped first so answers cannot inject markup.
func renderHTML(w io.Writer, r *Report) error {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: documentTitle,
	})
	page := markdown.ToHTML([]byte(markdownDocument(r, htmlEscape)), p, renderer)
	_, err := w.Write(page)
	return err
}

func markdownDocument(r *Report, esc func(string) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", documentTitle)
	fmt.Fprintf(&b, "- Report: %s\n", r.ID)
	fmt.Fprintf(&b, "- Source: %s\n", esc(r.Source))
	fmt.Fprintf(&b, "- Generated: %s\n", r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- Respondents: %d\n", r.Respondents)

	for _, sec := range r.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", sec.Title)

		for _, note := range sec.Notes {
			fmt.Fprintf(&b, "- %s\n", esc(note))
		}
		if len(sec.Notes) > 0 {
			b.WriteString("\n")
		}

		if len(sec.Shares) > 0 {
			writeMarkdownShares(&b, sec, esc)
		}

		for _, st := range sec.Stories {
			fmt.Fprintf(&b, "### %s\n\n", esc(st.Name))
			if st.Award != "" {
				fmt.Fprintf(&b, "- **Award:** %s\n", esc(st.Award))
			}
			if st.Leadership != "" {
				fmt.Fprintf(&b, "- **Leadership role:** %s\n", esc(st.Leadership))
			}
			if st.Story != "" {
				fmt.Fprintf(&b, "- **Success story:** %s\n", esc(st.Story))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writeMarkdownShares(b *strings.Builder, sec Section, esc func(string) string) {
	withCI := false
	for _, sh := range sec.Shares {
		if sh.Interval != nil {
			withCI = true
			break
		}
	}

	fmt.Fprintf(b, "Total alums: **%d**\n\n", sec.Total)
	if withCI {
		b.WriteString("| Category | Percent | Count | Of | Interval |\n")
		b.WriteString("| --- | ---: | ---: | ---: | --- |\n")
	} else {
		b.WriteString("| Category | Percent | Count | Of |\n")
		b.WriteString("| --- | ---: | ---: | ---: |\n")
	}

	for _, sh := range sec.Shares {
		pct := fmt.Sprintf("%.0f%%", sh.Percent)
		if !sh.Defined {
			pct = "n/a"
		}
		fmt.Fprintf(b, "| %s | %s | %d | %d |", esc(shareLabel(sh)), pct, sh.Count, sh.Total)
		if withCI {
			ci := ""
			if sh.Interval != nil {
				ci = fmt.Sprintf("%s: %.0f-%.0f%%", levelLabel(sh.Interval.Level), sh.Interval.Lower, sh.Interval.Upper)
			}
			fmt.Fprintf(b, " %s |", ci)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// htmlEscape neutralises markup before the usual markdown escaping.
func htmlEscape(value string) string {
	return mdEscape(stdhtml.EscapeString(value))
}

func mdEscape(value string) string {
	value = strings.ReplaceAll(value, "\r\n", "<br>")
	value = strings.ReplaceAll(value, "\n", "<br>")
	value = strings.ReplaceAll(value, "|", "\\|")
	return value
}
