package report

import (
	"fmt"
	"io"
	"strings"

	apperrors "alumstats/internal/errors"
)

// Format names an output encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatXLSX     Format = "xlsx"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatHTML, FormatJSON, FormatYAML, FormatXLSX}
}

// Renderer writes a report to a sink.
type Renderer interface {
	Render(w io.Writer, r *Report) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(w io.Writer, r *Report) error

// Render calls f.
func (f RendererFunc) Render(w io.Writer, r *Report) error {
	return f(w, r)
}

// NewRenderer returns the renderer for format.
func NewRenderer(format Format) (Renderer, error) {
	switch format {
	case FormatText, "":
		return RendererFunc(renderText), nil
	case FormatMarkdown:
		return RendererFunc(renderMarkdown), nil
	case FormatHTML:
		return RendererFunc(renderHTML), nil
	case FormatJSON:
		return RendererFunc(renderJSON), nil
	case FormatYAML:
		return RendererFunc(renderYAML), nil
	case FormatXLSX:
		return RendererFunc(renderXLSX), nil
	}

	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return nil, apperrors.InvalidInput(fmt.Sprintf("unknown report format %q (want one of %s)", format, strings.Join(names, ", ")))
}
