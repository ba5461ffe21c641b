package reporter

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

// Minifier shrinks rendered pages. Code cells are inside <pre>, whose
// whitespace html.Minifier leaves alone.
type Minifier struct {
	m *minify.M
}

// NewMinifier creates a minifier for HTML pages with inline CSS
func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc(MediaTypeCSS, css.Minify)
	m.Add(MediaTypeHTML, &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	return &Minifier{m: m}
}

// Minify returns the minified form of data for mediaType
func (mn *Minifier) Minify(mediaType string, data []byte) ([]byte, error) {
	out, err := mn.m.Bytes(mediaType, data)
	if err != nil {
		return nil, fmt.Errorf("minification failed for %s: %w", mediaType, err)
	}
	return out, nil
}
