// Package markup turns article markdown into HTML that is safe to embed in
// admin pages.
package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var languageClass = regexp.MustCompile(`^language-[\w+#-]+$`)

// Renderer converts markdown and sanitizes the result.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() *Renderer {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	// fenced code keeps its language for client-side highlighting
	p.AllowAttrs("class").Matching(languageClass).OnElements("code")

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		// raw HTML is passed through and left to the sanitizer
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	return &Renderer{md: md, policy: p}
}

// Render returns sanitized HTML for src.
func (r *Renderer) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}
