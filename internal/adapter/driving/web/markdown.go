package web

import (
	"bytes"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in the source is dropped by goldmark (no WithUnsafe), and the
// output is sanitized again before it reaches a page.
var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Table, extension.Linkify),
	)
	sanitizer = helpPolicy()
)

func helpPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("kbd")
	p.RequireNoFollowOnLinks(true)
	return p
}

// RenderMarkdown converts src to sanitized HTML. Blank input renders as "".
func RenderMarkdown(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "<p>" + templ.EscapeString(src) + "</p>"
	}
	return sanitizer.Sanitize(buf.String())
}

var helpHTML = sync.OnceValue(func() string {
	return RenderMarkdown(helpMarkdown)
})

// HelpHTML returns the embedded help text rendered once per process.
func HelpHTML() string {
	return helpHTML()
}
