package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown_BlankInput(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown(""))
	assert.Equal(t, "", RenderMarkdown("  \n\t"))
}

func TestRenderMarkdown_Bold(t *testing.T) {
	result := RenderMarkdown("**Name** is required")
	assert.Contains(t, result, "<strong>Name</strong>")
}

func TestRenderMarkdown_InlineCode(t *testing.T) {
	result := RenderMarkdown("e.g. `Rosa, Lírio`")
	assert.Contains(t, result, "<code>Rosa, Lírio</code>")
}

func TestRenderMarkdown_SanitizesScript(t *testing.T) {
	result := RenderMarkdown(`<script>alert("xss")</script>`)
	assert.NotContains(t, result, "<script>")
}

func TestRenderMarkdown_DropsRawHTML(t *testing.T) {
	result := RenderMarkdown(`<img src=x onerror="alert(1)"> **Sala**`)
	assert.NotContains(t, result, "onerror")
	assert.Contains(t, result, "<strong>Sala</strong>")
}

func TestRenderMarkdown_LinksAreNoFollow(t *testing.T) {
	result := RenderMarkdown("[docs](https://example.com)")
	assert.Contains(t, result, `rel="nofollow"`)
}

func TestRenderMarkdown_Strikethrough(t *testing.T) {
	result := RenderMarkdown("~~deleted~~")
	assert.Contains(t, result, "<del>deleted</del>")
}

func TestHelpHTML_RendersEmbeddedHelp(t *testing.T) {
	result := HelpHTML()
	assert.Contains(t, result, "<h3")
	assert.Contains(t, result, "<li>")
	assert.Contains(t, result, "Flowers")
}
