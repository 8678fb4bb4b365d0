package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderReplacesAllOccurrences(t *testing.T) {
	out := Render("Hello {{name}}, yes you, {{name}}!", map[string]string{"name": "Ada"})
	assert.Equal(t, "Hello Ada, yes you, Ada!", out)
}

func TestRenderLeavesUnknownTokensVerbatim(t *testing.T) {
	template := "{{name}} wrote: {{message}} at {{timestamp}}"
	out := Render(template, map[string]string{"name": "Ada"})
	assert.Equal(t, "Ada wrote: {{message}} at {{timestamp}}", out)
}

func TestRenderWithoutSpecialCharactersOnlyTouchesTokens(t *testing.T) {
	template := `<div class="value">{{subject}}</div><p>plain text stays</p>`
	out := Render(template, map[string]string{"subject": "Hi"})
	assert.Equal(t, `<div class="value">Hi</div><p>plain text stays</p>`, out)
}

func TestRenderEmptyData(t *testing.T) {
	template := "no tokens here"
	assert.Equal(t, template, Render(template, nil))
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<script>", "&lt;script&gt;"},
		{`a & b`, "a &amp; b"},
		{`"quoted"`, "&quot;quoted&quot;"},
		{"it's", "it&#039;s"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Escape(tt.in))
	}
}

func TestRenderEscapedScriptNeverRaw(t *testing.T) {
	out := Render("<p>{{name}}</p>", map[string]string{"name": Escape("<script>alert(1)</script>")})
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}
