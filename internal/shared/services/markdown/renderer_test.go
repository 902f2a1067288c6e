package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "steps list",
			input:    "Steps:\n\n1. open report\n2. click export",
			contains: []string{"<ol>", "<li>open report</li>"},
		},
		{
			name:        "script stripped",
			input:       "broken page <script>alert(1)</script>",
			contains:    []string{"broken page"},
			notContains: []string{"<script>"},
		},
		{
			name:     "code block keeps language class",
			input:    "```sql\nSELECT 1;\n```",
			contains: []string{`class="language-sql"`},
		},
		{
			name:     "external links are nofollow",
			input:    "see https://example.com/logs",
			contains: []string{"nofollow", "noopener", `target="_blank"`},
		},
		{
			name:        "javascript links dropped",
			input:       "[click](javascript:alert(1))",
			notContains: []string{"javascript:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.input)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderer_Empty(t *testing.T) {
	out, err := NewRenderer().Render("")
	require.NoError(t, err)
	assert.Empty(t, out)
}
