package summarizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocx(t *testing.T) {
	out := filepath.Join(t.TempDir(), "intro.docx")

	markdown := `# Key Points

**Arabic**

- النقطة الأولى
- النقطة الثانية

---

**English**

- First point with **bold term**
1. Numbered action item
`

	require.NoError(t, WriteDocx("intro", markdown, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCleanMarkdownInline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold**", "bold"},
		{"__under__", "under"},
		{"`code`", "code"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := cleanMarkdownInline(tt.in); got != tt.want {
			t.Errorf("cleanMarkdownInline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
