package syntax

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltin_LoadsEveryLanguage(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	for _, name := range []string{
		"c", "cpp", "go", "rust", "python", "ruby", "kotlin",
		"swift", "javascript", "lisp", "fortran", "assembly", "html",
	} {
		l, ok := reg.Lookup(name)
		require.True(t, ok, name)
		require.Equal(t, name, l.Name)
	}
	require.Len(t, reg.Names(), 13)
}

func TestBuiltin_KeywordsStayStrings(t *testing.T) {
	l := mustLang(t, "go")
	kind, ok := l.keyword("true")
	require.True(t, ok)
	require.Equal(t, Keyword2, kind)

	py := mustLang(t, "python")
	kind, ok = py.keyword("None")
	require.True(t, ok)
	require.Equal(t, Keyword2, kind)
}

func TestDetect(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"/tmp/LIB.RS", "rust"},
		{"x.hpp", "cpp"},
		{"notes.txt", PlainName},
		{"Makefile", PlainName},
		{"", PlainName},
		// Not in the extension table; chroma's filename patterns pick it up.
		{"script.pyw", "python"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, reg.Detect(tt.path).Name)
		})
	}
}

func TestAlias(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	require.NoError(t, reg.Alias("tmpl", "html"))
	require.Equal(t, "html", reg.Detect("index.tmpl").Name)

	require.Error(t, reg.Alias(".zz", "cobol"))
}

func TestMerge_ReplacesLanguage(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	err = reg.Merge([]byte(`
languages:
  - name: Go
    extensions: ["gox"]
    primary: [func]
    numbers: true
`))
	require.NoError(t, err)

	l, ok := reg.Lookup("go")
	require.True(t, ok)
	_, isKw := l.keyword("return")
	require.False(t, isKw)
	require.Equal(t, "go", reg.Detect("a.gox").Name)
	// .go is no longer mapped directly; the chroma fallback still resolves
	// it to the replacement definition.
	goFile := reg.Detect("a.go")
	require.Same(t, l, goFile)
	_, isKw = goFile.keyword("return")
	require.False(t, isKw)
	require.Len(t, reg.Names(), 13)
}

func TestMerge_RejectsBadDefinitions(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	require.Error(t, reg.Merge([]byte("languages: [")))
	require.Error(t, reg.Merge([]byte("languages:\n  - extensions: [.x]\n")))
	require.Error(t, reg.Merge([]byte("languages:\n  - name: x\n    block_comment: [\"/*\"]\n")))
	require.Error(t, reg.Merge([]byte("languages:\n  - name: x\n    char_delimiter: \"ab\"\n")))
	require.Error(t, reg.Merge([]byte("languages:\n  - name: x\n    string_delimiters: \"'\"\n    char_delimiter: \"'\"\n")))
}

func TestMergeFile(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "langs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("languages:\n  - name: toml\n    extensions: [.toml]\n    line_comment: \"#\"\n    string_delimiters: \"\\\"'\"\n"), 0o600))
	require.NoError(t, reg.MergeFile(path))

	l := reg.Detect("Cargo.toml")
	require.Equal(t, "toml", l.Name)
	require.False(t, l.HasBlockComments())

	require.Error(t, reg.MergeFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
