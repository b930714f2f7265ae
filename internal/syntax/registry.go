package syntax

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"gopkg.in/yaml.v3"

	"voider/internal/log"
)

//go:embed languages.yaml
var builtinLanguages []byte

type languageFile struct {
	Languages []*Language `yaml:"languages"`
}

// Registry maps language tags and file extensions to Language definitions.
// It is built once at startup and shared read-only by every Document.
type Registry struct {
	languages []*Language
	byName    map[string]*Language
	byExt     map[string]*Language
	plain     *Language
}

// NewRegistry builds a registry from the given languages. Later entries
// replace earlier ones with the same name.
func NewRegistry(langs ...*Language) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]*Language),
		byExt:  make(map[string]*Language),
		plain:  Plain(),
	}
	for _, l := range langs {
		if err := r.add(l); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Builtin returns a registry holding the embedded language table.
func Builtin() (*Registry, error) {
	r, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	if err := r.Merge(builtinLanguages); err != nil {
		return nil, fmt.Errorf("builtin languages: %w", err)
	}
	return r, nil
}

// Merge parses a YAML language table and adds or replaces its entries.
func (r *Registry) Merge(data []byte) error {
	var f languageFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing languages: %w", err)
	}
	for _, l := range f.Languages {
		if l == nil {
			continue
		}
		if err := r.add(l); err != nil {
			return err
		}
	}
	return nil
}

// MergeFile reads a YAML language table from path and merges it.
func (r *Registry) MergeFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // user-configured languages file
	if err != nil {
		return fmt.Errorf("reading languages file: %w", err)
	}
	if err := r.Merge(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Info(log.CatSyntax, "merged languages file", "path", path)
	return nil
}

// Alias maps a file extension to an already registered language.
func (r *Registry) Alias(ext, name string) error {
	l, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("alias %s: unknown language %q", ext, name)
	}
	ext = strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	r.byExt[ext] = l
	return nil
}

func (r *Registry) add(l *Language) error {
	if err := l.compile(); err != nil {
		return err
	}
	if old, ok := r.byName[l.Name]; ok {
		for ext, owner := range r.byExt {
			if owner == old {
				delete(r.byExt, ext)
			}
		}
		for i, existing := range r.languages {
			if existing == old {
				r.languages = append(r.languages[:i], r.languages[i+1:]...)
				break
			}
		}
	}
	r.languages = append(r.languages, l)
	r.byName[l.Name] = l
	for _, ext := range l.Extensions {
		if ext != "" {
			r.byExt[ext] = l
		}
	}
	return nil
}

// Lookup returns the language registered under name (case-insensitive).
func (r *Registry) Lookup(name string) (*Language, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == PlainName {
		return r.plain, true
	}
	l, ok := r.byName[name]
	return l, ok
}

// Names lists registered language tags in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.languages))
	for _, l := range r.languages {
		names = append(names, l.Name)
	}
	return names
}

// Plain returns the registry's fallback language.
func (r *Registry) Plain() *Language {
	return r.plain
}

// Detect picks the language for path. The extension table is consulted
// first; unknown extensions fall back to chroma's filename patterns, whose
// lexer name or aliases are matched against registered tags. Paths nothing
// claims get the plain language.
func (r *Registry) Detect(path string) *Language {
	if path == "" {
		return r.plain
	}
	ext := strings.ToLower(filepath.Ext(path))
	if l, ok := r.byExt[ext]; ok {
		return l
	}

	if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
		cfg := lexer.Config()
		candidates := append([]string{cfg.Name}, cfg.Aliases...)
		for _, c := range candidates {
			if l, ok := r.Lookup(c); ok && l != r.plain {
				log.Debug(log.CatSyntax, "language detected via chroma", "path", path, "lexer", cfg.Name, "language", l.Name)
				return l
			}
		}
	}
	return r.plain
}
