package syntax

import (
	"fmt"
	"strings"
)

// Language describes how rows of one file type are classified.
type Language struct {
	Name       string   `yaml:"name"`
	Extensions []string `yaml:"extensions"`
	Primary    []string `yaml:"primary"`
	Secondary  []string `yaml:"secondary"`

	LineComment  string   `yaml:"line_comment"`
	BlockComment []string `yaml:"block_comment"` // [open, close]

	// StringDelimiters lists every rune that opens (and closes) a string.
	StringDelimiters string `yaml:"string_delimiters"`
	// CharDelimiter opens a short single-character literal such as 'x' or '\n'.
	CharDelimiter    string `yaml:"char_delimiter"`
	MultilineStrings bool   `yaml:"multiline_strings"`
	IgnoreCase       bool   `yaml:"ignore_case"`
	Numbers          bool   `yaml:"numbers"`

	primary    map[string]struct{}
	secondary  map[string]struct{}
	lineCmt    []rune
	blockOpen  []rune
	blockClose []rune
	quotes     []rune
	charQuote  rune
}

// PlainName is the language tag of files no registered language claims.
const PlainName = "text"

// Plain returns the language used for untitled buffers and unknown file types.
// Only numbers are classified.
func Plain() *Language {
	l := &Language{Name: PlainName, Numbers: true}
	_ = l.compile()
	return l
}

func (l *Language) compile() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("language without a name")
	}
	l.Name = strings.ToLower(strings.TrimSpace(l.Name))

	l.primary = make(map[string]struct{}, len(l.Primary))
	for _, kw := range l.Primary {
		l.primary[l.fold(kw)] = struct{}{}
	}
	l.secondary = make(map[string]struct{}, len(l.Secondary))
	for _, kw := range l.Secondary {
		l.secondary[l.fold(kw)] = struct{}{}
	}

	l.lineCmt = []rune(l.LineComment)
	l.blockOpen, l.blockClose = nil, nil
	switch len(l.BlockComment) {
	case 0:
	case 2:
		if l.BlockComment[0] == "" || l.BlockComment[1] == "" {
			return fmt.Errorf("language %s: empty block comment token", l.Name)
		}
		l.blockOpen = []rune(l.BlockComment[0])
		l.blockClose = []rune(l.BlockComment[1])
	default:
		return fmt.Errorf("language %s: block_comment needs exactly [open, close]", l.Name)
	}

	l.quotes = []rune(l.StringDelimiters)
	l.charQuote = 0
	if l.CharDelimiter != "" {
		cq := []rune(l.CharDelimiter)
		if len(cq) != 1 {
			return fmt.Errorf("language %s: char_delimiter must be a single character", l.Name)
		}
		l.charQuote = cq[0]
		for _, q := range l.quotes {
			if q == l.charQuote {
				return fmt.Errorf("language %s: %q is both a string and a char delimiter", l.Name, q)
			}
		}
	}

	for i, ext := range l.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		l.Extensions[i] = ext
	}
	return nil
}

func (l *Language) fold(word string) string {
	if l.IgnoreCase {
		return strings.ToLower(word)
	}
	return word
}

// keyword reports the keyword class of a whole identifier token.
func (l *Language) keyword(word string) (Kind, bool) {
	w := l.fold(word)
	if _, ok := l.primary[w]; ok {
		return Keyword1, true
	}
	if _, ok := l.secondary[w]; ok {
		return Keyword2, true
	}
	return None, false
}

func (l *Language) isQuote(r rune) bool {
	for _, q := range l.quotes {
		if q == r {
			return true
		}
	}
	return false
}

// HasBlockComments reports whether the language has a multi-row comment syntax.
func (l *Language) HasBlockComments() bool {
	return len(l.blockOpen) > 0
}
