package editor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"voider/internal/config"
	"voider/internal/syntax"
)

// Theme maps classifications to terminal styles.
// Theme сопоставляет классы подсветки стилям терминала.
type Theme struct {
	Text      tcell.Style
	Kinds     map[syntax.Kind]tcell.Style
	StatusBar tcell.Style
}

// DefaultTheme builds the theme from the default configuration.
func DefaultTheme() Theme {
	t, err := ThemeFromConfig(config.Defaults().Theme)
	if err != nil {
		panic(fmt.Sprintf("default theme: %v", err))
	}
	return t
}

// ThemeFromConfig parses the configured colours. Empty colours keep the
// terminal default.
func ThemeFromConfig(tc config.ThemeConfig) (Theme, error) {
	text, err := foreground(tcell.StyleDefault, tc.Default)
	if err != nil {
		return Theme{}, fmt.Errorf("theme.default: %w", err)
	}

	t := Theme{
		Text:      text,
		Kinds:     make(map[syntax.Kind]tcell.Style),
		StatusBar: tcell.StyleDefault.Reverse(true),
	}

	for kind, hex := range map[syntax.Kind]string{
		syntax.Number:    tc.Number,
		syntax.Match:     tc.Match,
		syntax.String:    tc.String,
		syntax.Character: tc.Character,
		syntax.Comment:   tc.Comment,
		syntax.Keyword1:  tc.Keyword1,
		syntax.Keyword2:  tc.Keyword2,
	} {
		style, err := foreground(text, hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme.%s: %w", kind, err)
		}
		t.Kinds[kind] = style
	}

	if tc.StatusBar != "" {
		c, err := toTcell(tc.StatusBar)
		if err != nil {
			return Theme{}, fmt.Errorf("theme.status_bar: %w", err)
		}
		t.StatusBar = tcell.StyleDefault.Background(c).Foreground(tcell.ColorBlack)
	}
	return t, nil
}

// Style returns the style for k, falling back to the text style.
func (t Theme) Style(k syntax.Kind) tcell.Style {
	if s, ok := t.Kinds[k]; ok {
		return s
	}
	return t.Text
}

func foreground(base tcell.Style, hex string) (tcell.Style, error) {
	if hex == "" {
		return base, nil
	}
	c, err := toTcell(hex)
	if err != nil {
		return base, err
	}
	return base.Foreground(c), nil
}

func toTcell(hex string) (tcell.Color, error) {
	c, err := config.ParseColor(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
