package syntax

import "unicode"

// maxCharLiteral bounds how far an escaped char literal may reach for its
// closing quote. Anything longer is treated as a plain quote (Rust lifetimes).
const maxCharLiteral = 10

// Highlight classifies content into dst, starting from the state carried in
// from the previous row, and returns the state carried out of this row.
// dst must have the same length as content. Occurrences of query are
// overlaid as Match after classification.
// Highlight раскрашивает строку и возвращает состояние для следующей строки.
func Highlight(lang *Language, in State, content []rune, query []rune, dst []Kind) State {
	for i := range dst {
		dst[i] = None
	}
	if lang == nil {
		lang = Plain()
	}

	state := in
	i := 0
	n := len(content)

	for i < n {
		switch state.Mode {
		case InBlockComment:
			end := indexFrom(content, lang.blockClose, i)
			if end < 0 {
				fill(dst, i, n, Comment)
				i = n
				continue
			}
			stop := end + len(lang.blockClose)
			fill(dst, i, stop, Comment)
			i = stop
			state = State{Mode: Normal}

		case InString:
			for i < n {
				r := content[i]
				dst[i] = String
				i++
				if r == '\\' && i < n {
					dst[i] = String
					i++
					continue
				}
				if r == state.Quote {
					state = State{Mode: Normal}
					break
				}
			}

		default:
			i = lexNormal(lang, content, dst, i, &state)
		}
	}

	if state.Mode == InString && !lang.MultilineStrings {
		state = State{Mode: Normal}
	}

	overlayMatches(content, query, dst)
	return state
}

// lexNormal classifies one token starting at i and returns the next index.
// It may switch state into a string or block comment.
func lexNormal(lang *Language, content []rune, dst []Kind, i int, state *State) int {
	n := len(content)
	r := content[i]

	if len(lang.lineCmt) > 0 && hasPrefixAt(content, lang.lineCmt, i) {
		fill(dst, i, n, Comment)
		return n
	}

	if len(lang.blockOpen) > 0 && hasPrefixAt(content, lang.blockOpen, i) {
		stop := i + len(lang.blockOpen)
		fill(dst, i, stop, Comment)
		*state = State{Mode: InBlockComment}
		return stop
	}

	if lang.isQuote(r) {
		dst[i] = String
		*state = State{Mode: InString, Quote: r}
		return i + 1
	}

	if lang.charQuote != 0 && r == lang.charQuote {
		if end := charLiteralEnd(content, i, lang.charQuote); end > 0 {
			fill(dst, i, end, Character)
			return end
		}
		return i + 1
	}

	if lang.Numbers && unicode.IsDigit(r) && (i == 0 || !isIdentRune(content[i-1])) {
		j := i + 1
		seenDot := false
		for j < n {
			c := content[j]
			if unicode.IsDigit(c) {
				j++
				continue
			}
			if c == '.' && !seenDot {
				seenDot = true
				j++
				continue
			}
			break
		}
		fill(dst, i, j, Number)
		return j
	}

	if isIdentStart(r) {
		j := i + 1
		for j < n && isIdentRune(content[j]) {
			j++
		}
		if kind, ok := lang.keyword(string(content[i:j])); ok {
			fill(dst, i, j, kind)
		}
		return j
	}

	return i + 1
}

// charLiteralEnd returns the index just past a char literal opening at i,
// or -1 if the quote does not open one.
func charLiteralEnd(content []rune, i int, quote rune) int {
	n := len(content)
	if i+2 < n && content[i+1] != '\\' && content[i+1] != quote && content[i+2] == quote {
		return i + 3
	}
	if i+1 < n && content[i+1] == '\\' {
		for j := i + 3; j < n && j <= i+maxCharLiteral; j++ {
			if content[j] == quote {
				return j + 1
			}
		}
	}
	return -1
}

func overlayMatches(content, query []rune, dst []Kind) {
	if len(query) == 0 || len(query) > len(content) {
		return
	}
	for i := 0; i+len(query) <= len(content); i++ {
		if hasPrefixAt(content, query, i) {
			fill(dst, i, i+len(query), Match)
		}
	}
}

func fill(dst []Kind, from, to int, k Kind) {
	for i := from; i < to; i++ {
		dst[i] = k
	}
}

func hasPrefixAt(content, prefix []rune, i int) bool {
	if i+len(prefix) > len(content) {
		return false
	}
	for k, r := range prefix {
		if content[i+k] != r {
			return false
		}
	}
	return true
}

func indexFrom(content, token []rune, from int) int {
	for i := from; i+len(token) <= len(content); i++ {
		if hasPrefixAt(content, token, i) {
			return i
		}
	}
	return -1
}

// isIdentStart checks if a rune can start an identifier.
// isIdentStart проверяет, может ли символ начинать идентификатор.
func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
