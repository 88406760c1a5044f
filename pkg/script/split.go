package script

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrUnclosedQuote is returned when a quoted word is not closed on its line
	ErrUnclosedQuote = errors.New("unclosed quote")

	// ErrTrailingEscape is returned when a line ends in a backslash
	ErrTrailingEscape = errors.New("trailing escape character")
)

// Split breaks one script line into words.
//
//   - Words are separated by whitespace
//   - Single quotes keep their content literally
//   - Double quotes understand \" \\ and \n
//   - A backslash outside quotes escapes the next character
//   - An unquoted # starts a comment running to the end of the line
//
// Examples:
//
//	Split(`set orbit parent Earth`)       => ["set", "orbit", "parent", "Earth"]
//	Split(`set landmarks landmarks.0.name "Sea of Rains"`) => [..., "Sea of Rains"]
//	Split(`set terrain textureFormula "A = 1\nB = 2"`)    => [..., "A = 1\nB = 2"]
//	Split(`reset # start over`)           => ["reset"]
func Split(line string) ([]string, error) {
	words := []string{}
	var current strings.Builder
	var inSingle, inDouble, quoted bool

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch {
		case ch == '\\' && !inSingle:
			if i+1 >= len(runes) {
				return nil, ErrTrailingEscape
			}
			i++
			next := runes[i]
			if inDouble {
				switch next {
				case '"', '\\':
					current.WriteRune(next)
				case 'n':
					current.WriteRune('\n')
				case 't':
					current.WriteRune('\t')
				default:
					current.WriteRune('\\')
					current.WriteRune(next)
				}
			} else {
				current.WriteRune(next)
			}

		case ch == '\'' && !inDouble:
			inSingle = !inSingle
			quoted = true

		case ch == '"' && !inSingle:
			inDouble = !inDouble
			quoted = true

		case ch == '#' && !inSingle && !inDouble && current.Len() == 0 && !quoted:
			i = len(runes)

		case unicode.IsSpace(ch) && !inSingle && !inDouble:
			if current.Len() > 0 || quoted {
				words = append(words, current.String())
				current.Reset()
				quoted = false
			}

		default:
			current.WriteRune(ch)
		}
	}

	if inSingle || inDouble {
		kind := "single"
		if inDouble {
			kind = "double"
		}
		return nil, fmt.Errorf("%w: unclosed %s quote", ErrUnclosedQuote, kind)
	}
	if current.Len() > 0 || quoted {
		words = append(words, current.String())
	}
	return words, nil
}

// Join renders words as a line Split reads back unchanged.
func Join(words []string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = quote(w)
	}
	return strings.Join(parts, " ")
}

func quote(word string) string {
	if word == "" {
		return `""`
	}
	plain := true
	for i, ch := range word {
		if unicode.IsSpace(ch) || ch == '\'' || ch == '"' || ch == '\\' || (ch == '#' && i == 0) {
			plain = false
			break
		}
	}
	if plain {
		return word
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, ch := range word {
		switch ch {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(ch)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}
