package domain

import "iter"

// Pathnames yields every absolute pathname token in text, in order of
// appearance and including duplicates. A token starts at '/' and runs over
// the characters [/0-9A-Za-z_.-]; a lone "/" is not a token.
//
// The sequence is lazy and may be ranged over any number of times.
func Pathnames(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < len(text); i++ {
			if text[i] != '/' {
				continue
			}

			j := i + 1
			for j < len(text) && isPathnameByte(text[j]) {
				j++
			}

			if j-i < 2 {
				continue
			}

			if !yield(text[i:j]) {
				return
			}

			i = j - 1
		}
	}
}

func isPathnameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '/', c == '_', c == '.', c == '-':
		return true
	default:
		return false
	}
}
