package match

import (
	"errors"
	"unicode"
)

var ErrBlankMember = errors.New("member name must not be blank")

// NormalizeMember canonicalizes a destination member identifier for matching
// against incoming keys. Single-rune names and all-upper names (acronyms)
// are kept as is; otherwise only the first rune is lowered, so "AString"
// becomes "aString". The function is idempotent.
//
// Normalization is one-directional: it applies to destination member names
// only, never to source keys.
func NormalizeMember(name string) (string, error) {
	if name == "" {
		return "", ErrBlankMember
	}

	runes := []rune(name)
	if len(runes) == 1 {
		return name, nil
	}

	allUpper := true
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			allUpper = false
			break
		}
	}
	if allUpper {
		return name, nil
	}

	runes[0] = unicode.ToLower(runes[0])

	return string(runes), nil
}
