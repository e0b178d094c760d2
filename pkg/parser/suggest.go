package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rhino1998/sl/pkg/lexer"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// keywordHint returns a "did you mean" hint when an identifier looks like a
// misspelled keyword. Words of up to four letters only match at distance one.
func keywordHint(tok lexer.Token) string {
	n := utf8.RuneCountInString(tok.Text)
	if tok.Kind != lexer.Identifier || n < 2 {
		return ""
	}

	maxDistance := 2
	if n <= 4 {
		maxDistance = 1
	}

	match := ""
	closest := maxDistance + 1
	for _, kw := range lexer.Keywords() {
		d := levenshtein.DistanceForStrings(
			[]rune(strings.ToLower(tok.Text)),
			[]rune(kw),
			levenshtein.DefaultOptionsWithSub,
		)
		if d < closest {
			closest = d
			match = kw
		}
	}

	if match == "" {
		return ""
	}

	return fmt.Sprintf("did you mean %q?", match)
}
