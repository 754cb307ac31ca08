package bridgely

import (
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	comaTerminatorToken
	slashTerminatorToken
)

var (
	whitespaceMatcher      = parsly.NewToken(whitespaceToken, " ", matcher.NewWhiteSpace())
	comaTerminatorMatcher  = parsly.NewToken(comaTerminatorToken, "coma", matcher.NewTerminator(',', true))
	slashTerminatorMatcher = parsly.NewToken(slashTerminatorToken, "slash", matcher.NewTerminator('/', true))
)

// matchNames splits a comma-separated name list, trimming whitespace and
// dropping empty elements.
func matchNames(input string) []string {
	cursor := parsly.NewCursor("", []byte(input), 0)
	var ret []string
	for cursor.Pos < len(cursor.Input) {
		match := cursor.MatchAfterOptional(whitespaceMatcher, comaTerminatorMatcher)
		var value string
		switch match.Code {
		case comaTerminatorToken:
			text := match.Text(cursor)
			value = text[:len(text)-1] //exclude ,
		default:
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
		if value = strings.TrimSpace(value); value != "" {
			ret = append(ret, value)
		}
	}
	return ret
}

// matchSegments splits a slash-separated path into its segments.
func matchSegments(input string) []string {
	cursor := parsly.NewCursor("", []byte(input), 0)
	var ret []string
	for cursor.Pos < len(cursor.Input) {
		match := cursor.MatchAny(slashTerminatorMatcher)
		var value string
		switch match.Code {
		case slashTerminatorToken:
			text := match.Text(cursor)
			value = text[:len(text)-1] //exclude /
		default:
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
		if value != "" {
			ret = append(ret, value)
		}
	}
	return ret
}
