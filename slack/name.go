package slack

import (
	"regexp"
	"strings"
)

// MaxChannelNameLength is the longest channel name accepted
const MaxChannelNameLength = 21

var whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}]+`)

// CanonicalChannelName truncates the name to MaxChannelNameLength runes,
// lowercases it and replaces every whitespace run with a single hyphen.
func CanonicalChannelName(name string) string {
	name = truncate(name, MaxChannelNameLength)
	name = strings.ToLower(name)
	return whitespaceRun.ReplaceAllString(name, "-")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
