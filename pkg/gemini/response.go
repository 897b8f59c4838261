package gemini

import (
	"regexp"
	"strings"
)

var codeFenceRe = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// StripCodeFence trims text and removes a surrounding markdown code fence
// such as ```json ... ```, which models often wrap JSON answers in.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if m := codeFenceRe.FindStringSubmatch(text); len(m) == 2 {
		return m[1]
	}
	return text
}
