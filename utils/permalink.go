package utils

import (
	"regexp"

	"github.com/samber/mo"
)

const permalinkLinkText = "View on Workplace"

// permalinkRegex matches Workplace group permalinks and captures the post id.
var permalinkRegex = regexp.MustCompile(`(?i)https://\w+\.facebook\.com/groups/\d+/permalink/(\d+)`)

// PermalinkFooter is appended to every issue body so later issue events can be traced
// back to the originating post.
func PermalinkFooter(permalinkURL string) string {
	return "\n\n[" + permalinkLinkText + "](" + permalinkURL + ")"
}

// ExtractPermalinkID returns the first permalink post id found in text.
func ExtractPermalinkID(text string) mo.Option[string] {
	match := permalinkRegex.FindStringSubmatch(text)
	if len(match) < 2 {
		return mo.None[string]()
	}
	return mo.Some(match[1])
}
