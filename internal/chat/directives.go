package chat

import (
	"regexp"
	"strings"

	"sahaayak/internal/model"
)

// CrisisSentinel signals the high-risk terminal state to the caller. It is
// never rendered as chat content; callers intercept it and present the
// dedicated crisis-support flow.
const CrisisSentinel = "[CRISIS_RESPONSE]"

const maxQuickReplies = 3

var (
	quickRepliesPattern = regexp.MustCompile(`(?s)\[QUICK_REPLIES:(.*?)\]`)
	playlistPattern     = regexp.MustCompile(`\[PLAYLIST:([^|\]]+)\|([^\]]+)\]`)
)

// extractDirectives strips the bracketed control tags out of a generated
// reply and returns the clean display text plus the structured fields. Both
// directive kinds are parsed independently; the generation prompt forbids
// combining them but nothing downstream relies on that.
func extractDirectives(reply string) (string, []string, *model.PlaylistSuggestion) {
	text := reply
	var quickReplies []string
	var playlist *model.PlaylistSuggestion

	if match := quickRepliesPattern.FindStringSubmatch(text); len(match) == 2 {
		for _, part := range strings.Split(match[1], "|") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			quickReplies = append(quickReplies, part)
			if len(quickReplies) == maxQuickReplies {
				break
			}
		}
		text = quickRepliesPattern.ReplaceAllString(text, "")
	}

	if match := playlistPattern.FindStringSubmatch(text); len(match) == 3 {
		title := strings.TrimSpace(match[1])
		url := strings.TrimSpace(match[2])
		if title != "" && url != "" {
			playlist = &model.PlaylistSuggestion{Title: title, URL: url}
		}
		text = playlistPattern.ReplaceAllString(text, "")
	}

	return strings.TrimSpace(text), quickReplies, playlist
}
