package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractDirectivesQuickReplies(t *testing.T) {
	t.Parallel()

	text, replies, playlist := extractDirectives("Here for you. [QUICK_REPLIES:Tell me more|Thanks|Okay]")
	require.Equal(t, "Here for you.", text)
	require.Equal(t, []string{"Tell me more", "Thanks", "Okay"}, replies)
	require.Nil(t, playlist)
}

func TestExtractDirectivesTrimsAndCapsReplies(t *testing.T) {
	t.Parallel()

	_, replies, _ := extractDirectives("Hi [QUICK_REPLIES: a | |b|c|d]")
	require.Equal(t, []string{"a", "b", "c"}, replies)
}

func TestExtractDirectivesPlaylist(t *testing.T) {
	t.Parallel()

	text, _, playlist := extractDirectives("Try this. [PLAYLIST:Calm Evening|https://example.com/calm]")
	require.Equal(t, "Try this.", text)
	require.NotNil(t, playlist)
	require.Equal(t, "Calm Evening", playlist.Title)
	require.Equal(t, "https://example.com/calm", playlist.URL)
}

func TestExtractDirectivesBothPresent(t *testing.T) {
	t.Parallel()

	text, replies, playlist := extractDirectives(
		"Music helps. [PLAYLIST:Focus|https://example.com/f] [QUICK_REPLIES:Play it|Not now]")
	require.Equal(t, "Music helps.", text)
	require.Equal(t, []string{"Play it", "Not now"}, replies)
	require.NotNil(t, playlist)
	require.Equal(t, "Focus", playlist.Title)
}

func TestExtractDirectivesPlainText(t *testing.T) {
	t.Parallel()

	text, replies, playlist := extractDirectives("Just a plain reply.")
	require.Equal(t, "Just a plain reply.", text)
	require.Nil(t, replies)
	require.Nil(t, playlist)
}
