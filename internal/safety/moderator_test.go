package safety_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"sahaayak/internal/safety"
)

func jsonResponse(payload string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":` + payload + `}}]}`))
	}
}

func TestModerateBlockedTermsWithoutOracle(t *testing.T) {
	t.Parallel()
	m := safety.NewModerator(nil, nil)

	verdict := m.Moderate(context.Background(), "you are such an idiot")
	require.False(t, verdict.IsSafe)
	require.NotEmpty(t, verdict.Reason)

	verdict = m.Moderate(context.Background(), "today was a good day at school")
	require.True(t, verdict.IsSafe)
	require.Empty(t, verdict.Reason)
}

func TestModerateAcceptsSafeOracleVerdict(t *testing.T) {
	t.Parallel()
	client := newOracleStub(t, jsonResponse(`"{\"isSafe\": true}"`))
	m := safety.NewModerator(client, nil)

	verdict := m.Moderate(context.Background(), "sharing my study tips")
	require.True(t, verdict.IsSafe)
}

func TestModerateCarriesOracleReason(t *testing.T) {
	t.Parallel()
	client := newOracleStub(t, jsonResponse(`"{\"isSafe\": false, \"reason\": \"This content appears to be bullying or harassment.\"}"`))
	m := safety.NewModerator(client, nil)

	verdict := m.Moderate(context.Background(), "mean message")
	require.False(t, verdict.IsSafe)
	require.Equal(t, "This content appears to be bullying or harassment.", verdict.Reason)
}

func TestModerateRejectsOnOracleFailure(t *testing.T) {
	t.Parallel()
	client := newOracleStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	m := safety.NewModerator(client, nil)

	verdict := m.Moderate(context.Background(), "anything at all")
	require.False(t, verdict.IsSafe)
	require.NotEmpty(t, verdict.Reason)
}

func TestModerateRejectsMalformedVerdict(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{
		`"not json at all"`,
		`"{\"verdict\": \"fine\"}"`,
	} {
		client := newOracleStub(t, jsonResponse(payload))
		m := safety.NewModerator(client, nil)
		verdict := m.Moderate(context.Background(), "hello")
		require.False(t, verdict.IsSafe, "payload %s", payload)
	}
}
