package safety_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"sahaayak/internal/model"
	"sahaayak/internal/oracle"
	"sahaayak/internal/safety"
)

func newOracleStub(t *testing.T, handler http.HandlerFunc) *oracle.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := oracle.NewClient(oracle.Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return client
}

func wordResponse(word string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"` + word + `"}}]}`))
	}
}

func TestClassifyKeywordsWithoutOracle(t *testing.T) {
	t.Parallel()
	c := safety.NewClassifier(nil, nil)

	require.Equal(t, model.RiskHigh, c.Classify(context.Background(), "I want to KILL MYSELF"))
	require.Equal(t, model.RiskHigh, c.Classify(context.Background(), "everything feels hopeless"))
	require.Equal(t, model.RiskLow, c.Classify(context.Background(), "I feel so lonely lately"))
	require.Equal(t, model.RiskNone, c.Classify(context.Background(), "what a lovely morning"))
}

func TestClassifyHighWinsOverLowInKeywordPath(t *testing.T) {
	t.Parallel()
	c := safety.NewClassifier(nil, nil)

	tier := c.Classify(context.Background(), "I'm anxious and I want to end my life")
	require.Equal(t, model.RiskHigh, tier)
}

func TestClassifyParsesOracleWordTolerantly(t *testing.T) {
	t.Parallel()

	cases := map[string]model.RiskTier{
		"high":            model.RiskHigh,
		"'High'.":         model.RiskHigh,
		"low":             model.RiskLow,
		"the level is low": model.RiskLow,
		"none":            model.RiskNone,
		"uncertain":       model.RiskNone,
	}
	for word, want := range cases {
		client := newOracleStub(t, wordResponse(word))
		c := safety.NewClassifier(client, nil)
		require.Equal(t, want, c.Classify(context.Background(), "some message"), "word %q", word)
	}
}

func TestClassifyFallsBackToKeywordsOnOracleError(t *testing.T) {
	t.Parallel()
	client := newOracleStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := safety.NewClassifier(client, nil)

	require.Equal(t, model.RiskHigh, c.Classify(context.Background(), "there is no reason to live"))
	require.Equal(t, model.RiskNone, c.Classify(context.Background(), "hello there"))
}

func TestKeywordTier(t *testing.T) {
	t.Parallel()
	require.Equal(t, model.RiskHigh, safety.KeywordTier("thinking about suicide"))
	require.Equal(t, model.RiskLow, safety.KeywordTier("had a panic attack today"))
	require.Equal(t, model.RiskNone, safety.KeywordTier("went for a walk"))
}
