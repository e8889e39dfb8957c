// internal/service/signal/factory_test.go

package signal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"contentpulse/internal/config"
	"contentpulse/internal/service/signal"
)

func TestNewProviderWithoutCredentialsReturnsMock(t *testing.T) {
	provider := signal.NewProvider(config.SignalConfig{}, testLogger())
	require.Equal(t, "mock", provider.Name())
}

func TestNewProviderWithCredentialsReturnsSERP(t *testing.T) {
	provider := signal.NewProvider(config.SignalConfig{APIKey: "test-key"}, testLogger())
	require.Equal(t, "serp", provider.Name())
}

func TestMockProviderIsDeterministic(t *testing.T) {
	provider := signal.NewMockProvider()
	ctx := context.Background()

	first, err := provider.KeywordData(ctx, "content marketing")
	require.NoError(t, err)
	second, err := provider.KeywordData(ctx, "content marketing")
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.GreaterOrEqual(t, first.Difficulty, 0)
	require.LessOrEqual(t, first.Difficulty, 100)
	require.Greater(t, first.SearchVolume, 0)
}

func TestMockProviderSuggestions(t *testing.T) {
	provider := signal.NewMockProvider()

	suggestions, err := provider.KeywordSuggestions(context.Background(), "seo")
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)
	for _, s := range suggestions {
		require.Contains(t, s, "seo")
	}
}

func TestMockProviderAnalyzeContent(t *testing.T) {
	provider := signal.NewMockProvider()

	insights, err := provider.AnalyzeContent(context.Background(), "draft body", "seo")
	require.NoError(t, err)
	require.NotEmpty(t, insights.Recommendations)
	require.Empty(t, insights.CompetitorURLs)
}
