package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/masthead/internal/catalog"
)

func TestBuilder_StandardTestData(t *testing.T) {
	f := NewBuilder(t).WithStandardTestData().Build()

	require.Len(t, f.Registry.Publications(), 2)
	require.Len(t, f.Registry.Works(), 2)
	require.Equal(t, "Technology", f.Publication("Tech Weekly").Category())
	require.Len(t, f.Contributor("Ada").Works(), 2)
}

func TestBuilder_RankingTestData(t *testing.T) {
	f := NewBuilder(t).WithRankingTestData().Build()

	top, ok := f.Registry.TopPublisher()
	require.True(t, ok)
	require.Same(t, f.Publication("Tech Weekly"), top)

	frequent, ok := f.Publication("Vogue").FrequentContributors()
	require.True(t, ok)
	require.Equal(t, []*catalog.Contributor{f.Contributor("Grace")}, frequent)

	frequent, ok = f.Publication("Tech Weekly").FrequentContributors()
	require.True(t, ok)
	require.Equal(t, []*catalog.Contributor{f.Contributor("Linus")}, frequent)

	require.Empty(t, f.Publication("Elle").Works())
}

func TestBuilder_Options(t *testing.T) {
	f := NewBuilder(t, catalog.WithFrequentThreshold(1)).WithRankingTestData().Build()

	frequent, ok := f.Publication("Tech Weekly").FrequentContributors()
	require.True(t, ok)
	require.Equal(t, []*catalog.Contributor{f.Contributor("Ada"), f.Contributor("Linus")}, frequent)
}
