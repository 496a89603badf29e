package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCategoryPriorityKeywordsWin(t *testing.T) {
	// A keyword in the goal text beats the explicit category field.
	assert.Equal(t, CategoryBackend, MatchCategory("learn Django properly", "frontend"))
	assert.Equal(t, CategoryFrontend, MatchCategory("master React hooks", "backend"))
	assert.Equal(t, CategoryDevOps, MatchCategory("get comfortable with Kubernetes", ""))
	assert.Equal(t, CategoryDataScience, MatchCategory("machine learning from scratch", "mobile"))
}

func TestMatchCategoryExplicitField(t *testing.T) {
	assert.Equal(t, CategoryMobile, MatchCategory("ship my first app", "mobile"))
	assert.Equal(t, CategoryMobile, MatchCategory("ship my first app", " Mobile "))
}

func TestMatchCategorySubstringFallback(t *testing.T) {
	assert.Equal(t, CategoryBackend, MatchCategory("become a backend engineer", ""))
	assert.Equal(t, CategoryDevOps, MatchCategory("break into devops", ""))
}

func TestMatchCategoryGeneralFallback(t *testing.T) {
	assert.Equal(t, CategoryGeneral, MatchCategory("get better at chess", ""))
	assert.Equal(t, CategoryGeneral, MatchCategory("", ""))
	assert.Equal(t, CategoryGeneral, MatchCategory("learn something new", "not-a-category"))
}

func TestTrackShape(t *testing.T) {
	for _, category := range []string{
		CategoryBackend, CategoryFrontend, CategoryDataScience,
		CategoryMobile, CategoryDevOps, CategoryGeneral,
	} {
		track := Track(category)
		require.Len(t, track, 12, "category %s", category)
		for i, month := range track {
			assert.NotEmpty(t, month.Theme, "%s month %d", category, i+1)
			assert.NotEmpty(t, month.Titles, "%s month %d", category, i+1)
		}
	}
}

func TestTrackUnknownFallsBackToGeneral(t *testing.T) {
	assert.Equal(t, Track(CategoryGeneral), Track("underwater-basket-weaving"))
}

func TestFlattenTitlesAndThemes(t *testing.T) {
	track := Track(CategoryBackend)
	titles := FlattenTitles(track)
	themes := Themes(track)

	require.Len(t, themes, 12)
	assert.Equal(t, track[0].Theme, themes[0])

	total := 0
	for _, m := range track {
		total += len(m.Titles)
	}
	require.Len(t, titles, total)
	assert.Equal(t, track[0].Titles[0], titles[0])
}
