package yosupo

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/judgehub-2025.net/internal/domain"
)

const sampleListing = `
[[categories]]
name = "Sample"
problems = ["aplusb", "many_aplusb"]

[[categories]]
name = "Data Structure"
problems = ["static_range_sum"]

[[categories]]
name = "Brand New Category"
problems = ["mystery"]
`

func TestAssembleFromCategoryListing(t *testing.T) {
	var listing rawCategories
	require.NoError(t, toml.Unmarshal([]byte(sampleListing), &listing))

	snap := assemble(listing)
	require.Len(t, snap.Contests, 3)
	require.Len(t, snap.Problems, 4)

	sample := snap.Contests[0]
	assert.Equal(t, "yosupo_online_judge_Sample", sample.ID)
	assert.Equal(t, CategorySample, sample.Category)
	assert.Equal(t, domain.PhaseFinished, sample.Phase)
	assert.Nil(t, sample.StartTimeSeconds)
	assert.Nil(t, sample.DurationSeconds)
	require.Len(t, sample.Problems, 2)

	first := sample.Problems[0]
	assert.Equal(t, "yosupo_online_judge_Sample_A", first.ID)
	assert.Equal(t, "A. Aplusb", first.Title)
	assert.Equal(t, "https://judge.yosupo.jp/problem/aplusb", first.URL)
	assert.Equal(t, []string{}, first.Tags)

	second := sample.Problems[1]
	assert.Equal(t, "yosupo_online_judge_Sample_B", second.ID)
	assert.Equal(t, "B. Many Aplusb", second.Name)

	// Categories unknown to the table degrade to Other, never error.
	unknown := snap.Contests[2]
	assert.Equal(t, CategoryOther, unknown.Category)
}

func TestTitleFromSlug(t *testing.T) {
	cases := map[string]string{
		"aplusb":            "Aplusb",
		"static_range_sum":  "Static Range Sum",
		"shortest_path":     "Shortest Path",
		"unionfind":         "Unionfind",
		"many_aplusb_128bit": "Many Aplusb 128bit",
	}
	for slug, want := range cases {
		assert.Equal(t, want, titleFromSlug(slug), "slug=%s", slug)
	}
}
