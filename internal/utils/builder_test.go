package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelectWithPagination(t *testing.T) {
	qb := NewQueryBuilder("public").
		Select("id", "name").
		From("contests").
		Where("platform = ?", "atcoder").
		And("category = ?", "ABC").
		OrderBy("start_time_seconds", false).
		Limit(20).
		Offset(40)

	query, args := qb.Build()
	assert.Equal(t,
		"SELECT id, name FROM public.contests WHERE platform = ? AND category = ? ORDER BY start_time_seconds DESC LIMIT ? OFFSET ?",
		query)
	assert.Equal(t, []interface{}{"atcoder", "ABC", 20, 40}, args)
}

func TestBuildSelectSubGroupArgsOnce(t *testing.T) {
	qb := NewQueryBuilder("public").
		Select("id").
		From("problems").
		Where("platform = ?", "yukicoder").
		AndGroup(func(sub QueryBuilder) {
			sub.Where("difficulty >= ?", 800).And("difficulty <= ?", 1200)
		})

	query, args := qb.Build()
	assert.Equal(t,
		"SELECT id FROM public.problems WHERE platform = ? AND (difficulty >= ? AND difficulty <= ?)",
		query)
	require.Len(t, args, 3)
	assert.Equal(t, []interface{}{"yukicoder", 800, 1200}, args)
}

func TestBuildInsertOnConflictUpdate(t *testing.T) {
	qb := NewQueryBuilder("public").
		Into("contests").
		Insert("id", "name").
		Values("atcoder_abc100", "ABC100").
		Values("atcoder_abc101", "ABC101").
		OnConflict("id").
		SetExclude("name")

	query, args := qb.Build()
	assert.Equal(t,
		"INSERT INTO public.contests (id, name) VALUES (?, ?), (?, ?) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name",
		query)
	assert.Len(t, args, 4)
}

func TestBuildInsertOnConflictDoNothing(t *testing.T) {
	qb := NewQueryBuilder("public").
		Into("problem_tags").
		Insert("problem_id", "tag_id").
		Values("yukicoder_1_A", int64(3)).
		OnConflict("problem_id", "tag_id").
		DoNothing()

	query, args := qb.Build()
	assert.Equal(t,
		"INSERT INTO public.problem_tags (problem_id, tag_id) VALUES (?, ?) ON CONFLICT (problem_id, tag_id) DO NOTHING",
		query)
	assert.Len(t, args, 2)
}

func TestBuildInsertColumnMismatch(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Into("contests").
		Insert("id", "name").
		Values("only-one").
		Build()
	assert.Empty(t, query)
	assert.Nil(t, args)
}

func TestBuildJoin(t *testing.T) {
	query, _ := NewQueryBuilder("public").
		Select("p.id").
		From("problems p").
		Join(JoinTypeLeft, "public.problem_tags", "pt", "pt.problem_id = p.id").
		Build()
	assert.Equal(t,
		"SELECT p.id FROM public.problems p LEFT JOIN public.problem_tags pt ON pt.problem_id = p.id",
		query)
}
