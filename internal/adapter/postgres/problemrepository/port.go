package problemrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
	querybuilder "gitlab.com/judgehub-2025.net/internal/utils"
)

// chunkSize bounds the blast radius of a failed upsert transaction.
const chunkSize = 100

// ProblemRepository implements the ProblemRepository port with PostgreSQL.
type ProblemRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

var _ secondary.ProblemRepository = (*ProblemRepository)(nil)

func NewProblemRepository(db *sqlx.DB, logger primary.Logger) *ProblemRepository {
	return &ProblemRepository{
		db:     db,
		logger: logger,
	}
}

// SaveBatches upserts problems in chunks of chunkSize, each chunk in
// its own transaction together with its tag dictionary and join rows.
// A failing chunk aborts the call but leaves prior chunks committed.
func (r *ProblemRepository) SaveBatches(ctx context.Context, problems []domain.Problem) error {
	for start := 0; start < len(problems); start += chunkSize {
		end := start + chunkSize
		if end > len(problems) {
			end = len(problems)
		}
		chunk := problems[start:end]

		if err := r.saveChunk(ctx, chunk); err != nil {
			r.logger.Error("problem chunk upsert failed", "error", err, "chunk_start", start)
			return &domain.PersistenceError{
				Table:    domain.GetProblemTable().TableName(),
				ChunkIDs: problemIDs(chunk),
				Err:      err,
			}
		}
	}
	return nil
}

func (r *ProblemRepository) saveChunk(ctx context.Context, chunk []domain.Problem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := upsertProblems(ctx, tx, chunk); err != nil {
		return err
	}
	if err := upsertTags(ctx, tx, chunk); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func upsertProblems(ctx context.Context, tx *sqlx.Tx, chunk []domain.Problem) error {
	tbl := domain.GetProblemTable()
	qb := querybuilder.NewQueryBuilder("public").
		Into(tbl.TableName()).
		Insert(tbl.Columns()...).
		OnConflict(tbl.ID).
		SetExclude(
			tbl.ContestID, tbl.Index, tbl.Name, tbl.Title, tbl.Platform,
			tbl.Category, tbl.RawPoint, tbl.Difficulty, tbl.IsExperimental,
			tbl.URL, tbl.SolverCount, tbl.Submissions, tbl.SuccessRate,
		)

	for _, p := range chunk {
		qb.Values(
			p.ID, p.ContestID, p.Index, p.Name, p.Title, p.Platform, p.Category,
			p.RawPoint, p.Difficulty, p.IsExperimental, p.URL, p.SolverCount,
			p.Submissions, p.SuccessRate,
		)
	}

	query, args := qb.Build()
	if query == "" {
		return errors.New("build problem upsert query")
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return fmt.Errorf("upsert problems: %w", err)
	}
	return nil
}

// upsertTags refreshes the tag dictionary and the problem_tags join
// rows for a chunk. Dictionary rows are shared and never deleted here.
func upsertTags(ctx context.Context, tx *sqlx.Tx, chunk []domain.Problem) error {
	names := make([]string, 0)
	seen := map[string]struct{}{}
	for _, p := range chunk {
		for _, tag := range p.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			names = append(names, tag)
		}
	}
	if len(names) == 0 {
		return nil
	}

	tagTbl := domain.GetTechnicalTagTable()
	qb := querybuilder.NewQueryBuilder("public").
		Into(tagTbl.GetTableName()).
		Insert(tagTbl.Name).
		OnConflict(tagTbl.Name).
		DoNothing()
	for _, name := range names {
		qb.Values(name)
	}
	query, args := qb.Build()
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return fmt.Errorf("upsert technical tags: %w", err)
	}

	var tags []domain.TechnicalTag
	selectQuery, selectArgs, err := sqlx.In(
		fmt.Sprintf("SELECT id, name FROM public.%s WHERE name IN (?)", tagTbl.GetTableName()), names)
	if err != nil {
		return fmt.Errorf("build tag lookup: %w", err)
	}
	if err := tx.SelectContext(ctx, &tags, tx.Rebind(selectQuery), selectArgs...); err != nil {
		return fmt.Errorf("load technical tags: %w", err)
	}

	idByName := make(map[string]int64, len(tags))
	for _, tag := range tags {
		idByName[tag.Name] = tag.ID
	}

	joinTbl := domain.GetProblemTagTable()
	joinQB := querybuilder.NewQueryBuilder("public").
		Into(joinTbl.GetTableName()).
		Insert(joinTbl.ProblemID, joinTbl.TagID).
		OnConflict(joinTbl.ProblemID, joinTbl.TagID).
		DoNothing()

	rows := 0
	for _, p := range chunk {
		for _, tag := range p.Tags {
			tagID, ok := idByName[tag]
			if !ok {
				return fmt.Errorf("technical tag %q missing after upsert", tag)
			}
			joinQB.Values(p.ID, tagID)
			rows++
		}
	}
	if rows == 0 {
		return nil
	}

	joinQuery, joinArgs := joinQB.Build()
	if _, err := tx.ExecContext(ctx, tx.Rebind(joinQuery), joinArgs...); err != nil {
		return fmt.Errorf("upsert problem tags: %w", err)
	}
	return nil
}

// problemRow carries one aggregated read row; tags arrive as a
// Postgres array, empty when the problem has none.
type problemRow struct {
	domain.Problem
	TagNames pq.StringArray `db:"tags"`
}

const problemSelectColumns = `
	p.id, p.contest_id, p.problem_index, p.name, p.title, p.platform,
	p.category, p.raw_point, p.difficulty, p.is_experimental, p.url,
	p.solver_count, p.submissions, p.success_rate,
	COALESCE(array_agg(t.name) FILTER (WHERE t.name IS NOT NULL), '{}') AS tags`

func (r *ProblemRepository) GetProblem(ctx context.Context, id string) (*domain.Problem, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM public.problems p
		LEFT JOIN public.problem_tags pt ON pt.problem_id = p.id
		LEFT JOIN public.technical_tags t ON t.id = pt.tag_id
		WHERE p.id = $1
		GROUP BY p.id`, problemSelectColumns)

	var row problemRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to get problem", "error", err, "id", id)
		return nil, fmt.Errorf("get problem %s: %w", id, err)
	}

	problem := row.Problem
	problem.Tags = []string(row.TagNames)
	return &problem, nil
}

func (r *ProblemRepository) GetProblems(ctx context.Context, cond secondary.ProblemCondition) ([]domain.Problem, error) {
	cond.Normalize()

	qb := querybuilder.NewQueryBuilder("public").
		Select("p.id").
		From("problems p")

	if len(cond.TagIDs) > 0 {
		qb.Join(querybuilder.JoinTypeInner, "public.problem_tags", "pt", "pt.problem_id = p.id")
	}
	if cond.Platform != nil {
		qb.Where("p.platform = ?", string(*cond.Platform))
	}
	if cond.Category != nil {
		qb.Where("p.category = ?", *cond.Category)
	}
	if cond.DifficultyFrom != nil {
		qb.Where("p.difficulty >= ?", *cond.DifficultyFrom)
	}
	if cond.DifficultyTo != nil {
		qb.Where("p.difficulty <= ?", *cond.DifficultyTo)
	}
	if len(cond.TagIDs) > 0 {
		qb.AndGroup(func(sub querybuilder.QueryBuilder) {
			for _, tagID := range cond.TagIDs {
				sub.Or("pt.tag_id = ?", tagID)
			}
		})
	}
	qb.GroupBy("p.id").
		OrderBy("p.id", true).
		Limit(cond.PerPage).
		Offset(cond.Offset())

	idQuery, idArgs := qb.Build()

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, r.db.Rebind(idQuery), idArgs...); err != nil {
		r.logger.Error("failed to list problem ids", "error", err)
		return nil, fmt.Errorf("list problems: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Problem{}, nil
	}

	query, args, err := sqlx.In(fmt.Sprintf(`
		SELECT %s
		FROM public.problems p
		LEFT JOIN public.problem_tags pt ON pt.problem_id = p.id
		LEFT JOIN public.technical_tags t ON t.id = pt.tag_id
		WHERE p.id IN (?)
		GROUP BY p.id
		ORDER BY p.id ASC`, problemSelectColumns), ids)
	if err != nil {
		return nil, fmt.Errorf("build problem query: %w", err)
	}

	var rows []problemRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("failed to list problems", "error", err)
		return nil, fmt.Errorf("list problems: %w", err)
	}

	problems := make([]domain.Problem, 0, len(rows))
	for _, row := range rows {
		problem := row.Problem
		problem.Tags = []string(row.TagNames)
		problems = append(problems, problem)
	}
	return problems, nil
}

func (r *ProblemRepository) GetTags(ctx context.Context) ([]domain.TechnicalTag, error) {
	tagTbl := domain.GetTechnicalTagTable()
	query, args := querybuilder.NewQueryBuilder("public").
		Select(tagTbl.ID, tagTbl.Name).
		From(tagTbl.GetTableName()).
		OrderBy(tagTbl.ID, true).
		Build()

	tags := []domain.TechnicalTag{}
	if err := r.db.SelectContext(ctx, &tags, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("failed to list tags", "error", err)
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func problemIDs(chunk []domain.Problem) []string {
	ids := make([]string, 0, len(chunk))
	for _, p := range chunk {
		ids = append(ids, p.ID)
	}
	return ids
}
