package contestrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
	querybuilder "gitlab.com/judgehub-2025.net/internal/utils"
)

const chunkSize = 100

// ContestRepository implements the ContestRepository port with PostgreSQL.
type ContestRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

var _ secondary.ContestRepository = (*ContestRepository)(nil)

func NewContestRepository(db *sqlx.DB, logger primary.Logger) *ContestRepository {
	return &ContestRepository{
		db:     db,
		logger: logger,
	}
}

// SaveBatches upserts contests in chunks of chunkSize. Each chunk
// commits in its own transaction together with the contest_problems
// join rows for the contests in that chunk. Problem rows themselves
// are owned by the problem repository.
func (r *ContestRepository) SaveBatches(ctx context.Context, contests []domain.Contest) error {
	for start := 0; start < len(contests); start += chunkSize {
		end := start + chunkSize
		if end > len(contests) {
			end = len(contests)
		}
		chunk := contests[start:end]

		if err := r.saveChunk(ctx, chunk); err != nil {
			r.logger.Error("contest chunk upsert failed", "error", err, "chunk_start", start)
			return &domain.PersistenceError{
				Table:    domain.GetContestTable().TableName(),
				ChunkIDs: contestIDs(chunk),
				Err:      err,
			}
		}
	}
	return nil
}

func (r *ContestRepository) saveChunk(ctx context.Context, chunk []domain.Contest) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	tbl := domain.GetContestTable()
	qb := querybuilder.NewQueryBuilder("public").
		Into(tbl.TableName()).
		Insert(tbl.Columns()...).
		OnConflict(tbl.ID).
		SetExclude(
			tbl.RawID, tbl.Name, tbl.Category, tbl.Phase,
			tbl.StartTimeSeconds, tbl.DurationSeconds, tbl.URL,
		)
	for _, c := range chunk {
		qb.Values(
			c.ID, c.RawID, c.Name, c.Category, c.Platform, c.Phase,
			c.StartTimeSeconds, c.DurationSeconds, c.URL,
		)
	}

	query, args := qb.Build()
	if query == "" {
		return errors.New("build contest upsert query")
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return fmt.Errorf("upsert contests: %w", err)
	}

	if err := upsertContestProblems(ctx, tx, chunk); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func upsertContestProblems(ctx context.Context, tx *sqlx.Tx, chunk []domain.Contest) error {
	joinTbl := domain.GetContestProblemTable()
	qb := querybuilder.NewQueryBuilder("public").
		Into(joinTbl.GetTableName()).
		Insert(joinTbl.ContestID, joinTbl.ProblemID).
		OnConflict(joinTbl.ContestID, joinTbl.ProblemID).
		DoNothing()

	rows := 0
	for _, c := range chunk {
		for _, p := range c.Problems {
			qb.Values(c.ID, p.ID)
			rows++
		}
	}
	if rows == 0 {
		return nil
	}

	query, args := qb.Build()
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return fmt.Errorf("upsert contest problems: %w", err)
	}
	return nil
}

func (r *ContestRepository) GetContest(ctx context.Context, id string) (*domain.Contest, error) {
	tbl := domain.GetContestTable()
	query, args := querybuilder.NewQueryBuilder("public").
		Select(tbl.Columns()...).
		From(tbl.TableName()).
		Where(tbl.ID+" = ?", id).
		Build()

	var contest domain.Contest
	if err := r.db.GetContext(ctx, &contest, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to get contest", "error", err, "id", id)
		return nil, fmt.Errorf("get contest %s: %w", id, err)
	}

	problems, err := r.contestProblems(ctx, id)
	if err != nil {
		return nil, err
	}
	contest.Problems = problems
	return &contest, nil
}

// contestProblems loads the owned problems of a contest, ordered by
// their index. Tags are not attached on this path.
func (r *ContestRepository) contestProblems(ctx context.Context, contestID string) ([]domain.Problem, error) {
	tbl := domain.GetProblemTable()
	cols := make([]string, 0, len(tbl.Columns()))
	for _, col := range tbl.Columns() {
		cols = append(cols, "p."+col)
	}

	query, args := querybuilder.NewQueryBuilder("public").
		Select(cols...).
		From("problems p").
		Join(querybuilder.JoinTypeInner, "public.contest_problems", "cp", "cp.problem_id = p.id").
		Where("cp.contest_id = ?", contestID).
		OrderBy("p.problem_index", true).
		Build()

	problems := []domain.Problem{}
	if err := r.db.SelectContext(ctx, &problems, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("failed to load contest problems", "error", err, "contest_id", contestID)
		return nil, fmt.Errorf("load contest problems %s: %w", contestID, err)
	}
	for i := range problems {
		problems[i].Tags = []string{}
	}
	return problems, nil
}

func (r *ContestRepository) GetContests(ctx context.Context, cond secondary.ContestCondition) ([]domain.Contest, error) {
	cond.Normalize()

	tbl := domain.GetContestTable()
	qb := querybuilder.NewQueryBuilder("public").
		Select(tbl.Columns()...).
		From(tbl.TableName())

	if cond.Platform != nil {
		qb.Where(tbl.Platform+" = ?", string(*cond.Platform))
	}
	if cond.Category != nil {
		qb.Where(tbl.Category+" = ?", *cond.Category)
	}
	qb.OrderBy(tbl.StartTimeSeconds, false).
		Limit(cond.PerPage).
		Offset(cond.Offset())

	query, args := qb.Build()

	contests := []domain.Contest{}
	if err := r.db.SelectContext(ctx, &contests, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("failed to list contests", "error", err)
		return nil, fmt.Errorf("list contests: %w", err)
	}
	for i := range contests {
		contests[i].Problems = []domain.Problem{}
	}
	return contests, nil
}

func (r *ContestRepository) GetCategories(ctx context.Context, platform domain.Platform) ([]string, error) {
	tbl := domain.GetContestTable()
	query, args := querybuilder.NewQueryBuilder("public").
		Select("DISTINCT "+tbl.Category).
		From(tbl.TableName()).
		Where(tbl.Platform+" = ?", string(platform)).
		OrderBy(tbl.Category, true).
		Build()

	categories := []string{}
	if err := r.db.SelectContext(ctx, &categories, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("failed to list categories", "error", err, "platform", platform)
		return nil, fmt.Errorf("list categories for %s: %w", platform, err)
	}
	return categories, nil
}

func contestIDs(chunk []domain.Contest) []string {
	ids := make([]string, 0, len(chunk))
	for _, c := range chunk {
		ids = append(ids, c.ID)
	}
	return ids
}
