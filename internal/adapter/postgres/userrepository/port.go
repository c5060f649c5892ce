package userrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
	querybuilder "gitlab.com/judgehub-2025.net/internal/utils"
)

var _ secondary.UserPort = &userRepo{}

type userRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.UserPort {
	if schema == "" {
		schema = "public"
	}
	return &userRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (u userRepo) Create(ctx context.Context, user *domain.Users) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).Insert(
		userTbl.ID, userTbl.UserName, userTbl.PasswordHash,
		userTbl.Email, userTbl.AuthProvider, userTbl.GoogleID,
	).
		Into(userTbl.GetTableName()).
		Values(
			user.ID, user.UserName, user.PasswordHash,
			user.Email, user.AuthProvider, user.GoogleID,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := u.db.ExecContext(ctx, query, args...); err != nil {
		u.logger.Error("failed to create user", "error", err, "user_name", user.UserName)
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (u userRepo) Get(ctx context.Context, id string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getBy(ctx, userTbl.ID, id)
}

func (u userRepo) GetByEmail(ctx context.Context, email string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getBy(ctx, userTbl.Email, email)
}

func (u userRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getBy(ctx, userTbl.GoogleID, googleID)
}

func (u userRepo) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getBy(ctx, userTbl.UserName, userName)
}

// getBy resolves one user by an exact column match; absent rows come
// back as (nil, nil).
func (u userRepo) getBy(ctx context.Context, column, value string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Select(
			userTbl.ID, userTbl.UserName, userTbl.PasswordHash,
			userTbl.Email, userTbl.AuthProvider, userTbl.GoogleID,
		).
		From(userTbl.GetTableName()).
		Where(fmt.Sprintf("%s = ?", column), value).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var user domain.Users
	if err := u.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		u.logger.Error("failed to get user", "error", err, "column", column)
		return nil, fmt.Errorf("get user by %s: %w", column, err)
	}
	return &user, nil
}
