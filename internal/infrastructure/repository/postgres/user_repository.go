package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/volleyverse/fantasy-volley/internal/domain/user"
	qb "github.com/volleyverse/fantasy-volley/internal/platform/querybuilder"
)

type userTableModel struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (row userTableModel) toDomain() user.User {
	return user.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}

type UserRepository struct {
	db *sqlx.DB
}

var userSelectColumns = []string{
	"id",
	"email",
	"name",
	"password_hash",
	"created_at",
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	query, args, err := qb.Select(userSelectColumns...).From("users").
		Where(qb.Eq("email", strings.ToLower(email))).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build select user by email query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("select user by email: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, bool, error) {
	query, args, err := qb.Select(userSelectColumns...).From("users").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build select user by id query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("select user by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *UserRepository) Insert(ctx context.Context, item user.User) error {
	row := userTableModel{
		ID:           item.ID,
		Email:        strings.ToLower(item.Email),
		Name:         item.Name,
		PasswordHash: item.PasswordHash,
		CreatedAt:    item.CreatedAt,
	}

	query, args, err := qb.InsertModel("users", row, "")
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}
