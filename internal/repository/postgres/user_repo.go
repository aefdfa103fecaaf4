package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/vedran77/missive/internal/domain"
)

const userColumns = "id, first_name, last_name, username, email, password_hash, created_at"

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, username, email, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.pool.QueryRow(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Username,
		user.Email, user.PasswordHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		return errors.Wrap(mapError(err), "userRepo.Create")
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
}

func (r *UserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)",
		username, email,
	).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.ExistsByUsernameOrEmail")
	}
	return exists, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *UserRepo) SearchByUsername(ctx context.Context, prefix string, excludeID uuid.UUID, limit int) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username ILIKE $1 AND id <> $2
		ORDER BY username
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, likeEscaper.Replace(prefix)+"%", excludeID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.SearchByUsername")
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Username,
			&u.Email, &u.PasswordHash, &u.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "userRepo.SearchByUsername.Scan")
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Username,
		&u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.scanUser")
	}
	return &u, nil
}
