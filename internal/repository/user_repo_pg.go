package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airline-records/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, email string, username, newEmail string) (*domain.User, error)
	Delete(ctx context.Context, email string) (*domain.User, error)
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT id, username, email FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PGUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, username, email FROM users WHERE email=$1 ORDER BY id LIMIT 1`, email)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGUserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRow(ctx, `INSERT INTO users (username, email) VALUES ($1, $2) RETURNING id`,
		user.Username, user.Email).Scan(&user.ID)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PGUserRepository) Update(ctx context.Context, email string, username, newEmail string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `UPDATE users SET username=$1, email=$2 WHERE email=$3 RETURNING id, username, email`,
		username, newEmail, email)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGUserRepository) Delete(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM users WHERE email=$1 RETURNING id, username, email`, email)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ UserRepository = (*PGUserRepository)(nil)
