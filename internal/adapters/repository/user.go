package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, username, hashedPassword, role string) (*domain.User, error) {
	user := &domain.User{Username: username, HashedPassword: hashedPassword, Role: role}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, hashed_password, role) VALUES ($1, $2, $3) RETURNING user_id`,
		username, hashedPassword, role,
	).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, username, hashed_password, role FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.HashedPassword, &user.Role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}
