package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, first_name, last_name, email, phone, address, city, state, zip, account_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		profile.UserID, profile.FirstName, profile.LastName, profile.Email, profile.Phone,
		profile.Address, profile.City, profile.State, profile.Zip, string(profile.AccountType),
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	profile := &domain.Profile{}
	var accountType string
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, first_name, last_name, email, phone, address, city, state, zip, account_type
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&profile.UserID, &profile.FirstName, &profile.LastName, &profile.Email, &profile.Phone,
		&profile.Address, &profile.City, &profile.State, &profile.Zip, &accountType)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select profile: %w", err)
	}
	profile.AccountType = domain.AccountType(accountType)
	return profile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE profiles
		 SET first_name = $2, last_name = $3, email = $4, phone = $5, address = $6, city = $7, state = $8, zip = $9, account_type = $10
		 WHERE user_id = $1`,
		profile.UserID, profile.FirstName, profile.LastName, profile.Email, profile.Phone,
		profile.Address, profile.City, profile.State, profile.Zip, string(profile.AccountType),
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update profile: no profile for user %d", profile.UserID)
	}
	return nil
}
