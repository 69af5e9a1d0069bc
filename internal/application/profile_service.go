package application

import (
	"context"
	"fmt"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
	"github.com/arsicorp/zenith-lab-robotics/internal/ports"
)

type ProfileService struct {
	profiles ports.ProfileStore
}

func NewProfileService(profiles ports.ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

// Update replaces the caller's profile fields. The account type is kept
// from the stored profile; users cannot change it through this path.
func (s *ProfileService) Update(ctx context.Context, userID int64, profile domain.Profile) (*domain.Profile, error) {
	current, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if current == nil {
		return nil, ErrNotFound
	}

	profile.UserID = userID
	profile.AccountType = current.AccountType
	if err := s.profiles.Update(ctx, &profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &profile, nil
}
