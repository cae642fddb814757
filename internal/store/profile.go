package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateProfileParams represents parameters for creating a user profile
type CreateProfileParams struct {
	Email          string
	Name           string
	HashedPassword string
}

const sqlCreateProfile = `
INSERT INTO profiles (email, name, hashed_password)
VALUES ($1, $2, $3)
RETURNING id, email, name, hashed_password, credits, referred_by_code, created_at, updated_at
`

// CreateProfile creates a user profile. Returns ErrAlreadyExists if the email
// is taken.
func (s *Store) CreateProfile(ctx context.Context, params CreateProfileParams) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlCreateProfile,
		params.Email,
		params.Name,
		params.HashedPassword)
	if err != nil {
		if isUniqueViolation(err) {
			return Profile{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create profile", err)
		return Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

const sqlGetProfileByID = `
SELECT id, email, name, hashed_password, credits, referred_by_code, created_at, updated_at
FROM profiles
WHERE id = $1
`

// GetProfileByID retrieves a profile by user ID
func (s *Store) GetProfileByID(ctx context.Context, userID uuid.UUID) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlGetProfileByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get profile", err)
		return Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

const sqlGetProfileByEmail = `
SELECT id, email, name, hashed_password, credits, referred_by_code, created_at, updated_at
FROM profiles
WHERE email = $1
`

// GetProfileByEmail retrieves a profile by email address
func (s *Store) GetProfileByEmail(ctx context.Context, email string) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlGetProfileByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get profile by email", err)
		return Profile{}, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return profile, nil
}

const sqlIncrementCredits = `
UPDATE profiles
SET credits = credits + $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, email, name, hashed_password, credits, referred_by_code, created_at, updated_at
`

// IncrementCredits atomically adds to a user's credit balance and returns the
// updated profile
func (s *Store) IncrementCredits(ctx context.Context, userID uuid.UUID, amount int) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlIncrementCredits, userID, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to increment credits", err)
		return Profile{}, fmt.Errorf("failed to increment credits: %w", err)
	}
	return profile, nil
}

const sqlSetReferredByCode = `
UPDATE profiles
SET referred_by_code = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// SetReferredByCode stamps the referral code a user signed up through
func (s *Store) SetReferredByCode(ctx context.Context, userID uuid.UUID, code string) error {
	res, err := s.db.ExecContext(ctx, sqlSetReferredByCode, userID, code)
	if err != nil {
		s.logger.Error(ctx, "failed to set referred by code", err)
		return fmt.Errorf("failed to set referred by code: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
