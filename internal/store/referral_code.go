package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlCreateReferralCode = `
INSERT INTO referral_codes (user_id, code)
VALUES ($1, $2)
RETURNING id, user_id, code, is_active, created_at
`

// CreateReferralCode creates a new referral code for a user. Returns
// ErrAlreadyExists if the code string is already taken, so callers can retry
// with a fresh code.
func (s *Store) CreateReferralCode(ctx context.Context, userID uuid.UUID, code string) (ReferralCode, error) {
	var referralCode ReferralCode
	err := s.db.GetContext(ctx, &referralCode, sqlCreateReferralCode, userID, code)
	if err != nil {
		if isUniqueViolation(err) {
			return ReferralCode{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create referral code", err)
		return ReferralCode{}, fmt.Errorf("failed to create referral code: %w", err)
	}
	return referralCode, nil
}

const sqlGetActiveReferralCodeByUser = `
SELECT id, user_id, code, is_active, created_at
FROM referral_codes
WHERE user_id = $1 AND is_active = true
`

// GetActiveReferralCodeByUser retrieves a user's active referral code
func (s *Store) GetActiveReferralCodeByUser(ctx context.Context, userID uuid.UUID) (ReferralCode, error) {
	var referralCode ReferralCode
	err := s.db.GetContext(ctx, &referralCode, sqlGetActiveReferralCodeByUser, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralCode{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral code by user", err)
		return ReferralCode{}, fmt.Errorf("failed to get referral code by user: %w", err)
	}
	return referralCode, nil
}

const sqlGetReferralCodeByCode = `
SELECT id, user_id, code, is_active, created_at
FROM referral_codes
WHERE code = $1
`

// GetReferralCodeByCode retrieves a referral code row by its code string
func (s *Store) GetReferralCodeByCode(ctx context.Context, code string) (ReferralCode, error) {
	var referralCode ReferralCode
	err := s.db.GetContext(ctx, &referralCode, sqlGetReferralCodeByCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralCode{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral code", err)
		return ReferralCode{}, fmt.Errorf("failed to get referral code: %w", err)
	}
	return referralCode, nil
}

const sqlDeactivateReferralCode = `
UPDATE referral_codes
SET is_active = false
WHERE id = $1
`

// DeactivateReferralCode flips the active flag without deleting history
func (s *Store) DeactivateReferralCode(ctx context.Context, codeID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeactivateReferralCode, codeID)
	if err != nil {
		s.logger.Error(ctx, "failed to deactivate referral code", err)
		return fmt.Errorf("failed to deactivate referral code: %w", err)
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
