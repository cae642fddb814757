package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateEligibilityRecordParams represents parameters for recording an
// eligibility decision
type CreateEligibilityRecordParams struct {
	UserID            uuid.UUID
	DeviceFingerprint string
	IPAddress         string
	UserAgent         *string
	RiskScore         int
	IsEligible        bool
	CreditsGranted    bool
	CreditsAmount     int
	EvaluationReason  *string
}

const sqlCreateEligibilityRecord = `
INSERT INTO signup_eligibility (user_id, device_fingerprint, ip_address, user_agent, risk_score, is_eligible, credits_granted, credits_amount, evaluation_reason)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, user_id, device_fingerprint, ip_address, user_agent, risk_score, is_eligible, credits_granted, credits_amount, evaluation_reason, created_at
`

// CreateEligibilityRecord writes the immutable audit row for a user's
// starting-credit decision. The unique index on user_id rejects a second
// decision for an already-decided user with ErrAlreadyExists.
func (s *Store) CreateEligibilityRecord(ctx context.Context, params CreateEligibilityRecordParams) (EligibilityRecord, error) {
	var record EligibilityRecord
	err := s.db.GetContext(ctx, &record, sqlCreateEligibilityRecord,
		params.UserID,
		params.DeviceFingerprint,
		params.IPAddress,
		params.UserAgent,
		params.RiskScore,
		params.IsEligible,
		params.CreditsGranted,
		params.CreditsAmount,
		params.EvaluationReason)
	if err != nil {
		if isUniqueViolation(err) {
			return EligibilityRecord{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create eligibility record", err)
		return EligibilityRecord{}, fmt.Errorf("failed to create eligibility record: %w", err)
	}
	return record, nil
}

const sqlGetEligibilityRecordByUser = `
SELECT id, user_id, device_fingerprint, ip_address, user_agent, risk_score, is_eligible, credits_granted, credits_amount, evaluation_reason, created_at
FROM signup_eligibility
WHERE user_id = $1
`

// GetEligibilityRecordByUser retrieves the terminal eligibility decision for a user
func (s *Store) GetEligibilityRecordByUser(ctx context.Context, userID uuid.UUID) (EligibilityRecord, error) {
	var record EligibilityRecord
	err := s.db.GetContext(ctx, &record, sqlGetEligibilityRecordByUser, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EligibilityRecord{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get eligibility record", err)
		return EligibilityRecord{}, fmt.Errorf("failed to get eligibility record: %w", err)
	}
	return record, nil
}

const sqlCountEligibilityByFingerprint = `
SELECT COUNT(*)
FROM signup_eligibility
WHERE device_fingerprint = $1
`

// CountEligibilityByFingerprint counts prior eligibility evaluations recorded
// for a device fingerprint (for risk scoring)
func (s *Store) CountEligibilityByFingerprint(ctx context.Context, fingerprint string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountEligibilityByFingerprint, fingerprint)
	if err != nil {
		s.logger.Error(ctx, "failed to count eligibility by fingerprint", err)
		return 0, fmt.Errorf("failed to count eligibility by fingerprint: %w", err)
	}
	return count, nil
}

const sqlCountEligibilityByIPAddress = `
SELECT COUNT(*)
FROM signup_eligibility
WHERE ip_address = $1 AND created_at >= NOW() - INTERVAL '24 hours'
`

// CountEligibilityByIPAddress counts eligibility evaluations from an IP in the
// last 24 hours (for velocity scoring)
func (s *Store) CountEligibilityByIPAddress(ctx context.Context, ipAddress string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountEligibilityByIPAddress, ipAddress)
	if err != nil {
		s.logger.Error(ctx, "failed to count eligibility by ip address", err)
		return 0, fmt.Errorf("failed to count eligibility by ip address: %w", err)
	}
	return count, nil
}
