package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateWithdrawRequestParams represents parameters for submitting a withdrawal
type CreateWithdrawRequestParams struct {
	UserID uuid.UUID
	Amount int
	Points int
	PixKey string
}

const sqlCreateWithdrawRequest = `
INSERT INTO withdraw_requests (user_id, amount, points, pix_key)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, amount, points, pix_key, status, processed_at, created_at
`

// CreateWithdrawRequest creates a pending withdrawal request
func (s *Store) CreateWithdrawRequest(ctx context.Context, params CreateWithdrawRequestParams) (WithdrawRequest, error) {
	var request WithdrawRequest
	err := s.db.GetContext(ctx, &request, sqlCreateWithdrawRequest,
		params.UserID,
		params.Amount,
		params.Points,
		params.PixKey)
	if err != nil {
		s.logger.Error(ctx, "failed to create withdraw request", err)
		return WithdrawRequest{}, fmt.Errorf("failed to create withdraw request: %w", err)
	}
	return request, nil
}

const sqlGetWithdrawRequestByID = `
SELECT id, user_id, amount, points, pix_key, status, processed_at, created_at
FROM withdraw_requests
WHERE id = $1
`

// GetWithdrawRequestByID retrieves a withdrawal request by ID
func (s *Store) GetWithdrawRequestByID(ctx context.Context, requestID uuid.UUID) (WithdrawRequest, error) {
	var request WithdrawRequest
	err := s.db.GetContext(ctx, &request, sqlGetWithdrawRequestByID, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WithdrawRequest{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get withdraw request", err)
		return WithdrawRequest{}, fmt.Errorf("failed to get withdraw request: %w", err)
	}
	return request, nil
}

const sqlGetWithdrawRequestsByUser = `
SELECT id, user_id, amount, points, pix_key, status, processed_at, created_at
FROM withdraw_requests
WHERE user_id = $1
ORDER BY created_at DESC
`

// GetWithdrawRequestsByUser retrieves all withdrawal requests for a user
func (s *Store) GetWithdrawRequestsByUser(ctx context.Context, userID uuid.UUID) ([]WithdrawRequest, error) {
	var requests []WithdrawRequest
	err := s.db.SelectContext(ctx, &requests, sqlGetWithdrawRequestsByUser, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get withdraw requests by user", err)
		return nil, fmt.Errorf("failed to get withdraw requests by user: %w", err)
	}
	return requests, nil
}

const sqlApproveWithdrawRequest = `
UPDATE withdraw_requests
SET status = 'approved', processed_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
RETURNING id, user_id, amount, points, pix_key, status, processed_at, created_at
`

// ApproveWithdrawRequest transitions a pending request to approved. The status
// guard makes approval idempotent: a second approval returns ErrNotFound.
func (s *Store) ApproveWithdrawRequest(ctx context.Context, requestID uuid.UUID) (WithdrawRequest, error) {
	var request WithdrawRequest
	err := s.db.GetContext(ctx, &request, sqlApproveWithdrawRequest, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WithdrawRequest{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to approve withdraw request", err)
		return WithdrawRequest{}, fmt.Errorf("failed to approve withdraw request: %w", err)
	}
	return request, nil
}

const sqlCountApprovedWithdrawalsBefore = `
SELECT COUNT(*)
FROM withdraw_requests
WHERE user_id = $1 AND status = 'approved' AND processed_at < $2
`

// CountApprovedWithdrawalsBefore counts a user's approved withdrawals processed
// strictly before the given time. Zero means the withdrawal at that time was
// the user's first.
func (s *Store) CountApprovedWithdrawalsBefore(ctx context.Context, userID uuid.UUID, before time.Time) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountApprovedWithdrawalsBefore, userID, before)
	if err != nil {
		s.logger.Error(ctx, "failed to count approved withdrawals", err)
		return 0, fmt.Errorf("failed to count approved withdrawals: %w", err)
	}
	return count, nil
}
