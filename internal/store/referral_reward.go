package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateReferralRewardParams represents parameters for creating a reward row
type CreateReferralRewardParams struct {
	ReferrerUserID       uuid.UUID
	ReferredUserID       uuid.UUID
	ReferralCode         string
	MilestoneType        string
	CreditsEarned        int
	ReferredUserName     *string
	MilestoneCompletedAt time.Time
}

const sqlCreateReferralReward = `
INSERT INTO referral_rewards (referrer_user_id, referred_user_id, referral_code, milestone_type, credits_earned, referred_user_name, milestone_completed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, referrer_user_id, referred_user_id, referral_code, milestone_type, credits_earned, referred_user_name, milestone_completed_at, created_at
`

// CreateReferralReward inserts one milestone reward row. The unique index on
// (referrer_user_id, referred_user_id, milestone_type) makes concurrent
// duplicate writes fail with ErrAlreadyExists; for the signup milestone the
// partial unique index on (referred_user_id) where milestone_type = 'signup'
// additionally guarantees a user is referred at most once, across referrers.
func (s *Store) CreateReferralReward(ctx context.Context, params CreateReferralRewardParams) (ReferralReward, error) {
	var reward ReferralReward
	err := s.db.GetContext(ctx, &reward, sqlCreateReferralReward,
		params.ReferrerUserID,
		params.ReferredUserID,
		params.ReferralCode,
		params.MilestoneType,
		params.CreditsEarned,
		params.ReferredUserName,
		params.MilestoneCompletedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ReferralReward{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create referral reward", err)
		return ReferralReward{}, fmt.Errorf("failed to create referral reward: %w", err)
	}
	return reward, nil
}

const sqlGetSignupRewardByReferredUser = `
SELECT id, referrer_user_id, referred_user_id, referral_code, milestone_type, credits_earned, referred_user_name, milestone_completed_at, created_at
FROM referral_rewards
WHERE referred_user_id = $1 AND milestone_type = 'signup'
`

// GetSignupRewardByReferredUser retrieves the anchor row establishing a user's
// referral relationship
func (s *Store) GetSignupRewardByReferredUser(ctx context.Context, referredUserID uuid.UUID) (ReferralReward, error) {
	var reward ReferralReward
	err := s.db.GetContext(ctx, &reward, sqlGetSignupRewardByReferredUser, referredUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralReward{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get signup reward", err)
		return ReferralReward{}, fmt.Errorf("failed to get signup reward: %w", err)
	}
	return reward, nil
}

const sqlGetRewardByMilestone = `
SELECT id, referrer_user_id, referred_user_id, referral_code, milestone_type, credits_earned, referred_user_name, milestone_completed_at, created_at
FROM referral_rewards
WHERE referrer_user_id = $1 AND referred_user_id = $2 AND milestone_type = $3
`

// GetRewardByMilestone retrieves a reward row for a specific milestone of a
// referrer/referred pair
func (s *Store) GetRewardByMilestone(ctx context.Context, referrerUserID, referredUserID uuid.UUID, milestoneType string) (ReferralReward, error) {
	var reward ReferralReward
	err := s.db.GetContext(ctx, &reward, sqlGetRewardByMilestone, referrerUserID, referredUserID, milestoneType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralReward{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get reward by milestone", err)
		return ReferralReward{}, fmt.Errorf("failed to get reward by milestone: %w", err)
	}
	return reward, nil
}

const sqlGetRewardsByReferrer = `
SELECT id, referrer_user_id, referred_user_id, referral_code, milestone_type, credits_earned, referred_user_name, milestone_completed_at, created_at
FROM referral_rewards
WHERE referrer_user_id = $1
ORDER BY created_at DESC
`

// GetRewardsByReferrer retrieves all reward rows earned by a referrer
func (s *Store) GetRewardsByReferrer(ctx context.Context, referrerUserID uuid.UUID) ([]ReferralReward, error) {
	var rewards []ReferralReward
	err := s.db.SelectContext(ctx, &rewards, sqlGetRewardsByReferrer, referrerUserID)
	if err != nil {
		s.logger.Error(ctx, "failed to get rewards by referrer", err)
		return nil, fmt.Errorf("failed to get rewards by referrer: %w", err)
	}
	return rewards, nil
}

const sqlGetReferralStatsByReferrer = `
SELECT
    COALESCE(SUM(credits_earned), 0) AS total_credits_earned,
    COUNT(DISTINCT referred_user_id)  AS total_referred_users,
    COUNT(*) FILTER (WHERE milestone_type <> 'signup') AS completed_milestones
FROM referral_rewards
WHERE referrer_user_id = $1
`

// ReferralStats aggregates a referrer's reward ledger
type ReferralStats struct {
	TotalCreditsEarned  int `db:"total_credits_earned" json:"total_credits_earned"`
	TotalReferredUsers  int `db:"total_referred_users" json:"total_referred_users"`
	CompletedMilestones int `db:"completed_milestones" json:"completed_milestones"`
}

// GetReferralStatsByReferrer computes aggregate referral statistics
func (s *Store) GetReferralStatsByReferrer(ctx context.Context, referrerUserID uuid.UUID) (ReferralStats, error) {
	var stats ReferralStats
	err := s.db.GetContext(ctx, &stats, sqlGetReferralStatsByReferrer, referrerUserID)
	if err != nil {
		s.logger.Error(ctx, "failed to get referral stats", err)
		return ReferralStats{}, fmt.Errorf("failed to get referral stats: %w", err)
	}
	return stats, nil
}
