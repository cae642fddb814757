package processor

import (
	"context"
	"time"

	"spritepay-server/internal/store"

	"github.com/google/uuid"
)

// RewardsStore defines the database operations required by the engine
type RewardsStore interface {
	GetSignupRewardByReferredUser(ctx context.Context, referredUserID uuid.UUID) (store.ReferralReward, error)
	GetRewardByMilestone(ctx context.Context, referrerUserID, referredUserID uuid.UUID, milestoneType string) (store.ReferralReward, error)
	CreateReferralReward(ctx context.Context, params store.CreateReferralRewardParams) (store.ReferralReward, error)
	CountApprovedWithdrawalsBefore(ctx context.Context, userID uuid.UUID, before time.Time) (int, error)
	IncrementCredits(ctx context.Context, userID uuid.UUID, amount int) (store.Profile, error)
	CreateTransaction(ctx context.Context, params store.CreateTransactionParams) (store.Transaction, error)
	CreateNotification(ctx context.Context, userID uuid.UUID, message, notificationType string) (store.Notification, error)
}

// EventPublisher defines the event fan-out required by the engine
type EventPublisher interface {
	RewardIssued(ctx context.Context, referrerUserID, referredUserID uuid.UUID, milestoneType string, credits int) error
}
