package processor

import (
	"context"
	"time"

	rewards "spritepay-server/internal/rewards/processor"
	"spritepay-server/internal/store"

	"github.com/google/uuid"
)

// WithdrawalStore defines the database operations required by the processor
type WithdrawalStore interface {
	GetProfileByID(ctx context.Context, userID uuid.UUID) (store.Profile, error)
	IncrementCredits(ctx context.Context, userID uuid.UUID, amount int) (store.Profile, error)
	CreateWithdrawRequest(ctx context.Context, params store.CreateWithdrawRequestParams) (store.WithdrawRequest, error)
	GetWithdrawRequestsByUser(ctx context.Context, userID uuid.UUID) ([]store.WithdrawRequest, error)
	GetWithdrawRequestByID(ctx context.Context, requestID uuid.UUID) (store.WithdrawRequest, error)
	ApproveWithdrawRequest(ctx context.Context, requestID uuid.UUID) (store.WithdrawRequest, error)
	CreateTransaction(ctx context.Context, params store.CreateTransactionParams) (store.Transaction, error)
	GetTransactionsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]store.Transaction, error)
}

// RewardEngine is invoked after an approval lands
type RewardEngine interface {
	OnWithdrawalApproved(ctx context.Context, referredUserID uuid.UUID, amount int, processedAt time.Time) (rewards.Result, error)
}

// RateLimiter caps submission attempts per identity
type RateLimiter interface {
	Allow(key string) bool
}

// EventPublisher defines the event fan-out required by the processor
type EventPublisher interface {
	WithdrawalApproved(ctx context.Context, userID, requestID uuid.UUID, amount int) error
}
