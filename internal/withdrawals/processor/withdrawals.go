package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spritepay-server/internal/observability"
	rewards "spritepay-server/internal/rewards/processor"
	"spritepay-server/internal/store"
	"spritepay-server/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentKey = errors.New("payment key format not recognized")
	ErrRateLimited       = errors.New("too many withdrawal attempts")
)

type WithdrawalProcessor struct {
	store   WithdrawalStore
	rewards RewardEngine
	limiter RateLimiter
	events  EventPublisher
	logger  *observability.Logger
	now     func() time.Time
}

func New(store WithdrawalStore, rewards RewardEngine, limiter RateLimiter, events EventPublisher, logger *observability.Logger) WithdrawalProcessor {
	return WithdrawalProcessor{
		store:   store,
		rewards: rewards,
		limiter: limiter,
		events:  events,
		logger:  logger,
		now:     time.Now,
	}
}

// Submit validates and records a payout request, reserving the points from
// the caller's balance. Validation failures never reach the store.
func (p *WithdrawalProcessor) Submit(ctx context.Context, userID uuid.UUID, amount int, pixKey string) (store.WithdrawRequest, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	pixKey = validation.SanitizeText(pixKey)
	keyType, ok := validation.ValidatePaymentKey(pixKey)
	if !ok {
		return store.WithdrawRequest{}, ErrInvalidPaymentKey
	}

	if !p.limiter.Allow(userID.String()) {
		p.logger.Info(ctx, "withdrawal submission rate limited")
		return store.WithdrawRequest{}, ErrRateLimited
	}

	profile, err := p.store.GetProfileByID(ctx, userID)
	if err != nil {
		return store.WithdrawRequest{}, err
	}
	if err := validation.ValidateAmount(amount, profile.Credits); err != nil {
		return store.WithdrawRequest{}, err
	}

	if _, err := p.store.IncrementCredits(ctx, userID, -amount); err != nil {
		return store.WithdrawRequest{}, fmt.Errorf("failed to reserve points: %w", err)
	}

	request, err := p.store.CreateWithdrawRequest(ctx, store.CreateWithdrawRequestParams{
		UserID: userID,
		Amount: amount,
		Points: amount,
		PixKey: pixKey,
	})
	if err != nil {
		// release the reservation so the balance stays consistent
		if _, restoreErr := p.store.IncrementCredits(ctx, userID, amount); restoreErr != nil {
			p.logger.Error(ctx, "failed to restore reserved points", restoreErr)
		}
		return store.WithdrawRequest{}, err
	}

	if _, err := p.store.CreateTransaction(ctx, store.CreateTransactionParams{
		UserID:      userID,
		Type:        store.TransactionTypeWithdrawal,
		Amount:      -amount,
		Description: "withdrawal request submitted",
	}); err != nil {
		p.logger.Warn(ctx, "failed to record withdrawal transaction", err)
	}

	p.logger.Info(ctx, "withdrawal request submitted",
		observability.Field{Key: "request_id", Value: request.ID.String()},
		observability.Field{Key: "amount", Value: amount},
		observability.Field{Key: "key_type", Value: string(keyType)})

	return request, nil
}

// ApprovalResult is an approval outcome with any referral milestones the
// withdrawal completed
type ApprovalResult struct {
	Request store.WithdrawRequest `json:"request"`
	Rewards rewards.Result        `json:"rewards"`
}

// Approve transitions a pending request to approved and runs the referral
// reward engine against the referred user's milestone ledger. A request that
// is missing or already processed yields store.ErrNotFound.
func (p *WithdrawalProcessor) Approve(ctx context.Context, requestID uuid.UUID) (ApprovalResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "request_id", Value: requestID.String()})

	request, err := p.store.ApproveWithdrawRequest(ctx, requestID)
	if err != nil {
		return ApprovalResult{}, err
	}

	processedAt := p.now()
	if request.ProcessedAt != nil {
		processedAt = *request.ProcessedAt
	}

	result := ApprovalResult{Request: request}
	rewardResult, err := p.rewards.OnWithdrawalApproved(ctx, request.UserID, request.Amount, processedAt)
	if err != nil {
		// approval already landed; milestones are replay-safe on the next
		// approved withdrawal but this one's amount milestones are lost
		p.logger.Error(ctx, "reward engine failed after approval", err)
	} else {
		result.Rewards = rewardResult
	}

	if err := p.events.WithdrawalApproved(ctx, request.UserID, request.ID, request.Amount); err != nil {
		p.logger.Warn(ctx, "failed to publish withdrawal event", err)
	}

	p.logger.Info(ctx, "withdrawal approved",
		observability.Field{Key: "user_id", Value: request.UserID.String()},
		observability.Field{Key: "amount", Value: request.Amount})

	return result, nil
}

// List returns the user's withdrawal history, newest first
func (p *WithdrawalProcessor) List(ctx context.Context, userID uuid.UUID) ([]store.WithdrawRequest, error) {
	return p.store.GetWithdrawRequestsByUser(ctx, userID)
}

// Get returns one of the user's withdrawal requests. Requests belonging to
// other users read as store.ErrNotFound.
func (p *WithdrawalProcessor) Get(ctx context.Context, userID, requestID uuid.UUID) (store.WithdrawRequest, error) {
	request, err := p.store.GetWithdrawRequestByID(ctx, requestID)
	if err != nil {
		return store.WithdrawRequest{}, err
	}
	if request.UserID != userID {
		return store.WithdrawRequest{}, store.ErrNotFound
	}
	return request, nil
}

// transactionsLimit caps how many ledger entries one fetch returns
const transactionsLimit = 50

// Transactions returns the user's most recent credit-ledger entries
func (p *WithdrawalProcessor) Transactions(ctx context.Context, userID uuid.UUID) ([]store.Transaction, error) {
	return p.store.GetTransactionsByUser(ctx, userID, transactionsLimit)
}
