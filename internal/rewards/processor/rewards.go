package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spritepay-server/internal/observability"
	"spritepay-server/internal/store"

	"github.com/google/uuid"
)

// Withdrawal-amount milestones, checked independently. A single large
// withdrawal may complete several at once.
var amountMilestones = []struct {
	milestoneType string
	threshold     int
}{
	{store.MilestoneWithdrawal50, 50},
	{store.MilestoneWithdrawal250, 250},
	{store.MilestoneWithdrawal500, 500},
}

type Config struct {
	// credits paid to the referrer per completed withdrawal milestone
	MilestoneCredits int
}

// RewardEngine issues referrer rewards when a referred user's withdrawal
// completes a milestone. The signup anchor row is the gate: no anchor, no
// referrer, nothing to do.
type RewardEngine struct {
	store  RewardsStore
	events EventPublisher
	config Config
	logger *observability.Logger
}

func New(store RewardsStore, events EventPublisher, config Config, logger *observability.Logger) RewardEngine {
	return RewardEngine{
		store:  store,
		events: events,
		config: config,
		logger: logger,
	}
}

// Result reports which milestones a withdrawal completed. Empty Issued with
// a nil error means no milestone was due or every due milestone had already
// been rewarded.
type Result struct {
	Issued         []string `json:"issued_milestones"`
	CreditsAwarded int      `json:"credits_awarded"`
}

// OnWithdrawalApproved evaluates every milestone an approved withdrawal may
// have completed and issues the outstanding ones. The unique index on
// (referrer, referred, milestone_type) is the real replay guard; the
// existence check here only saves a round trip.
func (e *RewardEngine) OnWithdrawalApproved(ctx context.Context, referredUserID uuid.UUID, amount int, processedAt time.Time) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referred_user_id", Value: referredUserID.String()},
		observability.Field{Key: "withdrawal_amount", Value: amount},
	)

	anchor, err := e.store.GetSignupRewardByReferredUser(ctx, referredUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Result{}, nil
		}
		return Result{}, err
	}

	due, err := e.dueMilestones(ctx, referredUserID, amount, processedAt)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for _, milestoneType := range due {
		issued, err := e.issue(ctx, anchor, milestoneType, processedAt)
		if err != nil {
			return result, err
		}
		if issued {
			result.Issued = append(result.Issued, milestoneType)
			result.CreditsAwarded += e.config.MilestoneCredits
		}
	}
	return result, nil
}

func (e *RewardEngine) dueMilestones(ctx context.Context, referredUserID uuid.UUID, amount int, processedAt time.Time) ([]string, error) {
	var due []string

	priorApprovals, err := e.store.CountApprovedWithdrawalsBefore(ctx, referredUserID, processedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to count prior withdrawals: %w", err)
	}
	if priorApprovals == 0 {
		due = append(due, store.MilestoneFirstWithdrawal)
	}

	for _, m := range amountMilestones {
		if amount >= m.threshold {
			due = append(due, m.milestoneType)
		}
	}
	return due, nil
}

// issue records one milestone reward and credits the referrer. Returns false
// when the milestone was already rewarded.
func (e *RewardEngine) issue(ctx context.Context, anchor store.ReferralReward, milestoneType string, processedAt time.Time) (bool, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "milestone_type", Value: milestoneType})

	if _, err := e.store.GetRewardByMilestone(ctx, anchor.ReferrerUserID, anchor.ReferredUserID, milestoneType); err == nil {
		return false, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	_, err := e.store.CreateReferralReward(ctx, store.CreateReferralRewardParams{
		ReferrerUserID:       anchor.ReferrerUserID,
		ReferredUserID:       anchor.ReferredUserID,
		ReferralCode:         anchor.ReferralCode,
		MilestoneType:        milestoneType,
		CreditsEarned:        e.config.MilestoneCredits,
		ReferredUserName:     anchor.ReferredUserName,
		MilestoneCompletedAt: processedAt,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			e.logger.Info(ctx, "milestone already rewarded, skipping")
			return false, nil
		}
		return false, err
	}

	if _, err := e.store.IncrementCredits(ctx, anchor.ReferrerUserID, e.config.MilestoneCredits); err != nil {
		return false, fmt.Errorf("failed to credit referrer: %w", err)
	}

	if _, err := e.store.CreateTransaction(ctx, store.CreateTransactionParams{
		UserID:      anchor.ReferrerUserID,
		Type:        store.TransactionTypeReferralReward,
		Amount:      e.config.MilestoneCredits,
		Description: fmt.Sprintf("referral milestone %s", milestoneType),
	}); err != nil {
		e.logger.Warn(ctx, "failed to record reward transaction", err)
	}

	referredName := "Your referral"
	if anchor.ReferredUserName != nil && *anchor.ReferredUserName != "" {
		referredName = *anchor.ReferredUserName
	}
	message := fmt.Sprintf("You earned %d credits! %s completed a withdrawal milestone.", e.config.MilestoneCredits, referredName)
	if _, err := e.store.CreateNotification(ctx, anchor.ReferrerUserID, message, store.NotificationTypeSuccess); err != nil {
		e.logger.Warn(ctx, "failed to notify referrer", err)
	}

	if err := e.events.RewardIssued(ctx, anchor.ReferrerUserID, anchor.ReferredUserID, milestoneType, e.config.MilestoneCredits); err != nil {
		e.logger.Warn(ctx, "failed to publish reward event", err)
	}

	e.logger.Info(ctx, "milestone reward issued",
		observability.Field{Key: "referrer_user_id", Value: anchor.ReferrerUserID.String()},
		observability.Field{Key: "credits", Value: e.config.MilestoneCredits})

	return true, nil
}
