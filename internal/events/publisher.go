// Package events fans domain events out to Kafka for downstream consumers
// (analytics, fraud review, notification delivery).
package events

import (
	"context"
	"time"

	"spritepay-server/internal/clients/kafka"
	"spritepay-server/internal/observability"

	"github.com/google/uuid"
)

const (
	TypeEligibilityDecided = "eligibility.decided"
	TypeReferralCreated    = "referral.created"
	TypeRewardIssued       = "reward.issued"
	TypeWithdrawalApproved = "withdrawal.approved"
)

// Publisher publishes domain events. A nil producer turns publishing into a
// no-op so local setups can run without Kafka.
type Publisher struct {
	producer *kafka.Producer
	logger   *observability.Logger
}

// NewPublisher creates a domain event publisher
func NewPublisher(producer *kafka.Producer, logger *observability.Logger) *Publisher {
	return &Publisher{producer: producer, logger: logger}
}

func (p *Publisher) publish(ctx context.Context, eventType string, userID uuid.UUID, data map[string]interface{}) error {
	if p.producer == nil {
		p.logger.Debug(ctx, "event publishing disabled, dropping "+eventType)
		return nil
	}

	return p.producer.PublishEvent(ctx, kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		UserID:    userID.String(),
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// EligibilityDecided records the outcome of a starting-credit evaluation
func (p *Publisher) EligibilityDecided(ctx context.Context, userID uuid.UUID, eligible bool, riskScore int, reason string) error {
	return p.publish(ctx, TypeEligibilityDecided, userID, map[string]interface{}{
		"eligible":   eligible,
		"risk_score": riskScore,
		"reason":     reason,
	})
}

// ReferralCreated records a new referral relationship anchor
func (p *Publisher) ReferralCreated(ctx context.Context, referrerUserID, referredUserID uuid.UUID, code string) error {
	return p.publish(ctx, TypeReferralCreated, referrerUserID, map[string]interface{}{
		"referred_user_id": referredUserID.String(),
		"referral_code":    code,
	})
}

// RewardIssued records a milestone reward credited to a referrer
func (p *Publisher) RewardIssued(ctx context.Context, referrerUserID, referredUserID uuid.UUID, milestoneType string, credits int) error {
	return p.publish(ctx, TypeRewardIssued, referrerUserID, map[string]interface{}{
		"referred_user_id": referredUserID.String(),
		"milestone_type":   milestoneType,
		"credits":          credits,
	})
}

// WithdrawalApproved records an approved payout
func (p *Publisher) WithdrawalApproved(ctx context.Context, userID, requestID uuid.UUID, amount int) error {
	return p.publish(ctx, TypeWithdrawalApproved, userID, map[string]interface{}{
		"request_id": requestID.String(),
		"amount":     amount,
	})
}
