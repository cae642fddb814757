package processor

import (
	"context"
	"spritepay-server/internal/store"

	"github.com/google/uuid"
)

// ReferralStore defines the database operations required by the processor
type ReferralStore interface {
	CreateReferralCode(ctx context.Context, userID uuid.UUID, code string) (store.ReferralCode, error)
	GetActiveReferralCodeByUser(ctx context.Context, userID uuid.UUID) (store.ReferralCode, error)
	GetReferralCodeByCode(ctx context.Context, code string) (store.ReferralCode, error)
	CreateReferralReward(ctx context.Context, params store.CreateReferralRewardParams) (store.ReferralReward, error)
	GetSignupRewardByReferredUser(ctx context.Context, referredUserID uuid.UUID) (store.ReferralReward, error)
	GetRewardsByReferrer(ctx context.Context, referrerUserID uuid.UUID) ([]store.ReferralReward, error)
	GetReferralStatsByReferrer(ctx context.Context, referrerUserID uuid.UUID) (store.ReferralStats, error)
	GetProfileByID(ctx context.Context, userID uuid.UUID) (store.Profile, error)
	SetReferredByCode(ctx context.Context, userID uuid.UUID, code string) error
	CreateNotification(ctx context.Context, userID uuid.UUID, message, notificationType string) (store.Notification, error)
	GetNotificationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]store.Notification, error)
}

// PendingReferrals defines the device-keyed pending-code slot
type PendingReferrals interface {
	SetPendingReferral(ctx context.Context, device, code string) error
	PendingReferral(ctx context.Context, device string) (string, error)
	ClearPendingReferral(ctx context.Context, device string) error
}

// EventPublisher defines the event fan-out required by the processor
type EventPublisher interface {
	ReferralCreated(ctx context.Context, referrerUserID, referredUserID uuid.UUID, code string) error
}
