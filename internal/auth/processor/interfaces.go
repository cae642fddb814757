package processor

import (
	"context"
	"spritepay-server/internal/store"

	"github.com/google/uuid"
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	CreateProfile(ctx context.Context, params store.CreateProfileParams) (store.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (store.Profile, error)
	GetProfileByID(ctx context.Context, userID uuid.UUID) (store.Profile, error)
}

// ReferralCapture defines the pending-referral stash required by AuthProcessor
type ReferralCapture interface {
	SetPendingReferral(ctx context.Context, device, code string) error
}
