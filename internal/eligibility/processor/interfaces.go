package processor

import (
	"context"
	"spritepay-server/internal/store"

	"github.com/google/uuid"
)

// EligibilityStore defines the database operations required by the evaluator
type EligibilityStore interface {
	CreateEligibilityRecord(ctx context.Context, params store.CreateEligibilityRecordParams) (store.EligibilityRecord, error)
	GetEligibilityRecordByUser(ctx context.Context, userID uuid.UUID) (store.EligibilityRecord, error)
	CountEligibilityByFingerprint(ctx context.Context, fingerprint string) (int, error)
	CountEligibilityByIPAddress(ctx context.Context, ipAddress string) (int, error)
	CountDevicesByIPAddress(ctx context.Context, ipAddress string) (int, error)
	UpsertDeviceSession(ctx context.Context, params store.UpsertDeviceSessionParams) (store.DeviceSession, error)
	MarkDeviceCreditsClaimed(ctx context.Context, fingerprint string) error
	GetProfileByID(ctx context.Context, userID uuid.UUID) (store.Profile, error)
	IncrementCredits(ctx context.Context, userID uuid.UUID, amount int) (store.Profile, error)
	CreateTransaction(ctx context.Context, params store.CreateTransactionParams) (store.Transaction, error)
}

// ClaimTracker defines the device claim-state operations required by the
// evaluator
type ClaimTracker interface {
	Initialize(ctx context.Context, device, deviceID, browserHash string) (bool, error)
	HasClaimed(ctx context.Context, device string) bool
	MarkClaimed(ctx context.Context, device string) error
	DetectAbuse(ctx context.Context, device string) (bool, []string)
}

// EventPublisher defines the event fan-out required by the evaluator
type EventPublisher interface {
	EligibilityDecided(ctx context.Context, userID uuid.UUID, eligible bool, riskScore int, reason string) error
}
