package store

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a user account with its credit balance
type Profile struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	Name           string    `db:"name" json:"name"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	Credits        int       `db:"credits" json:"credits"`
	ReferredByCode *string   `db:"referred_by_code" json:"referred_by_code,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// ReferralCode represents a user's shareable invite code
type ReferralCode struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Code      string    `db:"code" json:"code"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ReferralReward is one milestone event on a referrer/referred relationship.
// The signup-milestone row anchors the relationship; its absence means no
// relationship exists.
type ReferralReward struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	ReferrerUserID       uuid.UUID `db:"referrer_user_id" json:"referrer_user_id"`
	ReferredUserID       uuid.UUID `db:"referred_user_id" json:"referred_user_id"`
	ReferralCode         string    `db:"referral_code" json:"referral_code"`
	MilestoneType        string    `db:"milestone_type" json:"milestone_type"`
	CreditsEarned        int       `db:"credits_earned" json:"credits_earned"`
	ReferredUserName     *string   `db:"referred_user_name" json:"referred_user_name,omitempty"`
	MilestoneCompletedAt time.Time `db:"milestone_completed_at" json:"milestone_completed_at"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
}

// EligibilityRecord is the immutable audit row for one account's
// starting-credit decision
type EligibilityRecord struct {
	ID                uuid.UUID `db:"id" json:"id"`
	UserID            uuid.UUID `db:"user_id" json:"user_id"`
	DeviceFingerprint string    `db:"device_fingerprint" json:"device_fingerprint"`
	IPAddress         string    `db:"ip_address" json:"ip_address"`
	UserAgent         *string   `db:"user_agent" json:"user_agent,omitempty"`
	RiskScore         int       `db:"risk_score" json:"risk_score"`
	IsEligible        bool      `db:"is_eligible" json:"is_eligible"`
	CreditsGranted    bool      `db:"credits_granted" json:"credits_granted"`
	CreditsAmount     int       `db:"credits_amount" json:"credits_amount"`
	EvaluationReason  *string   `db:"evaluation_reason" json:"evaluation_reason,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// DeviceSession is the authority-side record of a device fingerprint
type DeviceSession struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	DeviceFingerprint  string    `db:"device_fingerprint" json:"device_fingerprint"`
	IPAddress          string    `db:"ip_address" json:"ip_address"`
	UserAgent          *string   `db:"user_agent" json:"user_agent,omitempty"`
	FirstSeen          time.Time `db:"first_seen" json:"first_seen"`
	LastSeen           time.Time `db:"last_seen" json:"last_seen"`
	FreeCreditsClaimed bool      `db:"free_credits_claimed" json:"free_credits_claimed"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// WithdrawRequest represents a payout request
type WithdrawRequest struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	Amount      int        `db:"amount" json:"amount"`
	Points      int        `db:"points" json:"points"`
	PixKey      string     `db:"pix_key" json:"-"`
	Status      string     `db:"status" json:"status"`
	ProcessedAt *time.Time `db:"processed_at" json:"processed_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// Notification is a message queued for a user
type Notification struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Message   string    `db:"message" json:"message"`
	Type      string    `db:"type" json:"type"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Transaction is one credit-ledger entry
type Transaction struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	Type        string    `db:"type" json:"type"`
	Amount      int       `db:"amount" json:"amount"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
