package processor

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"regexp"
	"time"

	"spritepay-server/internal/observability"
	"spritepay-server/internal/store"

	"github.com/google/uuid"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

const (
	codeLength  = 8
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// collision retries before giving up on code generation
	maxCodeAttempts = 5
)

var ErrCodeGeneration = errors.New("failed to generate a unique referral code")

// IsValidCode reports whether a code has the canonical shape
func IsValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// ExtractCode pulls a well-formed referral code from a landing URL's ref
// parameter. Anything malformed yields an empty string.
func ExtractCode(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	code := parsed.Query().Get("ref")
	if !IsValidCode(code) {
		return ""
	}
	return code
}

type ReferralProcessor struct {
	store      ReferralStore
	pending    PendingReferrals
	events     EventPublisher
	webAppURI  string
	signupPath string
	logger     *observability.Logger
	now        func() time.Time
}

func New(store ReferralStore, pending PendingReferrals, events EventPublisher, webAppURI, signupPath string, logger *observability.Logger) ReferralProcessor {
	return ReferralProcessor{
		store:      store,
		pending:    pending,
		events:     events,
		webAppURI:  webAppURI,
		signupPath: signupPath,
		logger:     logger,
		now:        time.Now,
	}
}

// CaptureFromURL stashes a referral code found in a landing URL against the
// device. Returns the captured code, empty when the URL carries none.
func (p *ReferralProcessor) CaptureFromURL(ctx context.Context, device, rawURL string) (string, error) {
	code := ExtractCode(rawURL)
	if code == "" {
		return "", nil
	}
	if err := p.pending.SetPendingReferral(ctx, device, code); err != nil {
		return "", fmt.Errorf("failed to stash referral code: %w", err)
	}
	p.logger.Info(ctx, "referral code captured",
		observability.Field{Key: "referral_code", Value: code})
	return code, nil
}

// ProcessResult is the outcome of pending-referral processing. A false
// Created with a nil error is a definitive no-op, not a failure.
type ProcessResult struct {
	Created        bool      `json:"created"`
	ReferralCode   string    `json:"referral_code,omitempty"`
	ReferrerUserID uuid.UUID `json:"referrer_user_id,omitempty"`
	Reason         string    `json:"reason,omitempty"`
}

// ProcessPending turns a stashed referral code into the relationship anchor
// for the authenticated user. The pending slot is cleared only once the
// outcome is definitive; on indeterminate store failures it survives for a
// retry on the next session.
func (p *ReferralProcessor) ProcessPending(ctx context.Context, userID uuid.UUID, device string) (ProcessResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	code, err := p.pending.PendingReferral(ctx, device)
	if err != nil {
		return ProcessResult{}, err
	}
	if code == "" {
		return ProcessResult{Reason: "no pending referral"}, nil
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "referral_code", Value: code})

	if !IsValidCode(code) {
		return p.abandon(ctx, device, "malformed referral code")
	}

	if _, err := p.store.GetSignupRewardByReferredUser(ctx, userID); err == nil {
		return p.abandon(ctx, device, "user already referred")
	} else if !errors.Is(err, store.ErrNotFound) {
		return ProcessResult{}, err
	}

	codeRow, err := p.store.GetReferralCodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return p.abandon(ctx, device, "referral code not found")
		}
		return ProcessResult{}, err
	}
	if !codeRow.IsActive {
		return p.abandon(ctx, device, "referral code inactive")
	}
	if codeRow.UserID == userID {
		return p.abandon(ctx, device, "self-referral")
	}

	profile, err := p.store.GetProfileByID(ctx, userID)
	if err != nil {
		return ProcessResult{}, err
	}

	_, err = p.store.CreateReferralReward(ctx, store.CreateReferralRewardParams{
		ReferrerUserID:       codeRow.UserID,
		ReferredUserID:       userID,
		ReferralCode:         code,
		MilestoneType:        store.MilestoneSignup,
		CreditsEarned:        0,
		ReferredUserName:     &profile.Name,
		MilestoneCompletedAt: p.now(),
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return p.abandon(ctx, device, "user already referred")
		}
		return ProcessResult{}, err
	}

	if err := p.store.SetReferredByCode(ctx, userID, code); err != nil {
		p.logger.Warn(ctx, "failed to stamp referral code on profile", err)
	}

	message := fmt.Sprintf("%s created an account using your invite link! You earn credits when they make their first withdrawal.", profile.Name)
	if _, err := p.store.CreateNotification(ctx, codeRow.UserID, message, store.NotificationTypeInfo); err != nil {
		p.logger.Warn(ctx, "failed to notify referrer", err)
	}

	if err := p.events.ReferralCreated(ctx, codeRow.UserID, userID, code); err != nil {
		p.logger.Warn(ctx, "failed to publish referral event", err)
	}

	if err := p.pending.ClearPendingReferral(ctx, device); err != nil {
		p.logger.Warn(ctx, "failed to clear pending referral", err)
	}

	p.logger.Info(ctx, "referral relationship created",
		observability.Field{Key: "referrer_user_id", Value: codeRow.UserID.String()})

	return ProcessResult{
		Created:        true,
		ReferralCode:   code,
		ReferrerUserID: codeRow.UserID,
	}, nil
}

// abandon clears the pending slot for a definitively unprocessable code
func (p *ReferralProcessor) abandon(ctx context.Context, device, reason string) (ProcessResult, error) {
	if err := p.pending.ClearPendingReferral(ctx, device); err != nil {
		p.logger.Warn(ctx, "failed to clear pending referral", err)
	}
	p.logger.Info(ctx, "pending referral abandoned",
		observability.Field{Key: "reason", Value: reason})
	return ProcessResult{Reason: reason}, nil
}

// GenerateCode returns the user's active referral code, minting one on first
// use. Collisions with existing codes are retried with fresh randomness.
func (p *ReferralProcessor) GenerateCode(ctx context.Context, userID uuid.UUID) (store.ReferralCode, error) {
	existing, err := p.store.GetActiveReferralCodeByUser(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return store.ReferralCode{}, err
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := randomCode()
		if err != nil {
			return store.ReferralCode{}, err
		}
		created, err := p.store.CreateReferralCode(ctx, userID, code)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return store.ReferralCode{}, err
		}
	}
	return store.ReferralCode{}, ErrCodeGeneration
}

// Link builds the shareable signup URL for a code
func (p *ReferralProcessor) Link(code string) string {
	return fmt.Sprintf("%s%s?ref=%s", p.webAppURI, p.signupPath, code)
}

// Stats aggregates a referrer's reward history
type Stats struct {
	TotalCreditsEarned  int                    `json:"total_credits_earned"`
	TotalReferredUsers  int                    `json:"total_referred_users"`
	CompletedMilestones int                    `json:"completed_milestones"`
	Rewards             []store.ReferralReward `json:"rewards"`
}

// GetStats returns a referrer's aggregate statistics and reward rows
func (p *ReferralProcessor) GetStats(ctx context.Context, userID uuid.UUID) (Stats, error) {
	aggregates, err := p.store.GetReferralStatsByReferrer(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	rewards, err := p.store.GetRewardsByReferrer(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		TotalCreditsEarned:  aggregates.TotalCreditsEarned,
		TotalReferredUsers:  aggregates.TotalReferredUsers,
		CompletedMilestones: aggregates.CompletedMilestones,
		Rewards:             rewards,
	}, nil
}

// notificationsLimit caps how many notifications one fetch returns
const notificationsLimit = 20

// GetNotifications returns the user's most recent notifications, newest first
func (p *ReferralProcessor) GetNotifications(ctx context.Context, userID uuid.UUID) ([]store.Notification, error) {
	notifications, err := p.store.GetNotificationsByUser(ctx, userID, notificationsLimit)
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func randomCode() (string, error) {
	code := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read randomness: %w", err)
		}
		code[i] = codeCharset[n.Int64()]
	}
	return string(code), nil
}
