package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"spritepay-server/internal/claims"
	"spritepay-server/internal/observability"
	"spritepay-server/internal/store"

	"github.com/google/uuid"
)

// Status is the terminal state of an eligibility evaluation
type Status string

const (
	StatusGranted        Status = "granted"
	StatusDenied         Status = "denied"
	StatusAlreadyClaimed Status = "already_claimed"
)

var ErrInvalidFingerprint = errors.New("device fingerprint missing or too short")

// Fingerprints shorter than this are rejected before any evaluation
const minFingerprintLength = 16

type EligibilityProcessor struct {
	store          EligibilityStore
	tracker        ClaimTracker
	events         EventPublisher
	adminEmail     string
	creditsAmount  int
	denyThreshold  int
	logger         *observability.Logger
	now            func() time.Time
}

type Config struct {
	AdminEmail        string
	FreeCreditsAmount int
	DenyThreshold     int
}

func New(store EligibilityStore, tracker ClaimTracker, events EventPublisher, cfg Config, logger *observability.Logger) EligibilityProcessor {
	return EligibilityProcessor{
		store:         store,
		tracker:       tracker,
		events:        events,
		adminEmail:    cfg.AdminEmail,
		creditsAmount: cfg.FreeCreditsAmount,
		denyThreshold: cfg.DenyThreshold,
		logger:        logger,
		now:           time.Now,
	}
}

// EvaluationInput carries the identity and device signals for one evaluation
type EvaluationInput struct {
	UserID            uuid.UUID
	DeviceFingerprint string
	BrowserHash       string
	IPAddress         string
	UserAgent         string
}

// Result is the outcome of an evaluation. Reasons accompany denials; a grant
// carries the credited amount.
type Result struct {
	Status         Status   `json:"status"`
	RiskScore      int      `json:"risk_score"`
	Reasons        []string `json:"reasons,omitempty"`
	CreditsGranted int      `json:"credits_granted"`
	AdminOverride  bool     `json:"admin_override,omitempty"`
}

// Evaluate decides whether a user receives the starting credit grant. Each
// user is decided exactly once: the audit row's uniqueness turns a concurrent
// second evaluation into a replay of the first decision.
func (p *EligibilityProcessor) Evaluate(ctx context.Context, input EvaluationInput) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: input.UserID.String()},
		observability.Field{Key: "device_fingerprint", Value: input.DeviceFingerprint},
	)

	if len(input.DeviceFingerprint) < minFingerprintLength {
		return Result{}, ErrInvalidFingerprint
	}

	if existing, err := p.store.GetEligibilityRecordByUser(ctx, input.UserID); err == nil {
		return resultFromRecord(existing), nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return Result{}, err
	}

	knownBefore, err := p.tracker.Initialize(ctx, input.DeviceFingerprint, input.DeviceFingerprint, input.BrowserHash)
	if err != nil {
		p.logger.Warn(ctx, "failed to initialize claim tracker", err)
	}

	suspicious, abuseReasons := p.tracker.DetectAbuse(ctx, input.DeviceFingerprint)
	if !knownBefore {
		// The first-visit marker was created by this very call, so its age
		// says nothing about the device yet.
		abuseReasons = withoutReason(abuseReasons, claims.ReasonDeviceTooFresh)
		suspicious = len(abuseReasons) > 0
	}

	// A device that claimed before and shows no tampering is a plain repeat
	// visit, not an abuse signal.
	if p.tracker.HasClaimed(ctx, input.DeviceFingerprint) && !suspicious {
		p.logger.Info(ctx, "device already claimed, skipping evaluation")
		return Result{Status: StatusAlreadyClaimed}, nil
	}

	profile, err := p.store.GetProfileByID(ctx, input.UserID)
	if err != nil {
		return Result{}, err
	}

	if profile.Email == p.adminEmail {
		return p.grant(ctx, input, 0, "admin override", true)
	}

	session, err := p.store.UpsertDeviceSession(ctx, store.UpsertDeviceSessionParams{
		DeviceFingerprint: input.DeviceFingerprint,
		IPAddress:         input.IPAddress,
		UserAgent:         optional(input.UserAgent),
	})
	if err != nil {
		return Result{}, err
	}

	riskScore, riskReasons, err := p.assessRisk(ctx, session)
	if err != nil {
		return Result{}, err
	}

	if suspicious {
		return p.deny(ctx, input, riskScore, append(abuseReasons, riskReasons...))
	}
	if riskScore >= p.denyThreshold {
		return p.deny(ctx, input, riskScore, riskReasons)
	}

	return p.grant(ctx, input, riskScore, "all checks passed", false)
}

// GetDecision returns the recorded decision for a user
func (p *EligibilityProcessor) GetDecision(ctx context.Context, userID uuid.UUID) (Result, error) {
	record, err := p.store.GetEligibilityRecordByUser(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	return resultFromRecord(record), nil
}

func (p *EligibilityProcessor) grant(ctx context.Context, input EvaluationInput, riskScore int, reason string, adminOverride bool) (Result, error) {
	record, err := p.store.CreateEligibilityRecord(ctx, store.CreateEligibilityRecordParams{
		UserID:            input.UserID,
		DeviceFingerprint: input.DeviceFingerprint,
		IPAddress:         input.IPAddress,
		UserAgent:         optional(input.UserAgent),
		RiskScore:         riskScore,
		IsEligible:        true,
		CreditsGranted:    true,
		CreditsAmount:     p.creditsAmount,
		EvaluationReason:  optional(reason),
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return p.replayDecision(ctx, input.UserID)
		}
		return Result{}, err
	}

	if _, err := p.store.IncrementCredits(ctx, input.UserID, p.creditsAmount); err != nil {
		p.logger.Error(ctx, "failed to credit starting grant", err)
		return Result{}, err
	}
	if _, err := p.store.CreateTransaction(ctx, store.CreateTransactionParams{
		UserID:      input.UserID,
		Type:        store.TransactionTypeFreeCredits,
		Amount:      p.creditsAmount,
		Description: "starting credit grant",
	}); err != nil {
		p.logger.Warn(ctx, "failed to record grant transaction", err)
	}

	if err := p.tracker.MarkClaimed(ctx, input.DeviceFingerprint); err != nil {
		p.logger.Warn(ctx, "failed to mark device claimed", err)
	}
	if err := p.store.MarkDeviceCreditsClaimed(ctx, input.DeviceFingerprint); err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Warn(ctx, "failed to mark device session claimed", err)
	}

	if err := p.events.EligibilityDecided(ctx, input.UserID, true, riskScore, reason); err != nil {
		p.logger.Warn(ctx, "failed to publish eligibility event", err)
	}

	p.logger.Info(ctx, "starting credits granted",
		observability.Field{Key: "credits", Value: record.CreditsAmount},
		observability.Field{Key: "risk_score", Value: riskScore},
	)

	return Result{
		Status:         StatusGranted,
		RiskScore:      riskScore,
		CreditsGranted: record.CreditsAmount,
		AdminOverride:  adminOverride,
	}, nil
}

func (p *EligibilityProcessor) deny(ctx context.Context, input EvaluationInput, riskScore int, reasons []string) (Result, error) {
	reason := strings.Join(reasons, "; ")
	_, err := p.store.CreateEligibilityRecord(ctx, store.CreateEligibilityRecordParams{
		UserID:            input.UserID,
		DeviceFingerprint: input.DeviceFingerprint,
		IPAddress:         input.IPAddress,
		UserAgent:         optional(input.UserAgent),
		RiskScore:         riskScore,
		IsEligible:        false,
		CreditsGranted:    false,
		CreditsAmount:     0,
		EvaluationReason:  optional(reason),
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return p.replayDecision(ctx, input.UserID)
		}
		return Result{}, err
	}

	if err := p.events.EligibilityDecided(ctx, input.UserID, false, riskScore, reason); err != nil {
		p.logger.Warn(ctx, "failed to publish eligibility event", err)
	}

	p.logger.Warn(ctx, "starting credits denied",
		errors.New(reason))

	return Result{
		Status:    StatusDenied,
		RiskScore: riskScore,
		Reasons:   reasons,
	}, nil
}

// replayDecision resolves a lost race on the audit row by returning the
// decision that won
func (p *EligibilityProcessor) replayDecision(ctx context.Context, userID uuid.UUID) (Result, error) {
	record, err := p.store.GetEligibilityRecordByUser(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	return resultFromRecord(record), nil
}

func resultFromRecord(record store.EligibilityRecord) Result {
	result := Result{RiskScore: record.RiskScore}
	if record.IsEligible {
		result.Status = StatusGranted
		result.CreditsGranted = record.CreditsAmount
	} else {
		result.Status = StatusDenied
		if record.EvaluationReason != nil && *record.EvaluationReason != "" {
			result.Reasons = strings.Split(*record.EvaluationReason, "; ")
		}
	}
	return result
}

func withoutReason(reasons []string, drop string) []string {
	filtered := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		if reason != drop {
			filtered = append(filtered, reason)
		}
	}
	return filtered
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
