package processor

import (
	"context"
	"fmt"
	"spritepay-server/internal/observability"
	"spritepay-server/internal/store"
	"time"
)

// Risk score weights. The final score is capped at maxRiskScore; anything at
// or above the deny threshold blocks the grant.
const (
	scorePerFingerprintReuse = 30
	scorePerIPEvaluation     = 15
	scorePerSharedIPDevice   = 10
	scoreFreshDevice         = 25
	scoreClaimedDevice       = 40
	maxRiskScore             = 100
)

// freshDeviceAge is the device age below which the fresh-device penalty
// applies
const freshDeviceAge = time.Minute

// assessRisk scores a device against the authority's own records. A device
// that has already backed another account's evaluation, an IP burst, a
// minutes-old device and a device that already claimed all raise the score.
func (p *EligibilityProcessor) assessRisk(ctx context.Context, session store.DeviceSession) (int, []string, error) {
	score := 0
	var reasons []string

	fingerprintCount, err := p.store.CountEligibilityByFingerprint(ctx, session.DeviceFingerprint)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count fingerprint evaluations: %w", err)
	}
	if fingerprintCount > 0 {
		score += fingerprintCount * scorePerFingerprintReuse
		reasons = append(reasons, fmt.Sprintf("device fingerprint backed %d prior evaluations", fingerprintCount))
	}

	ipCount, err := p.store.CountEligibilityByIPAddress(ctx, session.IPAddress)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count ip evaluations: %w", err)
	}
	if ipCount > 0 {
		score += ipCount * scorePerIPEvaluation
		reasons = append(reasons, fmt.Sprintf("%d evaluations from this address in 24h", ipCount))
	}

	// The count includes the session just upserted, so only extra devices
	// on the same address raise the score.
	deviceCount, err := p.store.CountDevicesByIPAddress(ctx, session.IPAddress)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count devices by ip: %w", err)
	}
	if deviceCount > 1 {
		score += (deviceCount - 1) * scorePerSharedIPDevice
		reasons = append(reasons, fmt.Sprintf("%d devices share this address", deviceCount))
	}

	if p.now().Sub(session.FirstSeen) < freshDeviceAge {
		score += scoreFreshDevice
		reasons = append(reasons, "device first seen under a minute ago")
	}

	if session.FreeCreditsClaimed {
		score += scoreClaimedDevice
		reasons = append(reasons, "device already received the starting grant")
	}

	if score > maxRiskScore {
		score = maxRiskScore
	}

	p.logger.Info(ctx, "risk assessment complete",
		observability.Field{Key: "risk_score", Value: score},
		observability.Field{Key: "fingerprint_reuse", Value: fingerprintCount},
		observability.Field{Key: "ip_evaluations", Value: ipCount},
		observability.Field{Key: "ip_devices", Value: deviceCount},
	)

	return score, reasons, nil
}
