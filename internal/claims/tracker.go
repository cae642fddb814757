package claims

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	fieldDeviceID        = "device_id"
	fieldFirstVisit      = "first_visit"
	fieldBrowserHash     = "browser_hash"
	fieldCreditsClaimed  = "credits_claimed"
	fieldPendingReferral = "pending_referral_code"
)

const minDeviceIDLength = 8

// freshDeviceWindow is how long after first contact a device is still
// considered too new to claim
const freshDeviceWindow = time.Minute

// ReasonDeviceTooFresh is the DetectAbuse reason for a first-visit marker
// younger than freshDeviceWindow. It only means anything when the marker
// predates the current request, so callers that just created the marker
// filter it out.
const ReasonDeviceTooFresh = "device seen too recently"

// Tracker maintains per-device claim state. Each device's fields live under
// its own key prefix, so one Store serves every device.
type Tracker struct {
	kv  Store
	now func() time.Time
}

// NewTracker creates a tracker over the given store
func NewTracker(kv Store) *Tracker {
	return &Tracker{kv: kv, now: time.Now}
}

func deviceField(device, field string) string {
	return fmt.Sprintf("device:%s:%s", device, field)
}

// Initialize records a device's identity fields, preserving an existing
// first-visit timestamp so the device's age survives repeated visits. The
// returned flag reports whether a first-visit marker already existed, i.e.
// the device had been seen before this call.
func (t *Tracker) Initialize(ctx context.Context, device, deviceID, browserHash string) (bool, error) {
	if err := t.kv.Set(ctx, deviceField(device, fieldDeviceID), deviceID); err != nil {
		return false, fmt.Errorf("failed to store device id: %w", err)
	}
	if err := t.kv.Set(ctx, deviceField(device, fieldBrowserHash), browserHash); err != nil {
		return false, fmt.Errorf("failed to store browser hash: %w", err)
	}

	firstVisitKey := deviceField(device, fieldFirstVisit)
	if _, err := t.kv.Get(ctx, firstVisitKey); err != nil {
		millis := strconv.FormatInt(t.now().UnixMilli(), 10)
		if err := t.kv.Set(ctx, firstVisitKey, millis); err != nil {
			return false, fmt.Errorf("failed to store first visit: %w", err)
		}
		return false, nil
	}
	return true, nil
}

// HasClaimed reports whether the device already received the starting grant.
// Storage errors read as not claimed; the authority record is what actually
// prevents a double grant.
func (t *Tracker) HasClaimed(ctx context.Context, device string) bool {
	value, err := t.kv.Get(ctx, deviceField(device, fieldCreditsClaimed))
	if err != nil {
		return false
	}
	return value == "true"
}

// MarkClaimed flags the device as having received the starting grant
func (t *Tracker) MarkClaimed(ctx context.Context, device string) error {
	if err := t.kv.Set(ctx, deviceField(device, fieldCreditsClaimed), "true"); err != nil {
		return fmt.Errorf("failed to mark claimed: %w", err)
	}
	return nil
}

// SetPendingReferral stores a referral code awaiting an authenticated session
func (t *Tracker) SetPendingReferral(ctx context.Context, device, code string) error {
	if err := t.kv.Set(ctx, deviceField(device, fieldPendingReferral), code); err != nil {
		return fmt.Errorf("failed to store pending referral: %w", err)
	}
	return nil
}

// PendingReferral retrieves the stored referral code, empty when none is set
func (t *Tracker) PendingReferral(ctx context.Context, device string) (string, error) {
	value, err := t.kv.Get(ctx, deviceField(device, fieldPendingReferral))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read pending referral: %w", err)
	}
	return value, nil
}

// ClearPendingReferral removes the stored referral code
func (t *Tracker) ClearPendingReferral(ctx context.Context, device string) error {
	if err := t.kv.Delete(ctx, deviceField(device, fieldPendingReferral)); err != nil {
		return fmt.Errorf("failed to clear pending referral: %w", err)
	}
	return nil
}

// DetectAbuse inspects a device's stored state for tampering patterns.
// Unreadable storage counts as suspicious: the check fails closed.
func (t *Tracker) DetectAbuse(ctx context.Context, device string) (bool, []string) {
	var reasons []string

	deviceID, idErr := t.kv.Get(ctx, deviceField(device, fieldDeviceID))
	firstVisit, visitErr := t.kv.Get(ctx, deviceField(device, fieldFirstVisit))
	claimed, claimedErr := t.kv.Get(ctx, deviceField(device, fieldCreditsClaimed))

	if idErr != nil && !errors.Is(idErr, ErrKeyNotFound) {
		return true, []string{"claim state unreadable"}
	}
	if visitErr != nil && !errors.Is(visitErr, ErrKeyNotFound) {
		return true, []string{"claim state unreadable"}
	}
	if claimedErr != nil && !errors.Is(claimedErr, ErrKeyNotFound) {
		return true, []string{"claim state unreadable"}
	}

	if len(deviceID) < minDeviceIDLength {
		reasons = append(reasons, "device id missing or invalid")
	}

	if firstVisit == "" {
		reasons = append(reasons, "first visit timestamp missing")
	} else if millis, err := strconv.ParseInt(firstVisit, 10, 64); err != nil {
		reasons = append(reasons, "first visit timestamp malformed")
	} else if t.now().Sub(time.UnixMilli(millis)) < freshDeviceWindow {
		reasons = append(reasons, ReasonDeviceTooFresh)
	}

	if claimed == "true" && (deviceID == "" || firstVisit == "") {
		reasons = append(reasons, "claim state inconsistent")
	}

	return len(reasons) > 0, reasons
}
