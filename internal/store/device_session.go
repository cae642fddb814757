package store

import (
	"context"
	"fmt"
)

// UpsertDeviceSessionParams represents parameters for recording a device sighting
type UpsertDeviceSessionParams struct {
	DeviceFingerprint string
	IPAddress         string
	UserAgent         *string
}

const sqlUpsertDeviceSession = `
INSERT INTO device_sessions (device_fingerprint, ip_address, user_agent)
VALUES ($1, $2, $3)
ON CONFLICT (device_fingerprint)
DO UPDATE SET ip_address = $2, user_agent = $3, last_seen = CURRENT_TIMESTAMP
RETURNING id, device_fingerprint, ip_address, user_agent, first_seen, last_seen, free_credits_claimed, created_at
`

// UpsertDeviceSession records a device sighting, creating the row on first
// contact and refreshing last_seen on subsequent ones
func (s *Store) UpsertDeviceSession(ctx context.Context, params UpsertDeviceSessionParams) (DeviceSession, error) {
	var session DeviceSession
	err := s.db.GetContext(ctx, &session, sqlUpsertDeviceSession,
		params.DeviceFingerprint,
		params.IPAddress,
		params.UserAgent)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert device session", err)
		return DeviceSession{}, fmt.Errorf("failed to upsert device session: %w", err)
	}
	return session, nil
}

const sqlMarkDeviceCreditsClaimed = `
UPDATE device_sessions
SET free_credits_claimed = true, last_seen = CURRENT_TIMESTAMP
WHERE device_fingerprint = $1
`

// MarkDeviceCreditsClaimed flags a device as having received the starting
// credit grant
func (s *Store) MarkDeviceCreditsClaimed(ctx context.Context, fingerprint string) error {
	res, err := s.db.ExecContext(ctx, sqlMarkDeviceCreditsClaimed, fingerprint)
	if err != nil {
		s.logger.Error(ctx, "failed to mark device credits claimed", err)
		return fmt.Errorf("failed to mark device credits claimed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

const sqlCountDevicesByIPAddress = `
SELECT COUNT(*)
FROM device_sessions
WHERE ip_address = $1
`

// CountDevicesByIPAddress counts distinct device sessions seen from an IP
// (for risk scoring)
func (s *Store) CountDevicesByIPAddress(ctx context.Context, ipAddress string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountDevicesByIPAddress, ipAddress)
	if err != nil {
		s.logger.Error(ctx, "failed to count devices by ip address", err)
		return 0, fmt.Errorf("failed to count devices by ip address: %w", err)
	}
	return count, nil
}
