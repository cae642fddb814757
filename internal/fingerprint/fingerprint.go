// Package fingerprint derives stable device identifiers from the environment
// signals a client reports. Both generators are pure: the same signals always
// produce the same fingerprint.
package fingerprint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Signals carries the environment attributes reported by a device. Zero
// values mean the signal was unavailable, as happens in locked-down
// environments that block access to most of them.
type Signals struct {
	UserAgent           string
	Language            string
	Languages           []string
	Platform            string
	ScreenWidth         int
	ScreenHeight        int
	ColorDepth          int
	Timezone            string
	TimezoneOffset      int
	HardwareConcurrency int
	DeviceMemory        int
	TouchPoints         int
	Vendor              string
	CookiesEnabled      bool
}

var errSignalUnavailable = errors.New("signal unavailable")

// Provider extracts one signal component. Providers that cannot produce a
// value return an error and are skipped.
type Provider func(s Signals) (string, error)

func userAgentProvider(s Signals) (string, error) {
	if s.UserAgent == "" {
		return "", errSignalUnavailable
	}
	return s.UserAgent, nil
}

func languageProvider(s Signals) (string, error) {
	if s.Language == "" {
		return "", errSignalUnavailable
	}
	return s.Language, nil
}

func screenProvider(s Signals) (string, error) {
	if s.ScreenWidth == 0 || s.ScreenHeight == 0 {
		return "", errSignalUnavailable
	}
	return fmt.Sprintf("%dx%dx%d", s.ScreenWidth, s.ScreenHeight, s.ColorDepth), nil
}

func timezoneProvider(s Signals) (string, error) {
	if s.Timezone == "" {
		return "", errSignalUnavailable
	}
	return fmt.Sprintf("%s:%d", s.Timezone, s.TimezoneOffset), nil
}

func platformProvider(s Signals) (string, error) {
	if s.Platform == "" {
		return "", errSignalUnavailable
	}
	return s.Platform, nil
}

func languagesProvider(s Signals) (string, error) {
	if len(s.Languages) == 0 {
		return "", errSignalUnavailable
	}
	return strings.Join(s.Languages, ","), nil
}

func hardwareProvider(s Signals) (string, error) {
	if s.HardwareConcurrency == 0 {
		return "", errSignalUnavailable
	}
	return fmt.Sprintf("hw%d:mem%d:touch%d", s.HardwareConcurrency, s.DeviceMemory, s.TouchPoints), nil
}

func vendorProvider(s Signals) (string, error) {
	if s.Vendor == "" {
		return "", errSignalUnavailable
	}
	return s.Vendor, nil
}

func cookiesProvider(s Signals) (string, error) {
	if !s.CookiesEnabled {
		return "", errSignalUnavailable
	}
	return "cookies", nil
}

// basicProviders is the minimal signal set, available even in locked-down
// environments. Order matters: it is part of the fingerprint.
var basicProviders = []Provider{
	userAgentProvider,
	languageProvider,
	screenProvider,
	timezoneProvider,
}

var advancedProviders = []Provider{
	userAgentProvider,
	languageProvider,
	languagesProvider,
	platformProvider,
	screenProvider,
	timezoneProvider,
	hardwareProvider,
	vendorProvider,
	cookiesProvider,
}

func collect(s Signals, providers []Provider) string {
	parts := make([]string, 0, len(providers))
	for _, provider := range providers {
		value, err := provider(s)
		if err != nil {
			continue
		}
		parts = append(parts, value)
	}
	return strings.Join(parts, "|")
}

const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

func fnv1aSeeded(value string, seed uint32) uint32 {
	hash := fnvOffsetBasis ^ seed
	for i := 0; i < len(value); i++ {
		hash ^= uint32(value[i])
		hash *= fnvPrime
	}
	return hash
}

func base36Padded(hash uint32, width int) string {
	encoded := strconv.FormatUint(uint64(hash), 36)
	if len(encoded) < width {
		encoded = strings.Repeat("0", width-len(encoded)) + encoded
	}
	return encoded
}

func reverse(value string) string {
	bytes := []byte(value)
	for i, j := 0, len(bytes)-1; i < j; i, j = i+1, j-1 {
		bytes[i], bytes[j] = bytes[j], bytes[i]
	}
	return string(bytes)
}

// Basic produces a 24-character identifier from the minimal signal set. Three
// differently seeded hash passes are concatenated so a single 32-bit collision
// does not collide the whole fingerprint; the third pass runs over the
// reversed input to decorrelate it from the first two.
func Basic(s Signals) string {
	joined := collect(s, basicProviders)

	id := base36Padded(fnv1aSeeded(joined, 0), 8) +
		base36Padded(fnv1aSeeded(joined, 101), 8) +
		base36Padded(fnv1aSeeded(reverse(joined), 202), 8)
	return id[:24]
}

// Advanced produces an 8-character identifier from the extended signal set,
// folding the joined string into a signed 32-bit hash. When every extended
// signal is unavailable it falls back to the minimal set.
func Advanced(s Signals) string {
	joined := collect(s, advancedProviders)
	if joined == "" {
		joined = collect(s, basicProviders)
	}

	var hash int32
	for i := 0; i < len(joined); i++ {
		hash = (hash << 5) - hash + int32(joined[i])
	}

	magnitude := int64(hash)
	if magnitude < 0 {
		magnitude = -magnitude
	}

	return base36Padded(uint32(magnitude), 8)
}
