package fingerprint

import (
	"strings"
	"testing"
)

func fullSignals() Signals {
	return Signals{
		UserAgent:           "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		Language:            "pt-BR",
		Languages:           []string{"pt-BR", "en-US"},
		Platform:            "Win32",
		ScreenWidth:         1920,
		ScreenHeight:        1080,
		ColorDepth:          24,
		Timezone:            "America/Sao_Paulo",
		TimezoneOffset:      180,
		HardwareConcurrency: 8,
		DeviceMemory:        16,
		TouchPoints:         0,
		Vendor:              "Google Inc.",
		CookiesEnabled:      true,
	}
}

func TestBasicIsDeterministic(t *testing.T) {
	signals := fullSignals()
	first := Basic(signals)
	second := Basic(signals)
	if first != second {
		t.Errorf("Basic not deterministic: %q vs %q", first, second)
	}
}

func TestBasicLength(t *testing.T) {
	id := Basic(fullSignals())
	if len(id) != 24 {
		t.Errorf("Basic length = %d, want 24", len(id))
	}
}

func TestBasicDiffersAcrossDevices(t *testing.T) {
	a := fullSignals()
	b := fullSignals()
	b.UserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"

	if Basic(a) == Basic(b) {
		t.Error("different user agents produced the same basic fingerprint")
	}
}

func TestBasicIgnoresExtendedSignals(t *testing.T) {
	a := fullSignals()
	b := fullSignals()
	b.HardwareConcurrency = 2
	b.Vendor = "Apple Computer, Inc."

	if Basic(a) != Basic(b) {
		t.Error("basic fingerprint changed on extended-only signal change")
	}
}

func TestBasicBase36Alphabet(t *testing.T) {
	id := Basic(fullSignals())
	for _, r := range id {
		if !strings.ContainsRune("0123456789abcdefghijklmnopqrstuvwxyz", r) {
			t.Errorf("unexpected rune %q in fingerprint %q", r, id)
		}
	}
}

func TestAdvancedIsDeterministic(t *testing.T) {
	signals := fullSignals()
	if Advanced(signals) != Advanced(signals) {
		t.Error("Advanced not deterministic")
	}
}

func TestAdvancedLength(t *testing.T) {
	id := Advanced(fullSignals())
	if len(id) != 8 {
		t.Errorf("Advanced length = %d, want 8", len(id))
	}
}

func TestAdvancedUsesExtendedSignals(t *testing.T) {
	a := fullSignals()
	b := fullSignals()
	b.HardwareConcurrency = 2

	if Advanced(a) == Advanced(b) {
		t.Error("hardware change did not affect advanced fingerprint")
	}
}

func TestAdvancedLockedDownEnvironment(t *testing.T) {
	id := Advanced(Signals{})
	if len(id) != 8 {
		t.Errorf("locked-down fingerprint length = %d, want 8", len(id))
	}
	if Advanced(Signals{}) != id {
		t.Error("locked-down fingerprint not deterministic")
	}
}

func TestProvidersSkipUnavailableSignals(t *testing.T) {
	partial := Signals{
		UserAgent: "Mozilla/5.0",
		Timezone:  "UTC",
	}
	joined := collect(partial, basicProviders)
	if joined != "Mozilla/5.0|UTC:0" {
		t.Errorf("collect = %q, want %q", joined, "Mozilla/5.0|UTC:0")
	}
}
