package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "valid bare", value: "52998224725", want: true},
		{name: "valid formatted", value: "529.982.247-25", want: true},
		{name: "valid alternate", value: "11144477735", want: true},
		{name: "wrong first check digit", value: "52998224735", want: false},
		{name: "wrong second check digit", value: "52998224726", want: false},
		{name: "repeated digits", value: "11111111111", want: false},
		{name: "too short", value: "5299822472", want: false},
		{name: "too long", value: "529982247251", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCPF(tt.value); got != tt.want {
				t.Errorf("ValidateCPF(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "valid bare", value: "11222333000181", want: true},
		{name: "valid formatted", value: "11.222.333/0001-81", want: true},
		{name: "valid alternate", value: "11444777000161", want: true},
		{name: "wrong check digits", value: "11222333000182", want: false},
		{name: "repeated digits", value: "11111111111111", want: false},
		{name: "cpf length", value: "52998224725", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCNPJ(tt.value); got != tt.want {
				t.Errorf("ValidateCNPJ(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidatePaymentKey(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantType  KeyType
		wantValid bool
	}{
		{name: "cpf", key: "52998224725", wantType: KeyTypeCPF, wantValid: true},
		{name: "cpf formatted", key: "529.982.247-25", wantType: KeyTypeCPF, wantValid: true},
		{name: "cpf formatted bad check digits", key: "529.982.247-26", wantType: KeyTypeCPF, wantValid: false},
		{name: "eleven digits bad check digits", key: "11999999999", wantType: KeyTypeCPF, wantValid: false},
		{name: "cnpj", key: "11222333000181", wantType: KeyTypeCNPJ, wantValid: true},
		{name: "cnpj formatted", key: "11.222.333/0001-81", wantType: KeyTypeCNPJ, wantValid: true},
		{name: "fourteen digits bad check digits", key: "11222333000182", wantType: KeyTypeCNPJ, wantValid: false},
		{name: "email", key: "user@example.com", wantType: KeyTypeEmail, wantValid: true},
		{name: "email missing domain dot", key: "user@example", wantType: KeyTypeEmail, wantValid: false},
		{name: "email too long", key: strings.Repeat("a", 250) + "@b.co", wantType: KeyTypeEmail, wantValid: false},
		{name: "phone ten digits", key: "1133334444", wantType: KeyTypePhone, wantValid: true},
		{name: "phone formatted", key: "(11) 98765-4321", wantType: KeyTypePhone, wantValid: true},
		{name: "phone international prefix", key: "+55 11 3333-4444", wantType: KeyTypePhone, wantValid: false},
		{name: "phone bad area code", key: "0133334444", wantType: KeyTypePhone, wantValid: false},
		{name: "uuid key", key: "123e4567-e89b-12d3-a456-426614174000", wantType: KeyTypeRandom, wantValid: true},
		{name: "uuid key uppercase", key: "123E4567-E89B-12D3-A456-426614174000", wantType: KeyTypeRandom, wantValid: true},
		{name: "uuid braced", key: "{123e4567-e89b-12d3-a456-426614174000}", wantType: KeyTypeUnknown, wantValid: false},
		{name: "uuid urn form", key: "urn:uuid:123e4567-e89b-12d3-a456-426614174000", wantType: KeyTypeUnknown, wantValid: false},
		{name: "alphanumeric key", key: "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6", wantType: KeyTypeRandom, wantValid: true},
		{name: "empty", key: "", wantType: KeyTypeUnknown, wantValid: false},
		{name: "whitespace only", key: "   ", wantType: KeyTypeUnknown, wantValid: false},
		{name: "garbage", key: "not-a-key", wantType: KeyTypeUnknown, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotValid := ValidatePaymentKey(tt.key)
			if gotType != tt.wantType || gotValid != tt.wantValid {
				t.Errorf("ValidatePaymentKey(%q) = (%v, %v), want (%v, %v)",
					tt.key, gotType, gotValid, tt.wantType, tt.wantValid)
			}
		})
	}
}

func TestValidatePaymentKeyBareElevenDigitsAreAlwaysCPF(t *testing.T) {
	// Eleven bare digits have the same shape as a mobile number, but they are
	// classified as a CPF unconditionally: bad check digits mean rejection,
	// never a second reading as a phone number.
	gotType, gotValid := ValidatePaymentKey("11144477735")
	if gotType != KeyTypeCPF || !gotValid {
		t.Errorf("ValidatePaymentKey(%q) = (%v, %v), want (%v, true)", "11144477735", gotType, gotValid, KeyTypeCPF)
	}

	gotType, gotValid = ValidatePaymentKey("11999999999")
	if gotType != KeyTypeCPF || gotValid {
		t.Errorf("ValidatePaymentKey(%q) = (%v, %v), want (%v, false)", "11999999999", gotType, gotValid, KeyTypeCPF)
	}
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain text untouched", value: "hello world", want: "hello world"},
		{name: "strips markup characters", value: `<script>alert("x")</script>`, want: "scriptalert(x)/script"},
		{name: "strips quotes and ampersand", value: "a'b&c", want: "abc"},
		{name: "trims whitespace", value: "  padded  ", want: "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.value); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSanitizeTextCapsLength(t *testing.T) {
	got := SanitizeText(strings.Repeat("x", 300))
	if len(got) != 255 {
		t.Errorf("SanitizeText length = %d, want 255", len(got))
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name            string
		amount          int
		availablePoints int
		wantErr         error
	}{
		{name: "valid", amount: 50, availablePoints: 100, wantErr: nil},
		{name: "exact balance", amount: 100, availablePoints: 100, wantErr: nil},
		{name: "zero", amount: 0, availablePoints: 100, wantErr: ErrAmountNotPositive},
		{name: "negative", amount: -5, availablePoints: 100, wantErr: ErrAmountNotPositive},
		{name: "over balance", amount: 101, availablePoints: 100, wantErr: ErrInsufficientPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount, tt.availablePoints)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAmount(%d, %d) = %v, want %v", tt.amount, tt.availablePoints, err, tt.wantErr)
			}
		})
	}
}
