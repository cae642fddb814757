package validation

import (
	"errors"
	"regexp"
	"strings"
)

// KeyType classifies a payment key by its detected format
type KeyType string

const (
	KeyTypeCPF     KeyType = "cpf"
	KeyTypeCNPJ    KeyType = "cnpj"
	KeyTypeEmail   KeyType = "email"
	KeyTypePhone   KeyType = "phone"
	KeyTypeRandom  KeyType = "random"
	KeyTypeUnknown KeyType = "unknown"
)

var (
	ErrAmountNotPositive  = errors.New("amount must be positive")
	ErrInsufficientPoints = errors.New("insufficient points for amount")
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	randomKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9]{32}$`)
	nonDigitPattern  = regexp.MustCompile(`\D`)

	// Document shapes claim their inputs outright: anything matching them is
	// judged as a document and never reinterpreted as another key type.
	cpfShapePattern  = regexp.MustCompile(`^(\d{11}|\d{3}\.\d{3}\.\d{3}-\d{2})$`)
	cnpjShapePattern = regexp.MustCompile(`^(\d{14}|\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2})$`)

	phoneShapePattern = regexp.MustCompile(`^\+?[\d\s()-]+$`)

	// Canonical hyphenated UUID only; other textual UUID forms are rejected
	uuidKeyPattern = regexp.MustCompile(`^[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12}$`)
)

var cpfFirstWeights = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// stripNonDigits removes every non-digit rune so formatted documents
// ("529.982.247-25") validate the same as bare ones
func stripNonDigits(value string) string {
	return nonDigitPattern.ReplaceAllString(value, "")
}

func allDigitsEqual(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func checkDigit(digits string, weights []int) int {
	sum := 0
	for i, weight := range weights {
		sum += int(digits[i]-'0') * weight
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// ValidateCPF reports whether the value is a valid individual taxpayer
// number. Both check digits are verified with the mod-11 scheme and
// sequences of a single repeated digit are rejected outright.
func ValidateCPF(value string) bool {
	digits := stripNonDigits(value)
	if len(digits) != 11 || allDigitsEqual(digits) {
		return false
	}

	first := checkDigit(digits, cpfFirstWeights)
	if first != int(digits[9]-'0') {
		return false
	}

	secondWeights := append([]int{11}, cpfFirstWeights...)
	second := checkDigit(digits, secondWeights)
	return second == int(digits[10]-'0')
}

// ValidateCNPJ reports whether the value is a valid company taxpayer number
func ValidateCNPJ(value string) bool {
	digits := stripNonDigits(value)
	if len(digits) != 14 || allDigitsEqual(digits) {
		return false
	}

	first := checkDigit(digits, cnpjFirstWeights)
	if first != int(digits[12]-'0') {
		return false
	}

	second := checkDigit(digits, cnpjSecondWeights)
	return second == int(digits[13]-'0')
}

// TaxIDKind selects which taxpayer document format to verify
type TaxIDKind string

const (
	TaxIDKindCPF  TaxIDKind = "cpf"
	TaxIDKindCNPJ TaxIDKind = "cnpj"
)

// ValidateTaxID verifies a taxpayer document of the given kind
func ValidateTaxID(value string, kind TaxIDKind) bool {
	switch kind {
	case TaxIDKindCPF:
		return ValidateCPF(value)
	case TaxIDKindCNPJ:
		return ValidateCNPJ(value)
	default:
		return false
	}
}

func validatePhone(value string) bool {
	digits := stripNonDigits(value)
	if len(digits) != 10 && len(digits) != 11 {
		return false
	}
	areaCode := int(digits[0]-'0')*10 + int(digits[1]-'0')
	return areaCode >= 11 && areaCode <= 99
}

func validateEmail(value string) bool {
	return len(value) <= 254 && emailPattern.MatchString(value)
}

func validateRandomKey(value string) bool {
	return uuidKeyPattern.MatchString(value) || randomKeyPattern.MatchString(value)
}

// ValidatePaymentKey classifies a payout key and reports whether it is valid.
// Classification is by shape, validation by content: a bare 11-digit string is
// always a CPF, so one with bad check digits is rejected rather than
// reinterpreted as a phone number. It never returns an error: an unrecognized
// key is simply (KeyTypeUnknown, false).
func ValidatePaymentKey(key string) (KeyType, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return KeyTypeUnknown, false
	}

	if cpfShapePattern.MatchString(key) {
		return KeyTypeCPF, ValidateCPF(key)
	}
	if cnpjShapePattern.MatchString(key) {
		return KeyTypeCNPJ, ValidateCNPJ(key)
	}
	if strings.Contains(key, "@") {
		return KeyTypeEmail, validateEmail(key)
	}
	if phoneShapePattern.MatchString(key) {
		return KeyTypePhone, validatePhone(key)
	}
	if validateRandomKey(key) {
		return KeyTypeRandom, true
	}
	return KeyTypeUnknown, false
}

var unsafeRunes = strings.NewReplacer(
	"<", "",
	">", "",
	`"`, "",
	"'", "",
	"&", "",
)

// SanitizeText strips markup-significant characters, trims surrounding
// whitespace and caps the result at 255 runes
func SanitizeText(value string) string {
	cleaned := strings.TrimSpace(unsafeRunes.Replace(value))
	runes := []rune(cleaned)
	if len(runes) > 255 {
		cleaned = string(runes[:255])
	}
	return cleaned
}

// ValidateAmount checks a withdrawal amount against the user's point balance.
// One point converts to one unit of currency.
func ValidateAmount(amount, availablePoints int) error {
	if amount <= 0 {
		return ErrAmountNotPositive
	}
	if amount > availablePoints {
		return ErrInsufficientPoints
	}
	return nil
}
