package utils

import "strings"

const CNPJLength = 14

var (
	cnpjPunctuation = strings.NewReplacer(".", "", "/", "", "-", "", " ", "")

	// Receita Federal weights for the two check digits
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// StripCNPJ removes the usual punctuation from a formatted CNPJ
// ("11.222.333/0001-81" -> "11222333000181").
func StripCNPJ(cnpj string) string {
	return cnpjPunctuation.Replace(cnpj)
}

// CanonicalCNPJ is the stored form of a CNPJ: bare digits, so formatted
// and padded spellings of the same number compare equal.
func CanonicalCNPJ(cnpj string) string {
	return StripCNPJ(strings.TrimSpace(cnpj))
}

// IsCNPJValid checks length and both check digits of a bare CNPJ.
func IsCNPJValid(cnpj string) bool {
	if len(cnpj) != CNPJLength || !IsOnlyNumbers(cnpj) {
		return false
	}
	digits, _ := parseDigits(cnpj)

	// Repeated digits pass the checksum but are never issued
	if allEqual(digits) {
		return false
	}

	return cnpjCheckDigit(digits[:12], cnpjFirstWeights) == digits[12] &&
		cnpjCheckDigit(digits[:13], cnpjSecondWeights) == digits[13]
}

func IsOnlyNumbers(s string) bool {
	_, ok := parseDigits(s)
	return ok
}

func parseDigits(s string) ([]int, bool) {
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, false
		}
		digits[i] = int(s[i] - '0')
	}
	return digits, true
}

func allEqual(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func cnpjCheckDigit(base, weights []int) int {
	sum := 0
	for i, weight := range weights {
		sum += base[i] * weight
	}

	if remainder := sum % 11; remainder >= 2 {
		return 11 - remainder
	}
	return 0
}
