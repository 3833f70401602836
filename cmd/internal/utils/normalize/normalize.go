// Package normalize turns inbound company fields into their stored form.
//
// Absent or blank values are replaced by entity.NotInformed, which is
// persisted and served like any other value.
package normalize

import (
	"localizebackend/cmd/internal/domain/entity"
	"strings"
)

// RegionLength is the width of a Brazilian state code (UF).
const RegionLength = 2

// Activity is an economic activity as reported by the registry.
type Activity struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// Text returns entity.NotInformed when v is nil, empty or only whitespace.
func Text(v *string) string {
	if v == nil {
		return entity.NotInformed
	}
	return String(*v)
}

// String is Text for values that cannot be absent.
func String(v string) string {
	if strings.TrimSpace(v) == "" {
		return entity.NotInformed
	}
	return v
}

// LegalName only falls back to entity.NotInformed when the value is absent.
// A blank legal name is kept as sent.
func LegalName(v *string) string {
	if v == nil {
		return entity.NotInformed
	}
	return *v
}

// Region truncates a state code to its first two characters.
func Region(v *string) *string {
	if v == nil {
		return nil
	}

	runes := []rune(*v)
	if len(runes) <= RegionLength {
		return v
	}
	uf := string(runes[:RegionLength])
	return &uf
}

// MainActivity picks the description of the first activity.
func MainActivity(activities []Activity) string {
	if len(activities) == 0 {
		return entity.NotInformed
	}
	return String(activities[0].Text)
}
