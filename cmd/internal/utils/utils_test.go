package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sanitizeTarget struct {
	Name     string
	Nickname *string
	Missing  *string
	Password string `sanitize:"-"`
	Age      int
}

func TestSanitize(t *testing.T) {
	nick := "  ana  "
	target := &sanitizeTarget{
		Name:     "  Ana Souza \n",
		Nickname: &nick,
		Password: "  secret1  ",
		Age:      30,
	}

	Sanitize(target)

	assert.Equal(t, "Ana Souza", target.Name)
	assert.Equal(t, "ana", *target.Nickname)
	assert.Nil(t, target.Missing)
	assert.Equal(t, "  secret1  ", target.Password)
	assert.Equal(t, 30, target.Age)
}

func TestSanitize_PanicsOnNonPointer(t *testing.T) {
	assert.Panics(t, func() { Sanitize(sanitizeTarget{}) })
	assert.Panics(t, func() { Sanitize((*sanitizeTarget)(nil)) })

	s := "x"
	assert.Panics(t, func() { Sanitize(&s) })
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t "))
	assert.False(t, IsBlank(" a "))
}

func TestFormatEpoch(t *testing.T) {
	assert.Equal(t, "1970-01-01T00:00:00Z", FormatEpoch(0))
	assert.Equal(t, "2024-01-02T03:04:05Z", FormatEpoch(1704164645000))
}

func TestStripCNPJ(t *testing.T) {
	assert.Equal(t, "11222333000181", StripCNPJ("11.222.333/0001-81"))
	assert.Equal(t, "11222333000181", StripCNPJ(" 11 222 333 0001 81 "))
	assert.Equal(t, "11222333000181", StripCNPJ("11222333000181"))
}

func TestIsCNPJValid(t *testing.T) {
	tests := []struct {
		cnpj  string
		valid bool
	}{
		{"11222333000181", true},
		{"11444777000161", true},
		{"11222333000100", false},
		{"00000000000000", false},
		{"1122233300018", false},
		{"112223330001811", false},
		{"11.222.333/0001-81", false},
		{"1122233300018a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.cnpj, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsCNPJValid(tt.cnpj))
		})
	}
}

func TestIsOnlyNumbers(t *testing.T) {
	assert.True(t, IsOnlyNumbers("0123456789"))
	assert.True(t, IsOnlyNumbers(""))
	assert.False(t, IsOnlyNumbers("12a4"))
	assert.False(t, IsOnlyNumbers("12-4"))
}

func TestCanonicalCNPJ(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"11222333000181", "11222333000181"},
		{"11.222.333/0001-81", "11222333000181"},
		{" 11222333000181 ", "11222333000181"},
		{"\t11.222.333/0001-81\n", "11222333000181"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalCNPJ(tt.in), tt.in)
	}
}
