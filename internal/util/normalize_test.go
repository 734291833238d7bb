package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "Chavez", RemoveDiacritics("Chávez"))
	assert.Equal(t, "Pena", RemoveDiacritics("Peña"))
	assert.Equal(t, "Guell", RemoveDiacritics("Güell"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "alvaro", "ALVARO"},
		{"accents", "Martín Dávalos", "MARTIN DAVALOS"},
		{"enye", "Muñoz", "MUNOZ"},
		{"extra spaces", "  de   la  o ", "DE LA O"},
		{"punctuation", "Ma. Luisa", "MA LUISA"},
		{"hyphen", "Pérez-Reverte", "PEREZ REVERTE"},
		{"apostrophe", "O'Brien", "O BRIEN"},
		{"digits dropped", "Juan 2", "JUAN"},
		{"empty", "", ""},
		{"blank", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
