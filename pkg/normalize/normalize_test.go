package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "minúsculas y espacios sobrantes",
			input:    "  maría   lópez  ",
			expected: "MARIA LOPEZ",
		},
		{
			name:     "acentos y diéresis",
			input:    "José Ángel Gutiérrez Güemes",
			expected: "JOSE ANGEL GUTIERREZ GUEMES",
		},
		{
			name:     "ya canónico",
			input:    "CESAR JAHACIEL ALONSO GARCIA",
			expected: "CESAR JAHACIEL ALONSO GARCIA",
		},
		{
			name:     "eñe se conserva como N sin tilde",
			input:    "peña nieto",
			expected: "PENA NIETO",
		},
		{
			name:     "vacío",
			input:    "",
			expected: "",
		},
		{
			name:     "solo espacios",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Name(tt.input))
		})
	}
}

func TestFolioKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "artefacto numérico .0", input: "4412.0", expected: "4412"},
		{name: "entero plano", input: "4412", expected: "4412"},
		{name: "fracción en ceros", input: "123.00", expected: "123"},
		{name: "fracción significativa se respeta", input: "123.45", expected: "123.45"},
		{name: "alfanumérico intacto", input: "abc", expected: "abc"},
		{name: "espacios alrededor", input: "  987.0  ", expected: "987"},
		{name: "vacío", input: "", expected: ""},
		{name: "literal nan", input: "nan", expected: ""},
		{name: "literal None", input: "None", expected: ""},
		{name: "punto sin dígitos a la izquierda", input: "A1.0", expected: "A1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FolioKey(tt.input))
		})
	}
}

func TestBlank(t *testing.T) {
	assert.True(t, Blank(""))
	assert.True(t, Blank("   "))
	assert.True(t, Blank("nan"))
	assert.True(t, Blank("NaN"))
	assert.True(t, Blank("none"))
	assert.False(t, Blank("ILIMITADO 5"))
	assert.False(t, Blank("0"))
}
