package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents descompone los caracteres (NFD) y descarta las marcas
// combinantes, de forma que "PEÑA" y "PENA" produzcan la misma clave.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name canonicaliza un nombre libre para usarlo como clave de join:
// recorta, convierte a mayúsculas, colapsa espacios internos y elimina
// acentos. Entrada vacía produce cadena vacía.
func Name(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	s = strings.ToUpper(s)
	s = strings.Join(strings.Fields(s), " ")

	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		// La transformación nunca debería fallar con UTF-8 válido;
		// si falla devolvemos la cadena sin desacentuar.
		return s
	}

	return out
}

// FolioKey canonicaliza un identificador de folio que puede venir
// serializado como número ('4412.0') o como texto ('4412'), para que
// ambas fuentes produzcan la misma clave. Los valores vacíos o los
// literales 'nan'/'none' normalizan a cadena vacía y el caller debe
// excluirlos del join.
func FolioKey(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	switch strings.ToLower(s) {
	case "nan", "none":
		return ""
	}

	// Artefacto numérico común del origen: '123456.0' -> '123456'
	if strings.HasSuffix(s, ".0") {
		head := strings.TrimSuffix(s, ".0")
		if isDigits(head) {
			return head
		}
	}

	// Cadena tipo float '123.00' con fracción en ceros -> '123'
	if left, right, ok := strings.Cut(s, "."); ok {
		if isDigits(left) && strings.Trim(right, "0") == "" {
			return left
		}
	}

	return s
}

// Blank reporta si un valor de venta debe tratarse como vacío:
// nulo, cadena vacía o los literales 'nan'/'none' tras recortar.
func Blank(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}

	switch strings.ToLower(s) {
	case "nan", "none":
		return true
	}

	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
