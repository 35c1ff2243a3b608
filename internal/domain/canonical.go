package domain

import (
	"strings"

	"github.com/expcc/metas-cc-api/pkg/normalize"
)

// executiveAliases corrige variantes conocidas de captura del mismo nombre.
var executiveAliases = map[string]string{
	"CESAR JAHACIEL ALONSO GARCIAA": "CESAR JAHACIEL ALONSO GARCIA",
	"VICTOR BETANZO FUENTES":        "VICTOR BETANZOS FUENTES",
}

// CanonicalExecutive normaliza el nombre del ejecutivo y aplica alias conocidos.
func CanonicalExecutive(raw string) string {
	name := normalize.Name(raw)
	if fixed, ok := executiveAliases[name]; ok {
		return fixed
	}
	return name
}

// CanonicalCenterKey deriva la clave del centro a partir del nombre capturado.
// Cualquier variante que mencione JUAREZ pertenece a JV; el resto a CC2.
func CanonicalCenterKey(raw string) string {
	if strings.Contains(normalize.Name(raw), "JUAREZ") {
		return CenterJV
	}
	return CenterCC2
}
