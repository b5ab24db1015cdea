package reconcile

import (
	"strconv"
	"strings"
)

// NoCode indica si un valor de código debe tratarse como ausente.
// El formato de origen produce celdas vacías, "0", "0.0" o "NaN" cuando el
// usuario no rellenó el código; ninguna de ellas es un código válido.
func NoCode(code string) bool {
	c := strings.TrimSpace(code)
	if c == "" {
		return true
	}
	if strings.EqualFold(c, "nan") {
		return true
	}
	if f, err := strconv.ParseFloat(c, 64); err == nil && f == 0 {
		return true
	}
	return false
}

// BuildCodeIndex construye el índice código→nombre a partir del catálogo.
// Los códigos ausentes no se indexan; ante códigos duplicados gana el último
// (mismo comportamiento que el flujo de origen).
func BuildCodeIndex(catalog []CatalogProduct) map[string]string {
	index := make(map[string]string)
	for _, p := range catalog {
		if NoCode(p.Code) {
			continue
		}
		index[strings.TrimSpace(p.Code)] = p.Name
	}
	return index
}

// Resolve aplica la cadena de resolución de identidad sobre una fila.
// Orden estricto, gana la primera regla que aplica, sin coincidencias difusas:
//
//	1. nombre, columna primaria
//	2. nombre, columna alternativa
//	3. código, columna primaria → índice código→nombre
//	4. código, columna alternativa → índice código→nombre
//
// El nombre directo prevalece siempre sobre el código: los códigos son
// opcionales y pueden faltar o colisionar. Devuelve "" si ninguna regla
// aplica (fila irresoluble).
func Resolve(row Row, codeIndex map[string]string) string {
	if name := strings.TrimSpace(row.NameAuto); name != "" {
		return name
	}
	if name := strings.TrimSpace(row.NameManual); name != "" {
		return name
	}
	if !NoCode(row.CodeAuto) {
		if name, ok := codeIndex[strings.TrimSpace(row.CodeAuto)]; ok {
			return name
		}
	}
	if !NoCode(row.CodeManual) {
		if name, ok := codeIndex[strings.TrimSpace(row.CodeManual)]; ok {
			return name
		}
	}
	return ""
}
