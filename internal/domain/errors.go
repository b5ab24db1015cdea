package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Se comparan con errors.Is en los bordes de cada capa.
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrInvalidDate    = errors.New("formato de fecha inválido, usar YYYY-MM-DD")
	ErrMissingColumns = errors.New("faltan columnas requeridas en la hoja de productos")
	ErrNoBackups      = errors.New("no hay backups disponibles")
)
