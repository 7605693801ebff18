package domain

import "errors"

var (
	ErrNotFound           = errors.New("no encontrado")
	ErrInvalidInput       = errors.New("datos inválidos")
	ErrAdvisorUnavailable = errors.New("asesor no disponible")
)
