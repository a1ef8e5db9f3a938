package llm

import (
	"context"
	"errors"
)

// NoConfigurado implementación usada cuando falta la clave de API
//
// El panel sigue funcionando (importación, filtros, estadísticas y
// exportación), pero cualquier intento de generar un reporte falla con
// un mensaje claro.
type NoConfigurado struct{}

var _ Generador = NoConfigurado{}

func (NoConfigurado) Generar(context.Context, string, string) (string, error) {
	return "", errors.New("el servicio de generación no está configurado (falta GEMINI_API_KEY)")
}
