// Package filter aplica la selección de filtros al conjunto de respuestas.
//
// El motor es puro: opera sobre copias, no tiene efectos secundarios y el
// resultado es determinista. Los cuatro límites (fecha inicio, fecha fin,
// materia, paralelo) se combinan con AND.
package filter

import (
	"sort"
	"time"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
)

const formatoFecha = "2006-01-02"

// Opciones deriva los valores disponibles para los controles de filtro:
// el conjunto ordenado de materias y paralelos distintos
func Opciones(respuestas []model.Respuesta) (materias, paralelos []string) {
	vistoM := make(map[string]bool)
	vistoP := make(map[string]bool)

	for _, r := range respuestas {
		if r.Materia != "" && !vistoM[r.Materia] {
			vistoM[r.Materia] = true
			materias = append(materias, r.Materia)
		}
		if r.Paralelo != "" && !vistoP[r.Paralelo] {
			vistoP[r.Paralelo] = true
			paralelos = append(paralelos, r.Paralelo)
		}
	}

	sort.Strings(materias)
	sort.Strings(paralelos)
	return materias, paralelos
}

// Aplicar devuelve el subconjunto de respuestas que pasa los cuatro
// límites del filtro
//
// La fecha de inicio se evalúa a la medianoche y la de fin al final del
// día (23:59:59.999), ambas inclusivas. Un límite vacío no restringe.
func Aplicar(respuestas []model.Respuesta, f model.Filtro) []model.Respuesta {
	inicio, hayInicio := parsearFecha(f.FechaInicio)
	fin, hayFin := parsearFecha(f.FechaFin)
	if hayFin {
		fin = fin.Add(24*time.Hour - time.Millisecond)
	}

	resultado := make([]model.Respuesta, 0, len(respuestas))
	for _, r := range respuestas {
		if hayInicio && r.Timestamp.Before(inicio) {
			continue
		}
		if hayFin && r.Timestamp.After(fin) {
			continue
		}
		if f.Materia != "" && r.Materia != f.Materia {
			continue
		}
		if f.Paralelo != "" && r.Paralelo != f.Paralelo {
			continue
		}
		resultado = append(resultado, r)
	}

	return resultado
}

func parsearFecha(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(formatoFecha, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FechaValida indica si el texto es una fecha YYYY-MM-DD válida o vacía
func FechaValida(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(formatoFecha, s)
	return err == nil
}
