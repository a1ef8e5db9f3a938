package stats

import (
	"fmt"
	"sort"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
)

// Umbral de calificación a partir del cual un estudiante requiere
// atención (inclusive)
const umbralCalificacion = 7

// Severidad nivel de énfasis visual de una alerta
type Severidad string

const (
	SeveridadAlta  Severidad = "alta"  // calificación baja y comprensión baja
	SeveridadMedia Severidad = "media" // solo comprensión baja
	SeveridadBaja  Severidad = "baja"  // solo calificación baja
)

// orden de severidad para el ranking (mayor primero)
var ordenSeveridad = map[Severidad]int{
	SeveridadAlta:  3,
	SeveridadMedia: 2,
	SeveridadBaja:  1,
}

// Alerta una respuesta que requiere atención del docente
type Alerta struct {
	Respuesta model.Respuesta `json:"respuesta"`
	Motivo    string          `json:"motivo"`
	Severidad Severidad       `json:"severidad"`
}

// Prioritarias detecta las respuestas que requieren atención: calificación
// ≤7 (cuando es interpretable) o comprensión en el nivel más bajo
//
// Las alertas se ordenan por severidad descendente: ambas señales van
// antes que comprensión sola, y esta antes que calificación sola.
func Prioritarias(respuestas []model.Respuesta) []Alerta {
	alertas := make([]Alerta, 0)

	for _, r := range respuestas {
		calBaja := false
		cal := 0
		if v, ok := calificacionValida(r.Calificacion); ok && v <= umbralCalificacion {
			calBaja = true
			cal = v
		}

		compBaja := false
		if p, ok := pesoComprension(r.Comprension); ok && p == 1 {
			compBaja = true
		}

		switch {
		case calBaja && compBaja:
			alertas = append(alertas, Alerta{
				Respuesta: r,
				Motivo:    fmt.Sprintf("Calificación %d y nivel de comprensión bajo", cal),
				Severidad: SeveridadAlta,
			})
		case compBaja:
			alertas = append(alertas, Alerta{
				Respuesta: r,
				Motivo:    "Nivel de comprensión bajo",
				Severidad: SeveridadMedia,
			})
		case calBaja:
			alertas = append(alertas, Alerta{
				Respuesta: r,
				Motivo:    fmt.Sprintf("Calificación %d (≤%d)", cal, umbralCalificacion),
				Severidad: SeveridadBaja,
			})
		}
	}

	sort.SliceStable(alertas, func(i, j int) bool {
		return ordenSeveridad[alertas[i].Severidad] > ordenSeveridad[alertas[j].Severidad]
	})
	return alertas
}
