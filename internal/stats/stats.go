// Package stats calcula las estadísticas descriptivas sobre el
// subconjunto de respuestas ya filtrado.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
)

// NoDisponible valor mostrado cuando una métrica no puede calcularse
const NoDisponible = "No disponible"

// Pesos ordinales del nivel de comprensión
var pesosComprension = map[string]int{
	"bajo":  1,
	"medio": 2,
	"alto":  3,
}

// Grupo una barra o porción de un gráfico: etiqueta y cantidad
type Grupo struct {
	Etiqueta string `json:"etiqueta"`
	Cantidad int    `json:"cantidad"`
}

// Resumen estadísticas calculadas sobre el subconjunto filtrado
type Resumen struct {
	Total            int      `json:"total"`
	Promedio         string   `json:"promedio"`         // media de calificación 1-10 con 2 decimales, o NoDisponible
	NivelComprension string   `json:"nivelComprension"` // Excelente/Bueno/Medio/Bajo, o NoDisponible
	PorMateria       []Grupo  `json:"porMateria"`
	PorComprension   []Grupo  `json:"porComprension"`
	PorCalificacion  []Grupo  `json:"porCalificacion"`
	Prioritarias     []Alerta `json:"prioritarias"`
}

// Calcular computa el resumen completo del subconjunto filtrado
func Calcular(respuestas []model.Respuesta) Resumen {
	return Resumen{
		Total:            len(respuestas),
		Promedio:         PromedioCalificacion(respuestas),
		NivelComprension: NivelComprension(respuestas),
		PorMateria:       AgruparConteos(respuestas, func(r model.Respuesta) string { return r.Materia }, nil),
		PorComprension:   AgruparConteos(respuestas, func(r model.Respuesta) string { return r.Comprension }, EtiquetasComprension()),
		PorCalificacion:  GruposCalificacion(respuestas),
		Prioritarias:     Prioritarias(respuestas),
	}
}

// PromedioCalificacion media de la calificación de satisfacción
//
// Solo cuentan los valores enteros dentro de [1,10]; el resultado se
// redondea a 2 decimales. Si ninguna respuesta tiene un valor válido se
// devuelve NoDisponible.
func PromedioCalificacion(respuestas []model.Respuesta) string {
	suma := 0
	validas := 0
	for _, r := range respuestas {
		if v, ok := calificacionValida(r.Calificacion); ok {
			suma += v
			validas++
		}
	}
	if validas == 0 {
		return NoDisponible
	}

	promedio := math.Round(float64(suma)/float64(validas)*100) / 100
	return fmt.Sprintf("%.2f", promedio)
}

// NivelComprension nivel cualitativo promedio de comprensión
//
// Cada respuesta bajo/medio/alto aporta peso 1/2/3; las no mapeables se
// excluyen. El promedio se clasifica con umbrales fijos:
// ≥2.7 Excelente, ≥2.0 Bueno, ≥1.0 Medio, resto Bajo.
func NivelComprension(respuestas []model.Respuesta) string {
	suma := 0
	validas := 0
	for _, r := range respuestas {
		if p, ok := pesoComprension(r.Comprension); ok {
			suma += p
			validas++
		}
	}
	if validas == 0 {
		return NoDisponible
	}

	promedio := float64(suma) / float64(validas)
	switch {
	case promedio >= 2.7:
		return "Excelente"
	case promedio >= 2.0:
		return "Bueno"
	case promedio >= 1.0:
		return "Medio"
	default:
		return "Bajo"
	}
}

// AgruparConteos agrupa las respuestas por el valor de un campo y cuenta
// las ocurrencias de cada etiqueta resultante
//
// Si se pasa una tabla de etiquetas, el valor crudo (normalizado a
// minúsculas) se reemplaza por su etiqueta de presentación; los valores
// sin entrada conservan el crudo. Los grupos con etiqueta vacía se
// omiten. El resultado queda ordenado por etiqueta para que los gráficos
// sean estables.
func AgruparConteos(respuestas []model.Respuesta, campo func(model.Respuesta) string, etiquetas map[string]string) []Grupo {
	conteos := make(map[string]int)
	for _, r := range respuestas {
		valor := strings.TrimSpace(campo(r))
		if etiquetas != nil {
			if e, ok := etiquetas[strings.ToLower(valor)]; ok {
				valor = e
			}
		}
		if valor == "" {
			continue
		}
		conteos[valor]++
	}

	grupos := make([]Grupo, 0, len(conteos))
	for etiqueta, cantidad := range conteos {
		grupos = append(grupos, Grupo{Etiqueta: etiqueta, Cantidad: cantidad})
	}
	sort.Slice(grupos, func(i, j int) bool { return grupos[i].Etiqueta < grupos[j].Etiqueta })
	return grupos
}

// GruposCalificacion conteos por calificación para el gráfico de barras
//
// Solo entran etiquetas interpretables como entero, ordenadas de forma
// ascendente por su valor numérico.
func GruposCalificacion(respuestas []model.Respuesta) []Grupo {
	todos := AgruparConteos(respuestas, func(r model.Respuesta) string { return r.Calificacion }, nil)

	grupos := make([]Grupo, 0, len(todos))
	for _, g := range todos {
		if _, err := strconv.Atoi(g.Etiqueta); err == nil {
			grupos = append(grupos, g)
		}
	}
	sort.Slice(grupos, func(i, j int) bool {
		a, _ := strconv.Atoi(grupos[i].Etiqueta)
		b, _ := strconv.Atoi(grupos[j].Etiqueta)
		return a < b
	})
	return grupos
}

// EtiquetasComprension tabla de presentación para los valores crudos del
// nivel de comprensión
func EtiquetasComprension() map[string]string {
	return map[string]string{
		"bajo":  "Bajo",
		"medio": "Medio",
		"alto":  "Alto",
	}
}

func calificacionValida(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 || v > 10 {
		return 0, false
	}
	return v, true
}

func pesoComprension(s string) (int, bool) {
	p, ok := pesosComprension[strings.ToLower(strings.TrimSpace(s))]
	return p, ok
}
