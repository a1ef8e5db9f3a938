package model

import "time"

// Columnas requeridas del CSV exportado desde Google Forms.
// Los encabezados deben coincidir de forma exacta con el formulario.
const (
	ColTimestamp     = "Timestamp"
	ColEmail         = "Email Address"
	ColMateria       = "Materia"
	ColParalelo      = "Paralelo"
	ColAprendizaje   = "¿Qué fue lo más importante que aprendiste en esta clase?"
	ColConfusion     = "¿Qué parte de la clase te resultó más confusa?"
	ColPreguntas     = "¿Qué preguntas te quedaron pendientes sobre el tema?"
	ColComprension   = "¿Cómo calificarías tu nivel de comprensión del tema? (Bajo / Medio / Alto)"
	ColSugerencia    = "¿Qué sugerencias tienes para mejorar la clase?"
	ColParticipacion = "¿Cómo calificarías tu participación durante la clase?"
	ColCalificacion  = "Del 1 al 10, ¿qué tan satisfecho estás con la clase de hoy?"
)

// ColumnasRequeridas lista de encabezados obligatorios, en el orden del formulario
func ColumnasRequeridas() []string {
	return []string{
		ColTimestamp,
		ColEmail,
		ColMateria,
		ColParalelo,
		ColAprendizaje,
		ColConfusion,
		ColPreguntas,
		ColComprension,
		ColSugerencia,
		ColParticipacion,
		ColCalificacion,
	}
}

// Respuesta una fila importada de la encuesta
//
// Se crea durante la importación y es inmutable después; el conjunto
// completo se reemplaza en cada importación. Invariante: Materia nunca
// está vacía (las filas sin materia se descartan al importar).
type Respuesta struct {
	Timestamp     time.Time `json:"timestamp"`
	Email         string    `json:"email"`
	Materia       string    `json:"materia"`
	Paralelo      string    `json:"paralelo"`
	Aprendizaje   string    `json:"aprendizaje"`
	Confusion     string    `json:"confusion"`
	Preguntas     string    `json:"preguntas"`
	Comprension   string    `json:"comprension"`   // bajo/medio/alto (texto libre del formulario)
	Sugerencia    string    `json:"sugerencia"`
	Participacion string    `json:"participacion"`
	Calificacion  string    `json:"calificacion"` // 1-10 como texto, se valida al agregar
}
