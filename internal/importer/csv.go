package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
)

// Formatos de fecha que produce la exportación CSV según la configuración
// regional de la hoja. Se prueban en orden.
var formatosFecha = []string{
	"1/2/2006 15:04:05",
	"2/1/2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006",
	"2/1/2006",
	"2006-01-02",
}

// ParsearCSV convierte el CSV exportado en la lista ordenada de respuestas
//
// Valida que la primera fila contenga todas las columnas requeridas
// (ErrEsquema si falta alguna) y que exista al menos una fila de datos
// (ErrFormato si no). Las filas sin materia se descartan; el orden del
// archivo se conserva.
func ParsearCSV(r io.Reader) ([]model.Respuesta, error) {
	lector := csv.NewReader(r)
	lector.FieldsPerRecord = -1

	filas, err := lector.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormato, err)
	}
	if len(filas) < 2 {
		return nil, fmt.Errorf("%w: el archivo no contiene filas de datos", ErrFormato)
	}

	indices, err := validarEncabezados(filas[0])
	if err != nil {
		return nil, err
	}

	respuestas := make([]model.Respuesta, 0, len(filas)-1)
	for _, fila := range filas[1:] {
		resp := filaARespuesta(fila, indices)
		// Invariante: toda respuesta importada tiene materia
		if resp.Materia == "" {
			continue
		}
		respuestas = append(respuestas, resp)
	}

	return respuestas, nil
}

// validarEncabezados localiza cada columna requerida y devuelve su índice
func validarEncabezados(encabezados []string) (map[string]int, error) {
	indices := make(map[string]int, len(encabezados))
	for i, h := range encabezados {
		indices[strings.TrimSpace(h)] = i
	}

	for _, col := range model.ColumnasRequeridas() {
		if _, ok := indices[col]; !ok {
			return nil, fmt.Errorf("%w: falta la columna «%s»", ErrEsquema, col)
		}
	}

	return indices, nil
}

// filaARespuesta convierte una fila cruda en una Respuesta tipada
func filaARespuesta(fila []string, indices map[string]int) model.Respuesta {
	campo := func(col string) string {
		idx, ok := indices[col]
		if !ok || idx >= len(fila) {
			return ""
		}
		return strings.TrimSpace(fila[idx])
	}

	return model.Respuesta{
		Timestamp:     parsearFecha(campo(model.ColTimestamp)),
		Email:         campo(model.ColEmail),
		Materia:       campo(model.ColMateria),
		Paralelo:      campo(model.ColParalelo),
		Aprendizaje:   campo(model.ColAprendizaje),
		Confusion:     campo(model.ColConfusion),
		Preguntas:     campo(model.ColPreguntas),
		Comprension:   campo(model.ColComprension),
		Sugerencia:    campo(model.ColSugerencia),
		Participacion: campo(model.ColParticipacion),
		Calificacion:  campo(model.ColCalificacion),
	}
}

// parsearFecha intenta los formatos conocidos; si ninguno coincide
// devuelve el valor cero (la fila se conserva igualmente)
func parsearFecha(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, formato := range formatosFecha {
		if t, err := time.Parse(formato, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
