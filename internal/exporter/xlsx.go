package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
)

const hojaRespuestas = "Respuestas"

// XLSX arma un libro con las respuestas filtradas, una fila por
// respuesta y los encabezados del formulario
func XLSX(respuestas []model.Respuesta) (*excelize.File, error) {
	f := excelize.NewFile()

	indice, err := f.NewSheet(hojaRespuestas)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(indice)

	encabezados := model.ColumnasRequeridas()
	fila := make([]interface{}, len(encabezados))
	for i, h := range encabezados {
		fila[i] = h
	}
	if err := f.SetSheetRow(hojaRespuestas, "A1", &fila); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range respuestas {
		marca := ""
		if !r.Timestamp.IsZero() {
			marca = r.Timestamp.Format("2006-01-02 15:04:05")
		}
		fila := []interface{}{
			marca,
			r.Email,
			r.Materia,
			r.Paralelo,
			r.Aprendizaje,
			r.Confusion,
			r.Preguntas,
			r.Comprension,
			r.Sugerencia,
			r.Participacion,
			r.Calificacion,
		}
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(hojaRespuestas, celda, &fila); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f, nil
}
