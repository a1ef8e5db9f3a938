// Package exporter genera los documentos descargables del panel: el
// informe PDF paginado y el libro XLSX con las respuestas filtradas.
package exporter

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/stats"
)

// NombreArchivo nombre del PDF exportado: <stem>_<YYYY-MM-DD>.pdf
func NombreArchivo(stem string, fecha time.Time) string {
	if stem == "" {
		stem = "reporte"
	}
	return fmt.Sprintf("%s_%s.pdf", stem, fecha.Format("2006-01-02"))
}

// Grafico un gráfico ya renderizado listo para incrustar
type Grafico struct {
	Titulo string
	PNG    []byte
}

// DatosPDF todo lo que entra al informe
type DatosPDF struct {
	Titulo   string
	Filtro   model.Filtro
	Resumen  stats.Resumen
	Graficos []Grafico
	Reportes []model.Reporte
}

// PDF arma el informe paginado: resumen, gráficos y reportes generados
func PDF(datos DatosPDF) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)

	// Portada con resumen
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(datos.Titulo), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Generado el "+time.Now().Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	escribirFiltro(pdf, tr, datos.Filtro)
	escribirResumen(pdf, tr, datos.Resumen)
	escribirPrioritarias(pdf, tr, datos.Resumen.Prioritarias)

	// Un gráfico por página
	for i, g := range datos.Graficos {
		if len(g.PNG) == 0 {
			continue
		}
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 10, tr(g.Titulo), "", 1, "L", false, 0, "")

		nombre := fmt.Sprintf("grafico-%d", i)
		pdf.RegisterImageOptionsReader(nombre, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(g.PNG))
		pdf.ImageOptions(nombre, 15, 35, 180, 0, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	// Reportes disponibles, uno por página
	for _, r := range datos.Reportes {
		if !r.TieneContenido() {
			continue
		}
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 10, tr(tituloReporte(r.Tipo)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(r.Contenido), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to build pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func escribirFiltro(pdf *fpdf.Fpdf, tr func(string) string, f model.Filtro) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, tr("Filtro aplicado"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	if f.Vacio() {
		pdf.CellFormat(0, 6, tr("Todas las respuestas (sin filtro)"), "", 1, "L", false, 0, "")
		pdf.Ln(2)
		return
	}

	lineas := []struct{ nombre, valor string }{
		{"Desde", f.FechaInicio},
		{"Hasta", f.FechaFin},
		{"Materia", f.Materia},
		{"Paralelo", f.Paralelo},
	}
	for _, l := range lineas {
		if l.valor == "" {
			continue
		}
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s: %s", l.nombre, l.valor)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
}

func escribirResumen(pdf *fpdf.Fpdf, tr func(string) string, r stats.Resumen) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, tr("Resumen"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Respuestas: %d", r.Total)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Calificación promedio: "+r.Promedio), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Nivel de comprensión: "+r.NivelComprension), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func escribirPrioritarias(pdf *fpdf.Fpdf, tr func(string) string, alertas []stats.Alerta) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, tr("Estudiantes que requieren atención"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	if len(alertas) == 0 {
		pdf.CellFormat(0, 6, tr("Ninguno con el filtro actual"), "", 1, "L", false, 0, "")
		return
	}
	for _, a := range alertas {
		linea := fmt.Sprintf("[%s] %s: %s", a.Severidad, a.Respuesta.Email, a.Motivo)
		pdf.MultiCell(0, 5, tr(linea), "", "L", false)
	}
}

func tituloReporte(tipo model.TipoReporte) string {
	switch tipo {
	case model.ReporteAprendizajes:
		return "Aprendizajes principales"
	case model.ReporteConfusiones:
		return "Puntos de confusión"
	case model.ReportePreguntas:
		return "Preguntas pendientes"
	case model.ReporteSugerencias:
		return "Sugerencias de mejora"
	case model.ReportePlan:
		return "Plan de clase"
	case model.ReporteGuia:
		return "Guía de estudio"
	default:
		return string(tipo)
	}
}
