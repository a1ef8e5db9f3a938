package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/exporter"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/stats"
)

const tituloInforme = "Informe de retroalimentación de clase"

// duración del enlace de descarga de un PDF exportado
const ttlDescarga = 10 * time.Minute

// ExportarPDF arma el informe PDF sobre el subconjunto filtrado y
// devuelve un enlace de descarga de un solo uso
// POST /api/export/pdf
func (h *Handler) ExportarPDF(c *gin.Context) {
	respuestas := h.store.Filtradas()
	if len(respuestas) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "No hay respuestas para exportar con el filtro actual"})
		return
	}

	datos := exporter.DatosPDF{
		Titulo:   tituloInforme,
		Filtro:   h.store.Filtro(),
		Resumen:  stats.Calcular(respuestas),
		Graficos: h.graficosInforme(respuestas),
		Reportes: h.store.Reportes(),
	}

	contenido, err := exporter.PDF(datos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el PDF: " + err.Error()})
		return
	}

	ruta := filepath.Join(os.TempDir(), fmt.Sprintf("planclase_export_%s.pdf", uuid.NewString()))
	if err := os.WriteFile(ruta, contenido, 0o600); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo escribir el archivo exportado: " + err.Error()})
		return
	}

	nombre := exporter.NombreArchivo(h.stemExport, time.Now())
	token := h.descargas.put(ruta, nombre, ttlDescarga)

	c.JSON(http.StatusOK, gin.H{
		"downloadUrl": "/api/export/descargar/" + token,
		"nombre":      nombre,
	})
}

// graficosInforme renderiza los tres gráficos del panel; los que no
// tienen datos simplemente se omiten del informe
func (h *Handler) graficosInforme(respuestas []model.Respuesta) []exporter.Grafico {
	tipos := []struct {
		tipo   string
		titulo string
	}{
		{"materias", "Respuestas por materia"},
		{"comprension", "Nivel de comprensión"},
		{"calificaciones", "Distribución de calificaciones"},
	}

	graficos := make([]exporter.Grafico, 0, len(tipos))
	for _, t := range tipos {
		png, err := h.renderizarGrafico(t.tipo, respuestas)
		if err != nil {
			continue
		}
		graficos = append(graficos, exporter.Grafico{Titulo: t.titulo, PNG: png})
	}
	return graficos
}

// DescargarExport entrega un PDF exportado y consume el token
// GET /api/export/descargar/:token
func (h *Handler) DescargarExport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Falta el token de descarga"})
		return
	}

	item, ok := h.descargas.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "El enlace de descarga ya no es válido"})
		return
	}

	if _, err := os.Stat(item.ruta); err != nil {
		h.descargas.delete(token)
		c.JSON(http.StatusNotFound, gin.H{"error": "El archivo exportado ya no existe"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", item.nombre))
	c.Header("Content-Type", "application/pdf")
	c.File(item.ruta)

	h.descargas.delete(token)
	_ = os.Remove(item.ruta)
}

// ExportarXLSX descarga las respuestas filtradas como libro de Excel
// GET /api/export/xlsx
func (h *Handler) ExportarXLSX(c *gin.Context) {
	respuestas := h.store.Filtradas()
	if len(respuestas) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "No hay respuestas para exportar con el filtro actual"})
		return
	}

	libro, err := exporter.XLSX(respuestas)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el XLSX: " + err.Error()})
		return
	}

	nombre := fmt.Sprintf("respuestas_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := libro.Write(c.Writer); err != nil {
		// ya se empezó a escribir la respuesta; solo queda registrarlo
		_ = c.Error(err)
	}
}
