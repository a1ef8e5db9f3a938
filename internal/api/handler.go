// Package api expone la API JSON que consume el panel.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/importer"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/report"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/store"
)

// Handler procesador de la API del panel
type Handler struct {
	store      *store.Store
	importador *importer.Importador
	reportes   *report.Generador
	descargas  *descargaStore
	stemExport string
}

// NewHandler crea el procesador de la API
func NewHandler(st *store.Store, imp *importer.Importador, rep *report.Generador, stemExport string) *Handler {
	if stemExport == "" {
		stemExport = "reporte_clase"
	}
	return &Handler{
		store:      st,
		importador: imp,
		reportes:   rep,
		descargas:  newDescargaStore(),
		stemExport: stemExport,
	}
}

// RegisterRoutes registra las rutas de la API
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// Estado de la sesión
	router.GET("/status", h.GetStatus)

	// Importación de respuestas
	router.POST("/importar", h.Importar)

	// Filtros
	router.GET("/filtros/opciones", h.OpcionesFiltro)
	router.POST("/filtros/aplicar", h.AplicarFiltro)

	// Estadísticas y gráficos
	router.GET("/resumen", h.GetResumen)
	router.GET("/graficos/:tipo", h.GetGrafico)

	// Reportes con IA
	router.GET("/reportes", h.ListarReportes)
	router.POST("/reportes/:tipo/generar", h.GenerarReporte)

	// Exportación
	router.POST("/export/pdf", h.ExportarPDF)
	router.GET("/export/descargar/:token", h.DescargarExport)
	router.GET("/export/xlsx", h.ExportarXLSX)
}
