package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/report"
)

// ListarReportes estado y contenido de los seis reportes
// GET /api/reportes
func (h *Handler) ListarReportes(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Reportes())
}

// GenerarReporte genera el reporte indicado por :tipo
//
// Los cuatro reportes de análisis no llevan cuerpo; el plan recibe los
// cinco campos del docente en JSON; la guía requiere que el plan ya
// tenga contenido.
// POST /api/reportes/:tipo/generar
func (h *Handler) GenerarReporte(c *gin.Context) {
	tipo := model.TipoReporte(c.Param("tipo"))

	switch tipo {
	case model.ReportePlan:
		h.generarPlan(c)
	case model.ReporteGuia:
		h.generarGuia(c)
	default:
		h.generarInsight(c, tipo)
	}
}

func (h *Handler) generarInsight(c *gin.Context, tipo model.TipoReporte) {
	reporte, err := h.reportes.GenerarInsight(c.Request.Context(), tipo)
	if err != nil {
		if errors.Is(err, report.ErrTipoDesconocido) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reporte)
}

func (h *Handler) generarPlan(c *gin.Context) {
	var datos report.DatosPlan
	if err := c.ShouldBindJSON(&datos); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	reporte, err := h.reportes.GenerarPlan(c.Request.Context(), datos)
	if err != nil {
		var ev *report.ErrorValidacion
		if errors.As(err, &ev) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ev.Error(), "campo": ev.Campo})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reporte)
}

func (h *Handler) generarGuia(c *gin.Context) {
	reporte, err := h.reportes.GenerarGuia(c.Request.Context())
	if err != nil {
		if errors.Is(err, report.ErrPlanNoDisponible) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reporte)
}
