package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/filter"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/stats"
)

// OpcionesFiltroResponse valores disponibles para los controles
type OpcionesFiltroResponse struct {
	Materias  []string `json:"materias"`
	Paralelos []string `json:"paralelos"`
}

// OpcionesFiltro valores distintos de materia y paralelo
// GET /api/filtros/opciones
func (h *Handler) OpcionesFiltro(c *gin.Context) {
	materias, paralelos := filter.Opciones(h.store.Respuestas())

	if materias == nil {
		materias = []string{}
	}
	if paralelos == nil {
		paralelos = []string{}
	}

	c.JSON(http.StatusOK, OpcionesFiltroResponse{
		Materias:  materias,
		Paralelos: paralelos,
	})
}

// AplicarFiltroResponse filtro aplicado más el resumen recalculado
type AplicarFiltroResponse struct {
	Filtro  model.Filtro  `json:"filtro"`
	Resumen stats.Resumen `json:"resumen"`
}

// AplicarFiltro fija el filtro aplicado y reinicia los reportes
// POST /api/filtros/aplicar
func (h *Handler) AplicarFiltro(c *gin.Context) {
	var filtro model.Filtro
	if err := c.ShouldBindJSON(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	if !filter.FechaValida(filtro.FechaInicio) || !filter.FechaValida(filtro.FechaFin) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Las fechas deben tener el formato YYYY-MM-DD"})
		return
	}

	h.store.AplicarFiltro(filtro)

	c.JSON(http.StatusOK, AplicarFiltroResponse{
		Filtro:  filtro,
		Resumen: stats.Calcular(h.store.Filtradas()),
	})
}

// GetResumen estadísticas del subconjunto filtrado actual
// GET /api/resumen
func (h *Handler) GetResumen(c *gin.Context) {
	c.JSON(http.StatusOK, stats.Calcular(h.store.Filtradas()))
}
