package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
)

// StatusResponse estado general de la sesión
type StatusResponse struct {
	Inicializado      bool                                        `json:"inicializado"`      // hay datos importados
	TotalRespuestas   int                                         `json:"totalRespuestas"`   // conjunto completo
	TotalFiltradas    int                                         `json:"totalFiltradas"`    // subconjunto filtrado
	Filtro            model.Filtro                                `json:"filtro"`            // filtro aplicado
	Reportes          map[model.TipoReporte]model.EstadoReporte   `json:"reportes"`          // estado por tipo
	UltimaImportacion string                                      `json:"ultimaImportacion"` // vacío si nunca se importó
}

// GetStatus estado de la sesión
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	total := h.store.Total()

	estados := make(map[model.TipoReporte]model.EstadoReporte)
	for _, r := range h.store.Reportes() {
		estados[r.Tipo] = r.Estado
	}

	ultima := ""
	if t := h.store.ImportadoEn(); !t.IsZero() {
		ultima = t.Format("2006-01-02 15:04:05")
	}

	c.JSON(http.StatusOK, StatusResponse{
		Inicializado:      total > 0,
		TotalRespuestas:   total,
		TotalFiltradas:    len(h.store.Filtradas()),
		Filtro:            h.store.Filtro(),
		Reportes:          estados,
		UltimaImportacion: ultima,
	})
}
