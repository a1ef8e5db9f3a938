package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/chart"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/stats"
)

// GetGrafico genera un gráfico PNG sobre el subconjunto filtrado
// GET /api/graficos/:tipo
func (h *Handler) GetGrafico(c *gin.Context) {
	tipo := c.Param("tipo")

	png, err := h.renderizarGrafico(tipo, h.store.Filtradas())
	if err != nil {
		switch {
		case errors.Is(err, chart.ErrSinDatos):
			c.JSON(http.StatusNotFound, gin.H{"error": "No hay datos para graficar con el filtro actual"})
		case errors.Is(err, errGraficoDesconocido):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tipo de gráfico desconocido: " + tipo})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

var errGraficoDesconocido = errors.New("unknown chart type")

func (h *Handler) renderizarGrafico(tipo string, respuestas []model.Respuesta) ([]byte, error) {
	switch tipo {
	case "materias":
		grupos := stats.AgruparConteos(respuestas, func(r model.Respuesta) string { return r.Materia }, nil)
		return chart.Pastel("Respuestas por materia", grupos)
	case "comprension":
		grupos := stats.AgruparConteos(respuestas, func(r model.Respuesta) string { return r.Comprension }, stats.EtiquetasComprension())
		return chart.Pastel("Nivel de comprensión", grupos)
	case "calificaciones":
		grupos := stats.GruposCalificacion(respuestas)
		return chart.Barras("Distribución de calificaciones", grupos)
	default:
		return nil, errGraficoDesconocido
	}
}
