package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/importer"
)

// ImportarRequest solicitud de importación
type ImportarRequest struct {
	URL string `json:"url" binding:"required"`
}

// ImportarResponse resultado de una importación exitosa
type ImportarResponse struct {
	Importadas int `json:"importadas"`
}

// Importar descarga la hoja de cálculo y reemplaza el conjunto completo
// POST /api/importar
//
// La importación es todo o nada: cualquier error deja el conjunto
// existente intacto y devuelve un único mensaje para el usuario.
func (h *Handler) Importar(c *gin.Context) {
	var req ImportarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida: falta la URL de la hoja"})
		return
	}

	respuestas, err := h.importador.Importar(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(codigoImportacion(err), gin.H{"error": err.Error()})
		return
	}

	h.store.ReemplazarRespuestas(respuestas)

	c.JSON(http.StatusOK, ImportarResponse{Importadas: len(respuestas)})
}

// codigoImportacion asigna el código HTTP según la taxonomía de errores
func codigoImportacion(err error) int {
	switch {
	case errors.Is(err, importer.ErrURLInvalida):
		return http.StatusBadRequest
	case errors.Is(err, importer.ErrEsquema), errors.Is(err, importer.ErrFormato):
		return http.StatusUnprocessableEntity
	case errors.Is(err, importer.ErrDescarga):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
