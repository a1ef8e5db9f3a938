package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/importer"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/report"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/store"
)

type generadorFijo struct{ respuesta string }

func (g generadorFijo) Generar(context.Context, string, string) (string, error) {
	return g.respuesta, nil
}

func routerDePrueba(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(st, importer.Nuevo(time.Second), report.Nuevo(st, generadorFijo{respuesta: "contenido generado"}), "reporte_clase")

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router
}

func respuestasDePrueba() []model.Respuesta {
	return []model.Respuesta{
		{
			Timestamp:    time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
			Email:        "a@uni.edu",
			Materia:      "Física",
			Paralelo:     "A",
			Aprendizaje:  "La segunda ley",
			Comprension:  "Alto",
			Calificacion: "9",
		},
		{
			Timestamp:    time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC),
			Email:        "b@uni.edu",
			Materia:      "Química",
			Paralelo:     "B",
			Aprendizaje:  "Enlaces iónicos",
			Comprension:  "Bajo",
			Calificacion: "5",
		},
	}
}

func doJSON(t *testing.T, router *gin.Engine, metodo, ruta string, cuerpo any) *httptest.ResponseRecorder {
	t.Helper()

	var lector *bytes.Reader
	if cuerpo != nil {
		b, err := json.Marshal(cuerpo)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		lector = bytes.NewReader(b)
	} else {
		lector = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(metodo, ruta, lector)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetStatus_SesionVacia(t *testing.T) {
	t.Parallel()

	router := routerDePrueba(store.Nuevo())

	w := doJSON(t, router, http.MethodGet, "/api/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}

	var resp StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Inicializado || resp.TotalRespuestas != 0 {
		t.Fatalf("unexpected status: %+v", resp)
	}
	if len(resp.Reportes) != len(model.TiposReporte()) {
		t.Fatalf("want %d reportes got %d", len(model.TiposReporte()), len(resp.Reportes))
	}
}

func TestImportar_URLInvalidaConservaElConjunto(t *testing.T) {
	t.Parallel()

	st := store.Nuevo()
	st.ReemplazarRespuestas(respuestasDePrueba())
	router := routerDePrueba(st)

	w := doJSON(t, router, http.MethodPost, "/api/importar", ImportarRequest{URL: "https://example.com/no-es-una-hoja"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 got %d: %s", w.Code, w.Body.String())
	}
	if st.Total() != 2 {
		t.Fatalf("existing set must stay intact, got %d", st.Total())
	}
}

func TestImportar_SinURL(t *testing.T) {
	t.Parallel()

	router := routerDePrueba(store.Nuevo())

	w := doJSON(t, router, http.MethodPost, "/api/importar", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 got %d", w.Code)
	}
}

func TestOpcionesFiltro(t *testing.T) {
	t.Parallel()

	st := store.Nuevo()
	st.ReemplazarRespuestas(respuestasDePrueba())
	router := routerDePrueba(st)

	w := doJSON(t, router, http.MethodGet, "/api/filtros/opciones", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}

	var resp OpcionesFiltroResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Materias) != 2 || resp.Materias[0] != "Física" {
		t.Fatalf("unexpected materias: %v", resp.Materias)
	}
}

func TestAplicarFiltro_RecalculaYReiniciaReportes(t *testing.T) {
	t.Parallel()

	st := store.Nuevo()
	st.ReemplazarRespuestas(respuestasDePrueba())
	st.GuardarReporte(model.ReportePlan, "contenido", "<p>contenido</p>", false)
	router := routerDePrueba(st)

	w := doJSON(t, router, http.MethodPost, "/api/filtros/aplicar", model.Filtro{Materia: "Física"})
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d: %s", w.Code, w.Body.String())
	}

	var resp AplicarFiltroResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Resumen.Total != 1 {
		t.Fatalf("want total 1 got %d", resp.Resumen.Total)
	}
	if r, _ := st.Reporte(model.ReportePlan); r.Estado != model.EstadoNoSolicitado {
		t.Fatalf("reports should reset, got %s", r.Estado)
	}
}

func TestAplicarFiltro_FechaInvalida(t *testing.T) {
	t.Parallel()

	router := routerDePrueba(store.Nuevo())

	w := doJSON(t, router, http.MethodPost, "/api/filtros/aplicar", model.Filtro{FechaInicio: "10/03/2025"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 got %d", w.Code)
	}
}

func TestGetGrafico_SinDatos(t *testing.T) {
	t.Parallel()

	router := routerDePrueba(store.Nuevo())

	w := doJSON(t, router, http.MethodGet, "/api/graficos/materias", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404 got %d", w.Code)
	}
}

func TestGetGrafico_TipoDesconocido(t *testing.T) {
	t.Parallel()

	st := store.Nuevo()
	st.ReemplazarRespuestas(respuestasDePrueba())
	router := routerDePrueba(st)

	w := doJSON(t, router, http.MethodGet, "/api/graficos/inexistente", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404 got %d", w.Code)
	}
}

func TestGetGrafico_PNG(t *testing.T) {
	t.Parallel()

	st := store.Nuevo()
	st.ReemplazarRespuestas(respuestasDePrueba())
	router := routerDePrueba(st)

	w := doJSON(t, router, http.MethodGet, "/api/graficos/materias", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}
	if tipo := w.Header().Get("Content-Type"); tipo != "image/png" {
		t.Fatalf("want image/png got %s", tipo)
	}
}

func TestGenerarReporte_Insight(t *testing.T) {
	t.Parallel()

	st := store.Nuevo()
	st.ReemplazarRespuestas(respuestasDePrueba())
	router := routerDePrueba(st)

	w := doJSON(t, router, http.MethodPost, "/api/reportes/aprendizajes/generar", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d: %s", w.Code, w.Body.String())
	}

	var reporte model.Reporte
	if err := json.Unmarshal(w.Body.Bytes(), &reporte); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if reporte.Contenido != "contenido generado" {
		t.Fatalf("unexpected contenido: %s", reporte.Contenido)
	}
}

func TestGenerarReporte_TipoDesconocido(t *testing.T) {
	t.Parallel()

	router := routerDePrueba(store.Nuevo())

	w := doJSON(t, router, http.MethodPost, "/api/reportes/inexistente/generar", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404 got %d", w.Code)
	}
}

func TestGenerarReporte_PlanIncompleto(t *testing.T) {
	t.Parallel()

	router := routerDePrueba(store.Nuevo())

	w := doJSON(t, router, http.MethodPost, "/api/reportes/plan/generar", report.DatosPlan{Tema: "Leyes de Newton"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["campo"] != "objetivo" {
		t.Fatalf("want campo objetivo got %q", resp["campo"])
	}
}

func TestGenerarReporte_GuiaSinPlan(t *testing.T) {
	t.Parallel()

	router := routerDePrueba(store.Nuevo())

	w := doJSON(t, router, http.MethodPost, "/api/reportes/guia/generar", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("want 409 got %d", w.Code)
	}
}

func TestExportarPDF_SinRespuestas(t *testing.T) {
	t.Parallel()

	router := routerDePrueba(store.Nuevo())

	w := doJSON(t, router, http.MethodPost, "/api/export/pdf", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("want 409 got %d", w.Code)
	}
}

func TestExportarPDF_DescargaUnSoloUso(t *testing.T) {
	t.Parallel()

	st := store.Nuevo()
	st.ReemplazarRespuestas(respuestasDePrueba())
	router := routerDePrueba(st)

	w := doJSON(t, router, http.MethodPost, "/api/export/pdf", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["downloadUrl"] == "" {
		t.Fatalf("missing downloadUrl: %s", w.Body.String())
	}

	descarga := doJSON(t, router, http.MethodGet, resp["downloadUrl"], nil)
	if descarga.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", descarga.Code)
	}
	if tipo := descarga.Header().Get("Content-Type"); tipo != "application/pdf" {
		t.Fatalf("want application/pdf got %s", tipo)
	}

	// el token se consume en la primera descarga
	repetida := doJSON(t, router, http.MethodGet, resp["downloadUrl"], nil)
	if repetida.Code != http.StatusNotFound {
		t.Fatalf("want 404 got %d", repetida.Code)
	}
}

func TestExportarXLSX(t *testing.T) {
	t.Parallel()

	st := store.Nuevo()
	st.ReemplazarRespuestas(respuestasDePrueba())
	router := routerDePrueba(st)

	w := doJSON(t, router, http.MethodGet, "/api/export/xlsx", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Fatalf("missing Content-Disposition")
	}
}
