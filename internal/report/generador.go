// Package report construye los prompts y gestiona el ciclo de vida de
// los reportes generados con IA.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/llm"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/store"
)

// ErrTipoDesconocido el tipo no corresponde a un reporte de análisis
var ErrTipoDesconocido = errors.New("tipo de reporte desconocido")

// ErrPlanNoDisponible la guía requiere que el plan ya tenga contenido
var ErrPlanNoDisponible = errors.New("el plan de clase aún no está disponible")

// ErrorValidacion falta un campo obligatorio del plan de clase
type ErrorValidacion struct {
	Campo string
}

func (e *ErrorValidacion) Error() string {
	return fmt.Sprintf("el campo «%s» es obligatorio", e.Campo)
}

// Generador orquesta los seis reportes sobre el estado de la sesión
type Generador struct {
	store *store.Store
	llm   llm.Generador
}

// Nuevo crea el generador de reportes
func Nuevo(st *store.Store, servicio llm.Generador) *Generador {
	return &Generador{
		store: st,
		llm:   servicio,
	}
}

// GenerarInsight genera uno de los cuatro reportes de análisis sobre el
// subconjunto filtrado actual
//
// Si ninguna respuesta del campo es significativa, el reporte queda
// disponible de inmediato con el mensaje fijo y no se llama al servicio.
// Un fallo del servicio deja el reporte disponible con el error como
// contenido, sin propagarse: un reporte fallido no bloquea a los demás.
func (g *Generador) GenerarInsight(ctx context.Context, tipo model.TipoReporte) (model.Reporte, error) {
	campo := campoInsight(tipo)
	if campo == nil {
		return model.Reporte{}, fmt.Errorf("%w: %s", ErrTipoDesconocido, tipo)
	}

	significativas := respuestasSignificativas(g.store.Filtradas(), campo)
	if len(significativas) == 0 {
		return g.store.GuardarReporte(tipo, MensajeSinRespuestas, renderizarHTML(MensajeSinRespuestas), false), nil
	}

	g.store.MarcarGenerando(tipo)

	texto, err := g.llm.Generar(ctx, instruccionesInsight, promptInsight(tipo, significativas))
	if err != nil {
		return g.guardarError(tipo, err), nil
	}

	return g.store.GuardarReporte(tipo, texto, renderizarHTML(texto), false), nil
}

// GenerarPlan genera el plan de clase a partir de los cinco campos del
// docente y del contenido actual de los reportes de confusiones y
// preguntas (con marcador si aún no existen)
func (g *Generador) GenerarPlan(ctx context.Context, datos DatosPlan) (model.Reporte, error) {
	if err := datos.Validar(); err != nil {
		return model.Reporte{}, err
	}

	confusiones := ""
	if r, ok := g.store.Reporte(model.ReporteConfusiones); ok && r.TieneContenido() {
		confusiones = r.Contenido
	}
	preguntas := ""
	if r, ok := g.store.Reporte(model.ReportePreguntas); ok && r.TieneContenido() {
		preguntas = r.Contenido
	}

	g.store.MarcarGenerando(model.ReportePlan)

	texto, err := g.llm.Generar(ctx, instruccionesPlan, promptPlan(datos, confusiones, preguntas))
	if err != nil {
		return g.guardarError(model.ReportePlan, err), nil
	}

	return g.store.GuardarReporte(model.ReportePlan, texto, renderizarHTML(texto), false), nil
}

// GenerarGuia transforma el plan ya generado en una guía de estudio
//
// Si el plan todavía se está generando o no tiene contenido, no hace
// nada y devuelve ErrPlanNoDisponible; el estado de la guía no cambia.
func (g *Generador) GenerarGuia(ctx context.Context) (model.Reporte, error) {
	plan, ok := g.store.Reporte(model.ReportePlan)
	if !ok || !plan.TieneContenido() {
		return model.Reporte{}, ErrPlanNoDisponible
	}

	g.store.MarcarGenerando(model.ReporteGuia)

	texto, err := g.llm.Generar(ctx, instruccionesGuia, promptGuia(plan.Contenido))
	if err != nil {
		return g.guardarError(model.ReporteGuia, err), nil
	}

	return g.store.GuardarReporte(model.ReporteGuia, texto, renderizarHTML(texto), false), nil
}

func (g *Generador) guardarError(tipo model.TipoReporte, err error) model.Reporte {
	mensaje := "No se pudo generar el reporte: " + err.Error()
	return g.store.GuardarReporte(tipo, mensaje, renderizarHTML(mensaje), true)
}
