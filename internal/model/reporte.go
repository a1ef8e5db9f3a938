package model

import "time"

// TipoReporte identifica cada reporte generado con IA
type TipoReporte string

const (
	ReporteAprendizajes TipoReporte = "aprendizajes"
	ReporteConfusiones  TipoReporte = "confusiones"
	ReportePreguntas    TipoReporte = "preguntas"
	ReporteSugerencias  TipoReporte = "sugerencias"
	ReportePlan         TipoReporte = "plan"
	ReporteGuia         TipoReporte = "guia"
)

// TiposReporte todos los tipos, en el orden en que se muestran
func TiposReporte() []TipoReporte {
	return []TipoReporte{
		ReporteAprendizajes,
		ReporteConfusiones,
		ReportePreguntas,
		ReporteSugerencias,
		ReportePlan,
		ReporteGuia,
	}
}

// EsInsight indica si el tipo es uno de los cuatro reportes independientes
// derivados de un campo de texto libre (los dependientes son plan y guía)
func (t TipoReporte) EsInsight() bool {
	switch t {
	case ReporteAprendizajes, ReporteConfusiones, ReportePreguntas, ReporteSugerencias:
		return true
	}
	return false
}

// EstadoReporte estado del ciclo de vida de un reporte
type EstadoReporte string

const (
	EstadoNoSolicitado EstadoReporte = "no_solicitado"
	EstadoGenerando    EstadoReporte = "generando"
	EstadoDisponible   EstadoReporte = "disponible"
)

// Reporte estado y contenido de un reporte generado
//
// Transiciones: no_solicitado → generando → disponible. Un fallo del
// servicio de generación también termina en disponible, con EsError y un
// mensaje en el contenido, para no bloquear el resto de la interfaz.
type Reporte struct {
	Tipo       TipoReporte   `json:"tipo"`
	Estado     EstadoReporte `json:"estado"`
	Contenido  string        `json:"contenido,omitempty"` // markdown original
	HTML       string        `json:"html,omitempty"`      // contenido renderizado
	EsError    bool          `json:"esError,omitempty"`
	GeneradoEn time.Time     `json:"generadoEn,omitzero"`
}

// TieneContenido indica si el reporte está disponible con contenido útil
// (no un mensaje de error)
func (r Reporte) TieneContenido() bool {
	return r.Estado == EstadoDisponible && !r.EsError && r.Contenido != ""
}
