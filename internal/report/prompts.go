package report

import (
	"fmt"
	"strings"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
)

// Preámbulo de sistema para los cuatro reportes de análisis
const instruccionesInsight = "Eres un asistente pedagógico que ayuda a docentes universitarios a " +
	"analizar la retroalimentación de sus estudiantes. Responde siempre en español, " +
	"de forma clara y concisa, en formato Markdown. No inventes respuestas que no " +
	"estén en los datos."

// Preámbulo de sistema para el plan de clase
const instruccionesPlan = "Eres un diseñador instruccional experto en educación superior. " +
	"Elaboras planes de clase estructurados en Markdown, con momentos de inicio, " +
	"desarrollo y cierre, tiempos estimados, actividades y forma de evaluación. " +
	"Respondes siempre en español."

// Preámbulo de sistema para la guía de estudio derivada del plan
const instruccionesGuia = "Eres un pedagogo que convierte planes de clase en guías de estudio " +
	"dirigidas a los estudiantes. La guía debe estar en español, en Markdown, con " +
	"lenguaje cercano, conceptos clave, actividades de práctica y preguntas de " +
	"autoevaluación."

// MensajeSinRespuestas contenido fijo cuando ninguna respuesta del campo
// es significativa; en ese caso no se llama al servicio de generación
const MensajeSinRespuestas = "No hay respuestas significativas para generar este reporte con el filtro actual."

// MensajePendiente marcador usado al componer el plan cuando un reporte
// previo todavía no fue generado
const MensajePendiente = "(aún no generado)"

// Tokens que cuentan como "no respuesta" (comparación sin mayúsculas)
var tokensNoRespuesta = map[string]bool{
	"no":      true,
	"ninguna": true,
	"ninguno": true,
	"nada":    true,
	".":       true,
}

// encabezados contextuales por tipo de reporte de análisis
var contextoInsight = map[model.TipoReporte]string{
	model.ReporteAprendizajes: "A continuación están las respuestas de los estudiantes sobre lo más " +
		"importante que aprendieron en la clase. Identifica los temas más mencionados y " +
		"resume los aprendizajes principales en una lista breve:",
	model.ReporteConfusiones: "A continuación están las respuestas de los estudiantes sobre qué parte " +
		"de la clase les resultó más confusa. Identifica los puntos de confusión más " +
		"frecuentes y explica brevemente por qué pueden resultar difíciles:",
	model.ReportePreguntas: "A continuación están las preguntas que a los estudiantes les quedaron " +
		"pendientes. Agrúpalas por tema y señala cuáles convendría responder primero:",
	model.ReporteSugerencias: "A continuación están las sugerencias de los estudiantes para mejorar " +
		"la clase. Resume las más repetidas y propón acciones concretas para el docente:",
}

// campoInsight selecciona el campo de texto libre que alimenta cada
// reporte de análisis
func campoInsight(tipo model.TipoReporte) func(model.Respuesta) string {
	switch tipo {
	case model.ReporteAprendizajes:
		return func(r model.Respuesta) string { return r.Aprendizaje }
	case model.ReporteConfusiones:
		return func(r model.Respuesta) string { return r.Confusion }
	case model.ReportePreguntas:
		return func(r model.Respuesta) string { return r.Preguntas }
	case model.ReporteSugerencias:
		return func(r model.Respuesta) string { return r.Sugerencia }
	default:
		return nil
	}
}

// respuestasSignificativas descarta vacíos y los tokens de "no respuesta"
func respuestasSignificativas(respuestas []model.Respuesta, campo func(model.Respuesta) string) []string {
	significativas := make([]string, 0, len(respuestas))
	for _, r := range respuestas {
		texto := strings.TrimSpace(campo(r))
		if texto == "" || tokensNoRespuesta[strings.ToLower(texto)] {
			continue
		}
		significativas = append(significativas, texto)
	}
	return significativas
}

// promptInsight arma el contenido de usuario para un reporte de análisis
func promptInsight(tipo model.TipoReporte, significativas []string) string {
	var b strings.Builder
	b.WriteString(contextoInsight[tipo])
	b.WriteString("\n\n")
	for _, texto := range significativas {
		b.WriteString("- ")
		b.WriteString(texto)
		b.WriteString("\n")
	}
	return b.String()
}

// DatosPlan los cinco campos obligatorios que el docente aporta para el
// plan de clase
type DatosPlan struct {
	Tema     string `json:"tema"`
	Objetivo string `json:"objetivo"`
	Duracion string `json:"duracion"`
	Nivel    string `json:"nivel"`
	Recursos string `json:"recursos"`
}

// Validar comprueba que los cinco campos tengan contenido; devuelve un
// ErrorValidacion con el primer campo faltante
func (d DatosPlan) Validar() error {
	campos := []struct {
		nombre string
		valor  string
	}{
		{"tema", d.Tema},
		{"objetivo", d.Objetivo},
		{"duracion", d.Duracion},
		{"nivel", d.Nivel},
		{"recursos", d.Recursos},
	}
	for _, c := range campos {
		if strings.TrimSpace(c.valor) == "" {
			return &ErrorValidacion{Campo: c.nombre}
		}
	}
	return nil
}

// promptPlan compone el contenido de usuario del plan a partir de los
// datos del docente y de los reportes de confusiones y preguntas
func promptPlan(datos DatosPlan, confusiones, preguntas string) string {
	if strings.TrimSpace(confusiones) == "" {
		confusiones = MensajePendiente
	}
	if strings.TrimSpace(preguntas) == "" {
		preguntas = MensajePendiente
	}

	return fmt.Sprintf(`Elabora el plan para la próxima sesión de clase con estos datos:

- Tema: %s
- Objetivo de aprendizaje: %s
- Duración: %s
- Nivel del grupo: %s
- Recursos disponibles: %s

Ten en cuenta la retroalimentación de la clase anterior.

Confusiones detectadas:
%s

Preguntas pendientes de los estudiantes:
%s`,
		datos.Tema, datos.Objetivo, datos.Duracion, datos.Nivel, datos.Recursos,
		confusiones, preguntas)
}

// promptGuia pide transformar el plan ya generado en una guía de estudio
func promptGuia(plan string) string {
	return "Transforma el siguiente plan de clase en una guía de estudio para los estudiantes:\n\n" + plan
}
