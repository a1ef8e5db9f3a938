package stats

import (
	"strings"
	"testing"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
)

func TestPrioritarias_Severidades(t *testing.T) {
	t.Parallel()

	respuestas := []model.Respuesta{
		{Email: "ok@uni.edu", Calificacion: "9", Comprension: "Alto"},
		{Email: "cal@uni.edu", Calificacion: "5", Comprension: "Alto"},
		{Email: "comp@uni.edu", Calificacion: "9", Comprension: "Bajo"},
		{Email: "ambas@uni.edu", Calificacion: "5", Comprension: "Bajo"},
	}

	alertas := Prioritarias(respuestas)
	if len(alertas) != 3 {
		t.Fatalf("want 3 alertas got %d", len(alertas))
	}

	// orden por severidad descendente
	if alertas[0].Severidad != SeveridadAlta || alertas[0].Respuesta.Email != "ambas@uni.edu" {
		t.Fatalf("unexpected first alert: %+v", alertas[0])
	}
	if alertas[1].Severidad != SeveridadMedia || alertas[1].Respuesta.Email != "comp@uni.edu" {
		t.Fatalf("unexpected second alert: %+v", alertas[1])
	}
	if alertas[2].Severidad != SeveridadBaja || alertas[2].Respuesta.Email != "cal@uni.edu" {
		t.Fatalf("unexpected third alert: %+v", alertas[2])
	}
}

func TestPrioritarias_UmbralInclusivo(t *testing.T) {
	t.Parallel()

	respuestas := []model.Respuesta{
		{Email: "siete@uni.edu", Calificacion: "7", Comprension: "Alto"},
		{Email: "ocho@uni.edu", Calificacion: "8", Comprension: "Alto"},
	}

	alertas := Prioritarias(respuestas)
	if len(alertas) != 1 {
		t.Fatalf("want 1 alerta got %d", len(alertas))
	}
	if alertas[0].Respuesta.Email != "siete@uni.edu" {
		t.Fatalf("unexpected alert: %+v", alertas[0])
	}
	if !strings.Contains(alertas[0].Motivo, "7") {
		t.Fatalf("motivo should include the score: %s", alertas[0].Motivo)
	}
}

func TestPrioritarias_CalificacionIlegibleNoAlerta(t *testing.T) {
	t.Parallel()

	// una calificación no numérica no cuenta como baja por sí sola
	respuestas := []model.Respuesta{
		{Email: "raro@uni.edu", Calificacion: "regular", Comprension: "Alto"},
	}

	if alertas := Prioritarias(respuestas); len(alertas) != 0 {
		t.Fatalf("want 0 alertas got %d", len(alertas))
	}
}

func TestPrioritarias_OrdenEstableDentroDeSeveridad(t *testing.T) {
	t.Parallel()

	respuestas := []model.Respuesta{
		{Email: "a@uni.edu", Calificacion: "3", Comprension: "Bajo"},
		{Email: "b@uni.edu", Calificacion: "4", Comprension: "Bajo"},
	}

	alertas := Prioritarias(respuestas)
	if len(alertas) != 2 {
		t.Fatalf("want 2 alertas got %d", len(alertas))
	}
	if alertas[0].Respuesta.Email != "a@uni.edu" || alertas[1].Respuesta.Email != "b@uni.edu" {
		t.Fatalf("stable order expected: %+v", alertas)
	}
}
