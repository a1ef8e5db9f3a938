package filter

import (
	"reflect"
	"testing"
	"time"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
)

func respuesta(dia string, materia, paralelo string) model.Respuesta {
	ts, _ := time.Parse("2006-01-02 15:04:05", dia)
	return model.Respuesta{Timestamp: ts, Materia: materia, Paralelo: paralelo}
}

func TestAplicar_FiltroVacioDevuelveTodo(t *testing.T) {
	t.Parallel()

	respuestas := []model.Respuesta{
		respuesta("2025-03-10 08:00:00", "Física", "A"),
		respuesta("2025-03-11 09:00:00", "Química", "B"),
	}

	got := Aplicar(respuestas, model.Filtro{})
	if len(got) != len(respuestas) {
		t.Fatalf("want %d got %d", len(respuestas), len(got))
	}
	if !reflect.DeepEqual(got, respuestas) {
		t.Fatalf("order should be preserved")
	}
}

func TestAplicar_FechasInclusivas(t *testing.T) {
	t.Parallel()

	respuestas := []model.Respuesta{
		respuesta("2025-03-09 23:59:59", "Física", "A"),
		respuesta("2025-03-10 00:00:00", "Física", "A"),
		respuesta("2025-03-10 23:59:59", "Física", "A"),
		respuesta("2025-03-11 00:00:00", "Física", "A"),
	}

	got := Aplicar(respuestas, model.Filtro{FechaInicio: "2025-03-10", FechaFin: "2025-03-10"})
	if len(got) != 2 {
		t.Fatalf("want 2 got %d", len(got))
	}
	// el día entero es inclusivo en ambos extremos
	if got[0].Timestamp.Hour() != 0 || got[1].Timestamp.Hour() != 23 {
		t.Fatalf("unexpected subset: %v", got)
	}
}

func TestAplicar_CombinaConAND(t *testing.T) {
	t.Parallel()

	respuestas := []model.Respuesta{
		respuesta("2025-03-10 08:00:00", "Física", "A"),
		respuesta("2025-03-10 08:00:00", "Física", "B"),
		respuesta("2025-03-10 08:00:00", "Química", "A"),
	}

	got := Aplicar(respuestas, model.Filtro{Materia: "Física", Paralelo: "A"})
	if len(got) != 1 {
		t.Fatalf("want 1 got %d", len(got))
	}
	if got[0].Materia != "Física" || got[0].Paralelo != "A" {
		t.Fatalf("unexpected respuesta: %+v", got[0])
	}
}

func TestAplicar_SinCoincidenciasDevuelveVacio(t *testing.T) {
	t.Parallel()

	respuestas := []model.Respuesta{
		respuesta("2025-03-10 08:00:00", "Física", "A"),
	}

	got := Aplicar(respuestas, model.Filtro{Materia: "Historia"})
	if len(got) != 0 {
		t.Fatalf("want 0 got %d", len(got))
	}
	if got == nil {
		t.Fatalf("want empty slice, not nil")
	}
}

func TestAplicar_NoMutaLaEntrada(t *testing.T) {
	t.Parallel()

	respuestas := []model.Respuesta{
		respuesta("2025-03-10 08:00:00", "Física", "A"),
		respuesta("2025-03-11 08:00:00", "Química", "B"),
	}
	antes := make([]model.Respuesta, len(respuestas))
	copy(antes, respuestas)

	_ = Aplicar(respuestas, model.Filtro{Materia: "Física"})

	if !reflect.DeepEqual(respuestas, antes) {
		t.Fatalf("input slice was mutated")
	}
}

func TestOpciones_DistintosOrdenados(t *testing.T) {
	t.Parallel()

	respuestas := []model.Respuesta{
		respuesta("2025-03-10 08:00:00", "Química", "B"),
		respuesta("2025-03-10 08:00:00", "Física", "A"),
		respuesta("2025-03-10 08:00:00", "Química", "A"),
		respuesta("2025-03-10 08:00:00", "Física", ""),
	}

	materias, paralelos := Opciones(respuestas)
	if !reflect.DeepEqual(materias, []string{"Física", "Química"}) {
		t.Fatalf("unexpected materias: %v", materias)
	}
	if !reflect.DeepEqual(paralelos, []string{"A", "B"}) {
		t.Fatalf("unexpected paralelos: %v", paralelos)
	}
}

func TestFechaValida(t *testing.T) {
	t.Parallel()

	validas := []string{"", "2025-03-10", "2024-02-29"}
	for _, s := range validas {
		if !FechaValida(s) {
			t.Fatalf("%q should be valid", s)
		}
	}

	invalidas := []string{"10/03/2025", "2025-13-01", "ayer", "2025-03-10 08:00:00"}
	for _, s := range invalidas {
		if FechaValida(s) {
			t.Fatalf("%q should be invalid", s)
		}
	}
}
