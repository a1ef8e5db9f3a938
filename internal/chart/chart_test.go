package chart

import (
	"bytes"
	"errors"
	"testing"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/stats"
)

var firmaPNG = []byte{0x89, 'P', 'N', 'G'}

func TestPastel_GeneraPNG(t *testing.T) {
	t.Parallel()

	grupos := []stats.Grupo{
		{Etiqueta: "Física", Cantidad: 3},
		{Etiqueta: "Química", Cantidad: 2},
	}

	png, err := Pastel("Respuestas por materia", grupos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(png, firmaPNG) {
		t.Fatalf("output is not a PNG")
	}
}

func TestBarras_GeneraPNG(t *testing.T) {
	t.Parallel()

	grupos := []stats.Grupo{
		{Etiqueta: "7", Cantidad: 1},
		{Etiqueta: "9", Cantidad: 4},
	}

	png, err := Barras("Distribución de calificaciones", grupos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(png, firmaPNG) {
		t.Fatalf("output is not a PNG")
	}
}

func TestSinDatos(t *testing.T) {
	t.Parallel()

	if _, err := Pastel("vacío", nil); !errors.Is(err, ErrSinDatos) {
		t.Fatalf("want ErrSinDatos got %v", err)
	}
	if _, err := Barras("vacío", nil); !errors.Is(err, ErrSinDatos) {
		t.Fatalf("want ErrSinDatos got %v", err)
	}
}
