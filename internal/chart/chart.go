// Package chart renderiza los gráficos del panel como PNG en el servidor.
package chart

import (
	"bytes"
	"errors"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/stats"
)

// ErrSinDatos el subconjunto filtrado no tiene datos que graficar; el
// panel muestra el marcador "sin datos" en lugar del gráfico
var ErrSinDatos = errors.New("sin datos para graficar")

const (
	ancho = 640
	alto  = 420
)

// Pastel gráfico de proporciones (distribución por materia o por nivel
// de comprensión)
func Pastel(titulo string, grupos []stats.Grupo) ([]byte, error) {
	if len(grupos) == 0 {
		return nil, ErrSinDatos
	}

	valores := make([]gochart.Value, 0, len(grupos))
	for _, g := range grupos {
		valores = append(valores, gochart.Value{
			Label: fmt.Sprintf("%s (%d)", g.Etiqueta, g.Cantidad),
			Value: float64(g.Cantidad),
		})
	}

	grafico := gochart.PieChart{
		Title:  titulo,
		Width:  ancho,
		Height: alto,
		Values: valores,
	}

	var buf bytes.Buffer
	if err := grafico.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

// Barras gráfico de barras ordenado (distribución de calificaciones)
func Barras(titulo string, grupos []stats.Grupo) ([]byte, error) {
	if len(grupos) == 0 {
		return nil, ErrSinDatos
	}

	barras := make([]gochart.Value, 0, len(grupos))
	maximo := 0.0
	for _, g := range grupos {
		barras = append(barras, gochart.Value{
			Label: g.Etiqueta,
			Value: float64(g.Cantidad),
		})
		if float64(g.Cantidad) > maximo {
			maximo = float64(g.Cantidad)
		}
	}

	grafico := gochart.BarChart{
		Title:    titulo,
		Width:    ancho,
		Height:   alto,
		BarWidth: 40,
		Bars:     barras,
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: maximo + 1},
		},
	}

	var buf bytes.Buffer
	if err := grafico.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}
