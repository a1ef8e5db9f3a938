package importer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
)

// Taxonomía de errores de importación. Toda falla aborta la carga
// completa: no se aceptan importaciones parciales.
var (
	ErrURLInvalida = errors.New("url de hoja de cálculo inválida")
	ErrDescarga    = errors.New("no se pudo descargar la hoja de cálculo")
	ErrFormato     = errors.New("no se pudo interpretar el CSV")
	ErrEsquema     = errors.New("el formulario no tiene las columnas esperadas")
)

// Importador descarga y parsea la exportación CSV de una hoja de cálculo
type Importador struct {
	cliente *http.Client
}

// Nuevo crea un importador con tiempo de espera de descarga
func Nuevo(timeout time.Duration) *Importador {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Importador{
		cliente: &http.Client{Timeout: timeout},
	}
}

// Importar ejecuta la canalización completa: derivar URL de exportación,
// descargar, parsear y validar
//
// Devuelve la lista ordenada de respuestas o un error de la taxonomía;
// nunca modifica estado, el llamador decide si reemplaza el conjunto.
func (i *Importador) Importar(ctx context.Context, urlHoja string) ([]model.Respuesta, error) {
	urlCSV, err := URLExportacion(urlHoja)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlCSV, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDescarga, err)
	}

	resp, err := i.cliente.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDescarga, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: la hoja respondió HTTP %d (¿es pública?)", ErrDescarga, resp.StatusCode)
	}

	return ParsearCSV(resp.Body)
}
