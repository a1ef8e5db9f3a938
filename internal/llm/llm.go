// Package llm define la frontera con el servicio de generación de texto.
package llm

import "context"

// Generador contrato del servicio de generación de texto
//
// Recibe las instrucciones de sistema y el contenido del usuario, y
// devuelve el texto generado o un error genérico de generación.
type Generador interface {
	Generar(ctx context.Context, instrucciones, contenido string) (string, error)
}
