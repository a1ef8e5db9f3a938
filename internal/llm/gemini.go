package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// ModeloPorDefecto modelo usado cuando la configuración no indica otro
const ModeloPorDefecto = "gemini-2.0-flash"

// Gemini implementación de Generador sobre la API de Gemini
type Gemini struct {
	cliente *genai.Client
	modelo  string
	timeout time.Duration
}

// Asegura que Gemini implementa la frontera de generación
var _ Generador = (*Gemini)(nil)

// NuevoGemini crea el cliente de Gemini
//
// La clave viene de la variable de entorno GEMINI_API_KEY; sin clave no
// hay servicio de generación y la creación falla.
func NuevoGemini(apiKey, modelo string, timeout time.Duration) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("falta la clave de API de Gemini (GEMINI_API_KEY)")
	}
	if strings.TrimSpace(modelo) == "" {
		modelo = ModeloPorDefecto
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	cliente, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{
		cliente: cliente,
		modelo:  modelo,
		timeout: timeout,
	}, nil
}

// Generar envía una solicitud de generación y devuelve el texto resultante
func (g *Gemini) Generar(ctx context.Context, instrucciones, contenido string) (string, error) {
	if _, hayPlazo := ctx.Deadline(); !hayPlazo {
		var cancelar context.CancelFunc
		ctx, cancelar = context.WithTimeout(ctx, g.timeout)
		defer cancelar()
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	}
	if strings.TrimSpace(instrucciones) != "" {
		cfg.SystemInstruction = genai.NewContentFromText(instrucciones, genai.RoleUser)
	}

	resultado, err := g.cliente.Models.GenerateContent(ctx, g.modelo, genai.Text(contenido), cfg)
	if err != nil {
		return "", fmt.Errorf("genai request failed: %w", err)
	}

	texto := strings.TrimSpace(resultado.Text())
	if texto == "" {
		return "", fmt.Errorf("el servicio no devolvió contenido")
	}
	return texto, nil
}
