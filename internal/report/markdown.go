package report

import (
	"bytes"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// renderizarHTML convierte el Markdown del servicio a HTML para el panel
//
// Si la conversión falla se devuelve el texto escapado dentro de <pre>,
// para no perder el contenido ya generado.
func renderizarHTML(md string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "<pre>" + html.EscapeString(md) + "</pre>"
	}
	return buf.String()
}
