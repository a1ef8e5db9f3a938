package importer

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reSheetID = regexp.MustCompile(`/d/([a-zA-Z0-9\-_]+)`)
	reGID     = regexp.MustCompile(`[?&#]gid=(\d+)`)
)

// URLExportacion deriva la URL de exportación CSV a partir de un enlace
// compartido de Google Sheets
//
// Acepta enlaces con la forma .../spreadsheets/d/<id>/... y un gid
// opcional; si no hay gid se usa 0 (primera hoja).
func URLExportacion(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: la URL está vacía", ErrURLInvalida)
	}

	m := reSheetID.FindStringSubmatch(raw)
	if len(m) < 2 {
		return "", fmt.Errorf("%w: no se encontró el identificador /d/<id>", ErrURLInvalida)
	}
	id := m[1]

	gid := "0"
	if g := reGID.FindStringSubmatch(raw); len(g) >= 2 {
		gid = g[1]
	}

	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", id, gid), nil
}
