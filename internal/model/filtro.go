package model

// Filtro selección de filtros sobre el conjunto de respuestas
//
// Cada campo es opcional; vacío significa "sin restricción". Las fechas
// usan el formato YYYY-MM-DD. Existen dos copias en la sesión: la que el
// usuario edita en los controles y la aplicada, que es la única que
// afecta los cálculos.
type Filtro struct {
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
	Materia     string `json:"materia"`
	Paralelo    string `json:"paralelo"`
}

// Vacio indica si el filtro no restringe nada
func (f Filtro) Vacio() bool {
	return f.FechaInicio == "" && f.FechaFin == "" && f.Materia == "" && f.Paralelo == ""
}
