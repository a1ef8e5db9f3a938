// Package store es el dueño del estado de la sesión: el conjunto de
// respuestas importado, el filtro aplicado y el estado de los reportes.
package store

import (
	"sync"
	"time"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/filter"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/model"
)

// Store almacenamiento en memoria de la sesión
//
// Todo vive en memoria: el conjunto se reemplaza por completo en cada
// importación y nada sobrevive al proceso. Los consumidores reciben
// copias; el motor de filtros y las estadísticas nunca mutan el estado.
type Store struct {
	mu          sync.RWMutex
	respuestas  []model.Respuesta
	filtro      model.Filtro
	reportes    map[model.TipoReporte]model.Reporte
	importadoEn time.Time
}

// Nuevo crea el almacenamiento vacío con los seis reportes sin solicitar
func Nuevo() *Store {
	s := &Store{}
	s.reportes = reportesIniciales()
	return s
}

func reportesIniciales() map[model.TipoReporte]model.Reporte {
	reportes := make(map[model.TipoReporte]model.Reporte, len(model.TiposReporte()))
	for _, tipo := range model.TiposReporte() {
		reportes[tipo] = model.Reporte{Tipo: tipo, Estado: model.EstadoNoSolicitado}
	}
	return reportes
}

// ReemplazarRespuestas descarta el conjunto actual y lo sustituye
//
// Una importación nueva invalida el filtro aplicado y todos los reportes,
// porque ambos dependían de los datos anteriores.
func (s *Store) ReemplazarRespuestas(respuestas []model.Respuesta) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.respuestas = make([]model.Respuesta, len(respuestas))
	copy(s.respuestas, respuestas)
	s.filtro = model.Filtro{}
	s.reportes = reportesIniciales()
	s.importadoEn = time.Now()
}

// Respuestas copia del conjunto completo importado
func (s *Store) Respuestas() []model.Respuesta {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copia := make([]model.Respuesta, len(s.respuestas))
	copy(copia, s.respuestas)
	return copia
}

// Filtradas copia del subconjunto que pasa el filtro aplicado
func (s *Store) Filtradas() []model.Respuesta {
	s.mu.RLock()
	respuestas := make([]model.Respuesta, len(s.respuestas))
	copy(respuestas, s.respuestas)
	filtro := s.filtro
	s.mu.RUnlock()

	return filter.Aplicar(respuestas, filtro)
}

// Filtro el filtro actualmente aplicado
func (s *Store) Filtro() model.Filtro {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtro
}

// AplicarFiltro fija el filtro aplicado y reinicia los seis reportes,
// porque su contenido dependía del subconjunto anterior
func (s *Store) AplicarFiltro(f model.Filtro) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filtro = f
	s.reportes = reportesIniciales()
}

// Reporte estado actual de un reporte
func (s *Store) Reporte(tipo model.TipoReporte) (model.Reporte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reportes[tipo]
	return r, ok
}

// Reportes los seis reportes, en el orden de presentación
func (s *Store) Reportes() []model.Reporte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lista := make([]model.Reporte, 0, len(s.reportes))
	for _, tipo := range model.TiposReporte() {
		lista = append(lista, s.reportes[tipo])
	}
	return lista
}

// MarcarGenerando pasa el reporte al estado en curso
func (s *Store) MarcarGenerando(tipo model.TipoReporte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reportes[tipo] = model.Reporte{Tipo: tipo, Estado: model.EstadoGenerando}
}

// GuardarReporte deja el reporte disponible con su contenido final
//
// No hay control de concurrencia por tipo: si dos solicitudes del mismo
// reporte se cruzan, gana la que termine última.
func (s *Store) GuardarReporte(tipo model.TipoReporte, contenido, html string, esError bool) model.Reporte {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := model.Reporte{
		Tipo:       tipo,
		Estado:     model.EstadoDisponible,
		Contenido:  contenido,
		HTML:       html,
		EsError:    esError,
		GeneradoEn: time.Now(),
	}
	s.reportes[tipo] = r
	return r
}

// Total cantidad de respuestas importadas
func (s *Store) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.respuestas)
}

// ImportadoEn momento de la última importación exitosa
func (s *Store) ImportadoEn() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.importadoEn
}
