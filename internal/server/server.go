// Package server arma el servidor HTTP: la API JSON del panel y el
// front embebido en el binario.
package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/api"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/config"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/importer"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/llm"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/report"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/store"
)

//go:embed all:dist
var staticFiles embed.FS

// Server servidor HTTP del panel
type Server struct {
	router *gin.Engine
	store  *store.Store
	api    *api.Handler
}

// NewServer crea el servidor con todo el estado de la sesión
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	st := store.Nuevo()
	imp := importer.Nuevo(time.Duration(cfg.Import.TimeoutSeconds) * time.Second)

	var generador llm.Generador
	gemini, err := llm.NuevoGemini(
		os.Getenv("GEMINI_API_KEY"),
		cfg.Gemini.Model,
		time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Printf("Servicio de generación no disponible: %v", err)
		generador = llm.NoConfigurado{}
	} else {
		generador = gemini
	}

	handler := api.NewHandler(st, imp, report.Nuevo(st, generador), cfg.Export.Stem)

	s := &Server{
		router: gin.Default(),
		store:  st,
		api:    handler,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes registra las rutas de la API y los recursos estáticos
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API JSON
	grupo := s.router.Group("/api")
	{
		s.api.RegisterRoutes(grupo)
	}

	// Recursos estáticos
	if devMode {
		// modo desarrollo: el front corre en su propio servidor
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		// modo producción: el front va embebido en el binario
		sub, _ := fs.Sub(staticFiles, "dist")

		s.router.GET("/", func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})

		s.router.NoRoute(func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})
	}
}

// Run arranca el servidor
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// GetStore acceso al estado de la sesión (para pruebas)
func (s *Server) GetStore() *store.Store {
	return s.store
}
