package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/config"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/server"
	"github.com/maneurionat/Generador-de-plan-de-clase-con-IA/internal/util"
)

var (
	port    = flag.Int("port", 0, "puerto del servidor (config.toml tiene prioridad si define port)")
	devMode = flag.Bool("dev", false, "modo desarrollo")
	envFile = flag.String("env", ".env", "archivo .env con GEMINI_API_KEY")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Generador de plan de clase con IA")
	fmt.Println("==========================================")

	// Variables de entorno (.env es opcional)
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("No se pudo leer %s: %v", *envFile, err)
	}

	// Cargar configuración
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("No se pudo cargar la configuración, se usan los valores por defecto: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// Los argumentos de línea de comandos completan la configuración
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}

	// Crear el servidor
	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	// Arrancar el servidor
	go func() {
		fmt.Printf("Servidor escuchando en el puerto %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("No se pudo arrancar el servidor: %v", err)
		}
	}()

	// Abrir el navegador
	if !cfg.Server.DevMode {
		fmt.Printf("Abriendo el navegador: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("No se pudo abrir el navegador, entre manualmente a: %s\n", url)
		}
	} else {
		fmt.Printf("Modo desarrollo: abra %s\n", url)
	}

	fmt.Println("\nPresione Ctrl+C para detener el servicio...")

	// Esperar la señal de cierre
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nCerrando el servicio...")
}
