// Package config carga la configuración de la aplicación desde un
// config.toml opcional junto al ejecutable, con valores por defecto
// razonables cuando no existe.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig configuración de la aplicación
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Gemini GeminiConfig `toml:"gemini"`
	Import ImportConfig `toml:"import"`
	Export ExportConfig `toml:"export"`
}

// ServerConfig configuración del servidor HTTP
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// GeminiConfig configuración del servicio de generación
//
// La clave de API nunca va en el TOML: se lee de la variable de entorno
// GEMINI_API_KEY (o de un archivo .env cargado al arrancar).
type GeminiConfig struct {
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// ImportConfig configuración de la importación de respuestas
type ImportConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// ExportConfig configuración de la exportación de informes
type ExportConfig struct {
	Stem string `toml:"stem"` // prefijo del nombre de archivo del PDF
}

// LoadConfigInfo metainformación de la carga de configuración
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig configuración por defecto
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    8410,
			DevMode: false,
		},
		Gemini: GeminiConfig{
			Model:          "gemini-2.0-flash",
			TimeoutSeconds: 60,
		},
		Import: ImportConfig{
			TimeoutSeconds: 30,
		},
		Export: ExportConfig{
			Stem: "reporte_clase",
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir directorio donde vive el ejecutable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo carga config.toml y devuelve la metainformación
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// sin directorio del ejecutable, se usa el directorio actual
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// sin archivo de configuración, valen los defaults
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	if v := os.Getenv("PLANCLASE_GEMINI_MODEL"); v != "" {
		config.Gemini.Model = v
	}

	return config, info, nil
}

// LoadConfig carga la configuración desde config.toml
// El archivo vive junto al ejecutable
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig escribe la configuración actual a config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
