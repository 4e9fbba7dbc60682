package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	BaseURL           string `json:"base_url"`
	Language          string `json:"language"`
	OutputPath        string `json:"output_path"`
	RateCapacity      int    `json:"rate_capacity"`
	RateWindowSeconds int    `json:"rate_window_seconds"`
	PathFile          string `json:"path_file"`
}

const (
	defaultLang       = "en"
	defaultOutputPath = "tickets.xlsx"

	// Presupuesto conservador para no exceder el límite no documentado
	// del servicio remoto
	defaultRateCapacity      = 50
	defaultRateWindowSeconds = 60
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".mate-tickets")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		BaseURL:           "",
		Language:          defaultLang,
		OutputPath:        defaultOutputPath,
		RateCapacity:      defaultRateCapacity,
		RateWindowSeconds: defaultRateWindowSeconds,
		PathFile:          path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language no puede estar vacío")
	}
	if config.OutputPath == "" {
		return errors.New("output_path no puede estar vacío")
	}
	if config.RateCapacity <= 0 {
		return errors.New("rate_capacity debe ser mayor que 0")
	}
	if config.RateWindowSeconds <= 0 {
		return errors.New("rate_window_seconds debe ser mayor que 0")
	}
	return nil
}
