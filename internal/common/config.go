package common

import (
	"os"
	"strconv"
	"time"
)

// Import modes for the extraction stage.
const (
	ImportModeText = "text" // in-process pdftotext/column-OCR path
	ImportModeBox  = "box"  // delegate to the external box-parser process
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Import   ImportConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftotext   string
	Pdftoppm    string
	Pdfinfo     string
	Tesseract   string
	Languages   string
	DPI         int
	PSM         int
	MaxOCRPages int
	TessdataDir string
	InProcess   bool // use the in-process engine instead of the tesseract binary
}

// ImportConfig holds worker and box-parser configuration
type ImportConfig struct {
	Mode            string
	PythonBin       string
	BoxParserScript string
	PollInterval    time.Duration
	StaleAfter      time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Pdftotext:   getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:    getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Pdfinfo:     getEnv("PDFINFO_BIN", "pdfinfo"),
			Tesseract:   getEnv("TESSERACT_BIN", "tesseract"),
			Languages:   getEnv("OCR_LANGS", "hin+eng"),
			DPI:         getEnvAsInt("OCR_DPI", 300),
			PSM:         getEnvAsInt("OCR_PSM", 6),
			MaxOCRPages: getEnvAsInt("OCR_MAX_PAGES", 110),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			InProcess:   getEnvAsBool("OCR_IN_PROCESS", false),
		},
		Import: ImportConfig{
			Mode:            getEnv("IMPORT_MODE", ImportModeText),
			PythonBin:       getEnv("PYTHON_BIN", "python3"),
			BoxParserScript: getEnv("BOX_PARSER_SCRIPT", ""),
			PollInterval:    getEnvAsDuration("IMPORT_POLL_INTERVAL", 10*time.Second),
			StaleAfter:      getEnvAsDuration("IMPORT_STALE_AFTER", 30*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	switch c.Import.Mode {
	case ImportModeText:
	case ImportModeBox:
		if c.Import.BoxParserScript == "" {
			return NewAppError("CONFIG_ERROR", "BOX_PARSER_SCRIPT is required in box mode", ErrInvalidInput)
		}
	default:
		return NewAppError("CONFIG_ERROR", "IMPORT_MODE must be text or box", ErrInvalidInput)
	}
	return nil
}
