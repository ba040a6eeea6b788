package config

import (
	"strconv"

	"github.com/Thomaslgrn/pdftotexte/internal/domain"

	"github.com/spf13/viper"
)

const (
	defaultHost               = "0.0.0.0"
	defaultServerPort         = "8000"
	defaultLogLevel           = "info"
	defaultPDFEngine          = "fitz"
	defaultMultipartMaxMemory = 32 << 20 // 32MB kept in memory, the rest spills to temp files
)

// Keys shared by environment variables and CLI flags.
const (
	KeyHost               = "host"
	KeyPort               = "port"
	KeyServerPort         = "server_port"
	KeyLogLevel           = "log_level"
	KeyPDFEngine          = "pdf_engine"
	KeyMultipartMaxMemory = "multipart_max_memory"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	Host               string
	ServerPort         string
	LogLevel           string
	PDFEngine          string
	MultipartMaxMemory int64
}

// NewConfig creates a configuration read from the environment only
func NewConfig() domain.Config {
	return NewConfigFrom(viper.New())
}

// NewConfigFrom reads configuration through v. Flags bound on v take
// precedence over environment variables, which take precedence over defaults.
func NewConfigFrom(v *viper.Viper) domain.Config {
	v.AutomaticEnv()
	v.SetDefault(KeyHost, defaultHost)
	v.SetDefault(KeyServerPort, defaultServerPort)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyPDFEngine, defaultPDFEngine)

	// Cloud Run (and many PaaS) provide the listening port via PORT.
	// Keep SERVER_PORT for local/dev compatibility.
	port := v.GetString(KeyPort)
	if port == "" {
		port = v.GetString(KeyServerPort)
	}

	return &AppConfig{
		Host:               v.GetString(KeyHost),
		ServerPort:         port,
		LogLevel:           v.GetString(KeyLogLevel),
		PDFEngine:          v.GetString(KeyPDFEngine),
		MultipartMaxMemory: parseInt64OrDefault(v.GetString(KeyMultipartMaxMemory), defaultMultipartMaxMemory),
	}
}

// GetHost returns the interface the server binds to
func (c *AppConfig) GetHost() string {
	return c.Host
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetPDFEngine returns the name of the PDF extraction engine
func (c *AppConfig) GetPDFEngine() string {
	return c.PDFEngine
}

// GetMultipartMaxMemory returns how many bytes of a multipart body are kept in memory
func (c *AppConfig) GetMultipartMaxMemory() int64 {
	return c.MultipartMaxMemory
}

func parseInt64OrDefault(value string, defaultValue int64) int64 {
	if value == "" {
		return defaultValue
	}
	if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
		return intValue
	}
	return defaultValue
}
