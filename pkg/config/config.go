package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Session SessionConfig
	Catalog CatalogConfig
	Quote   QuoteConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig configuración de los tokens de sesión (carrito efímero por sesión).
type SessionConfig struct {
	Secret     string
	TTLMinutes int // vida del token y de la sesión en memoria
	Issuer     string
}

// CatalogConfig límites de la ingesta de catálogos CSV.
type CatalogConfig struct {
	MaxFileMB int // tamaño máximo del archivo subido
}

// QuoteConfig parámetros del documento de cotización.
type QuoteConfig struct {
	CurrencyLocale string // localidad BCP 47 para formatear montos (ej. es-CL)
	CurrencySymbol string
	ValidityDays   int // vigencia declarada en el pie del PDF
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "cotizador"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", ""),
			TTLMinutes: getInt(v, "SESSION_TTL_MINUTES", 240),
			Issuer:     getString(v, "SESSION_ISSUER", "cotizador"),
		},
		Catalog: CatalogConfig{
			MaxFileMB: getInt(v, "CATALOG_MAX_FILE_MB", 5),
		},
		Quote: QuoteConfig{
			CurrencyLocale: getString(v, "QUOTE_CURRENCY_LOCALE", "es-CL"),
			CurrencySymbol: getString(v, "QUOTE_CURRENCY_SYMBOL", "$"),
			ValidityDays:   getInt(v, "QUOTE_VALIDITY_DAYS", 30),
		},
	}

	if cfg.Session.TTLMinutes <= 0 {
		return nil, fmt.Errorf("config: SESSION_TTL_MINUTES debe ser positivo")
	}
	if cfg.Catalog.MaxFileMB <= 0 {
		return nil, fmt.Errorf("config: CATALOG_MAX_FILE_MB debe ser positivo")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
