package config

import (
	"errors"
	"firewatch-server/internal/infra/utils"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// ConfigDirKey is bound to the --config-dir flag in cmd/api.
const ConfigDirKey = "config_dir"

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = cfg
	})

	return configInstance
}

func loadConfig(v *viper.Viper) (AppConfig, error) {
	v.SetEnvPrefix("firewatch_server")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigName("server")
	v.SetConfigType("yaml")
	if dir := v.GetString(ConfigDirKey); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("config")
	v.AddConfigPath("/config")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := AppConfig{
		General: GeneralConfig{
			LogLevel: v.GetString("general.log_level"),
		},
		HTTP: HTTPConfig{
			Address:        v.GetString("http.address"),
			AllowedOrigins: listSetting(v, "http.allowed_origins"),
		},
		Dashboard: DashboardConfig{
			CatalogPath: v.GetString("dashboard.catalog_path"),
			Timezone:    v.GetString("dashboard.timezone"),
			Evacuation: EvacuationConfig{
				NearestPoint:      v.GetString("dashboard.evacuation.nearest_point"),
				EmergencyContacts: listSetting(v, "dashboard.evacuation.emergency_contacts"),
			},
		},
		Otel: OtelConfig{
			Enabled:  v.GetBool("otel.enabled"),
			Endpoint: v.GetString("otel.endpoint"),
		},
	}

	if err := utils.ValidateTimezone(cfg.Dashboard.Timezone); err != nil {
		return AppConfig{}, fmt.Errorf("dashboard.timezone: %w", err)
	}

	return cfg, nil
}

// listSetting reads a list key. Environment overrides arrive as a single
// string and are split on commas, so entries may contain spaces.
func listSetting(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}

	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("http.address", ":3000")
	v.SetDefault("http.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("dashboard.catalog_path", "")
	v.SetDefault("dashboard.timezone", "Asia/Bangkok")
	v.SetDefault("dashboard.evacuation.nearest_point", "Local School")
	v.SetDefault("dashboard.evacuation.emergency_contacts", []string{"199 (Fire)", "1669 (Emergency Medical)"})
	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.endpoint", "localhost:4317")
}

type AppConfig struct {
	General   GeneralConfig
	HTTP      HTTPConfig
	Dashboard DashboardConfig
	Otel      OtelConfig
}

type GeneralConfig struct {
	LogLevel string
}

type HTTPConfig struct {
	Address        string
	AllowedOrigins []string
}

// DashboardConfig CatalogPath empty means the catalog embedded in the binary.
type DashboardConfig struct {
	CatalogPath string
	Timezone    string
	Evacuation  EvacuationConfig
}

type EvacuationConfig struct {
	NearestPoint      string
	EmergencyContacts []string
}

type OtelConfig struct {
	Enabled  bool
	Endpoint string
}
