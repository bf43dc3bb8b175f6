package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

type DataConfig struct {
	SeedFile string
	// Today pins the portal clock to a calendar date; empty means the wall clock.
	Today string
}

type StatsConfig struct {
	DeadlineWindowDays int
	DashboardRecent    int
	PortalRecent       int
	ExploreRecent      int
}

type AdminConfig struct {
	ProjectsPageSize int
	UsersPageSize    int
}

type MapConfig struct {
	DefaultLat  float64
	DefaultLng  float64
	DefaultZoom int
}

type SearchConfig struct {
	FoldAccents bool
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	Data        DataConfig
	Stats       StatsConfig
	Admin       AdminConfig
	Map         MapConfig
	Search      SearchConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("MAP_DEFAULT_LAT", -12.06)
	v.SetDefault("MAP_DEFAULT_LNG", -77.04)
	v.SetDefault("MAP_DEFAULT_ZOOM", 12)

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:        v.GetString("HTTP_HOST"),
			Port:        v.GetInt("HTTP_PORT"),
			CORSOrigins: parseList(v.GetString("HTTP_CORS_ORIGINS")),
		},
		Data: DataConfig{
			SeedFile: strings.TrimSpace(v.GetString("DATA_SEED_FILE")),
			Today:    strings.TrimSpace(v.GetString("PORTAL_TODAY")),
		},
		Stats: StatsConfig{
			DeadlineWindowDays: v.GetInt("STATS_DEADLINE_WINDOW_DAYS"),
			DashboardRecent:    v.GetInt("STATS_RECENT_LIMIT"),
			PortalRecent:       v.GetInt("PORTAL_RECENT_LIMIT"),
			ExploreRecent:      v.GetInt("EXPLORE_RECENT_LIMIT"),
		},
		Admin: AdminConfig{
			ProjectsPageSize: v.GetInt("ADMIN_PAGE_SIZE"),
			UsersPageSize:    v.GetInt("ADMIN_USERS_PAGE_SIZE"),
		},
		Map: MapConfig{
			DefaultLat:  v.GetFloat64("MAP_DEFAULT_LAT"),
			DefaultLng:  v.GetFloat64("MAP_DEFAULT_LNG"),
			DefaultZoom: v.GetInt("MAP_DEFAULT_ZOOM"),
		},
		Search: SearchConfig{
			FoldAccents: v.GetBool("SEARCH_FOLD_ACCENTS"),
		},
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no environment is provided.
func Default() *Config {
	cfg := &Config{
		Map: MapConfig{DefaultLat: -12.06, DefaultLng: -77.04, DefaultZoom: 12},
	}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if len(cfg.HTTP.CORSOrigins) == 0 {
		cfg.HTTP.CORSOrigins = []string{"*"}
	}
	if cfg.Stats.DeadlineWindowDays == 0 {
		cfg.Stats.DeadlineWindowDays = 60
	}
	if cfg.Stats.DashboardRecent == 0 {
		cfg.Stats.DashboardRecent = 6
	}
	if cfg.Stats.PortalRecent == 0 {
		cfg.Stats.PortalRecent = 5
	}
	if cfg.Stats.ExploreRecent == 0 {
		cfg.Stats.ExploreRecent = 4
	}
	if cfg.Admin.ProjectsPageSize == 0 {
		cfg.Admin.ProjectsPageSize = 6
	}
	if cfg.Admin.UsersPageSize == 0 {
		cfg.Admin.UsersPageSize = 8
	}
}

func validate(cfg *Config) error {
	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", cfg.HTTP.Port)
	}
	if cfg.Stats.DeadlineWindowDays < 0 {
		return fmt.Errorf("STATS_DEADLINE_WINDOW_DAYS must not be negative")
	}
	if cfg.Stats.DashboardRecent < 0 || cfg.Stats.PortalRecent < 0 || cfg.Stats.ExploreRecent < 0 {
		return fmt.Errorf("recent update limits must not be negative")
	}
	if cfg.Admin.ProjectsPageSize < 0 || cfg.Admin.UsersPageSize < 0 {
		return fmt.Errorf("page sizes must not be negative")
	}
	if cfg.Map.DefaultZoom < 0 || cfg.Map.DefaultZoom > 22 {
		return fmt.Errorf("MAP_DEFAULT_ZOOM out of range: %d", cfg.Map.DefaultZoom)
	}
	if cfg.Data.Today != "" {
		if _, err := time.Parse("2006-01-02", cfg.Data.Today); err != nil {
			return fmt.Errorf("PORTAL_TODAY must be YYYY-MM-DD: %w", err)
		}
	}
	return nil
}

// Clock returns the portal's notion of "now".
func (c *Config) Clock() func() time.Time {
	if c.Data.Today != "" {
		if pinned, err := time.Parse("2006-01-02", c.Data.Today); err == nil {
			return func() time.Time { return pinned }
		}
	}
	return time.Now
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
