package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 7090, cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 60, cfg.Stats.DeadlineWindowDays)
	assert.Equal(t, 6, cfg.Stats.DashboardRecent)
	assert.Equal(t, 5, cfg.Stats.PortalRecent)
	assert.Equal(t, 4, cfg.Stats.ExploreRecent)
	assert.Equal(t, 6, cfg.Admin.ProjectsPageSize)
	assert.Equal(t, 8, cfg.Admin.UsersPageSize)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("HTTP_PORT", 8081)
	v.Set("HTTP_CORS_ORIGINS", " https://obras.gov , ,https://admin.obras.gov")
	v.Set("PORTAL_TODAY", "2026-02-10")
	v.Set("MAP_DEFAULT_ZOOM", 13)
	v.Set("SEARCH_FOLD_ACCENTS", true)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, []string{"https://obras.gov", "https://admin.obras.gov"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 13, cfg.Map.DefaultZoom)
	assert.True(t, cfg.Search.FoldAccents)

	now := cfg.Clock()()
	assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), now)
}

func TestFromViper_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("PORTAL_TODAY", "10/02/2026")
	_, err := fromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("MAP_DEFAULT_ZOOM", 40)
	_, err = fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_NegativeLimits(t *testing.T) {
	for _, key := range []string{
		"STATS_RECENT_LIMIT",
		"PORTAL_RECENT_LIMIT",
		"EXPLORE_RECENT_LIMIT",
		"ADMIN_PAGE_SIZE",
		"ADMIN_USERS_PAGE_SIZE",
	} {
		v := viper.New()
		v.Set(key, -1)
		_, err := fromViper(v)
		require.Error(t, err, key)
		assert.Contains(t, err.Error(), "must not be negative", key)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 12, cfg.Map.DefaultZoom)
	assert.InDelta(t, -12.06, cfg.Map.DefaultLat, 1e-9)
}
