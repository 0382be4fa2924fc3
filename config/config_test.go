package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavrov08/trainers-tinder/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("ADMIN_IDS", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.BotToken)
	assert.Empty(t, cfg.AdminIDs)
	assert.Equal(t, []string{"Fitness", "Yoga", "Stretching"}, cfg.Directions)
	assert.Equal(t, 5, cfg.InitialLikes)
	assert.Equal(t, 1000, cfg.PlacementCost)
	assert.Equal(t, 5, cfg.LikedPageSize)
	assert.Equal(t, config.DefaultTariffs, cfg.Tariffs)
}

func TestParseAdminIDs(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("ADMIN_IDS", "123, 456,garbage,789,")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []int64{123, 456, 789}, cfg.AdminIDs)
	assert.True(t, cfg.IsAdmin(456))
	assert.False(t, cfg.IsAdmin(1))
}

func TestParseDirections(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("TRAINING_DIRECTIONS", " Crossfit , Pilates ")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"Crossfit", "Pilates"}, cfg.Directions)
	assert.True(t, cfg.HasDirection("Pilates"))
	assert.False(t, cfg.HasDirection("Yoga"))
}

func TestTariffFor(t *testing.T) {
	cfg := &config.Config{Tariffs: config.DefaultTariffs}

	tariff, ok := cfg.TariffFor(15)
	assert.True(t, ok)
	assert.Equal(t, 1500, tariff.Price)

	_, ok = cfg.TariffFor(7)
	assert.False(t, ok)
}
