package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Tariff is one row of the like-refill price list shown to clients.
// Selecting a tariff only files a request with the admins; crediting is
// always a separate admin action.
type Tariff struct {
	Likes int
	Price int
}

// DefaultTariffs uses a flat rate of 100 per like. The pricing is a fixed
// table, not derived from PlacementCost.
var DefaultTariffs = []Tariff{
	{Likes: 5, Price: 500},
	{Likes: 15, Price: 1500},
	{Likes: 30, Price: 3000},
}

type Config struct {
	BotToken     string
	AdminIDs     []int64
	DatabasePath string
	// Training directions offered to both roles. Profiles reference a
	// direction by its exact string.
	Directions []string
	// InitialLikes is the balance a client starts with.
	InitialLikes int
	// PlacementCost is quoted to trainers after submission; payment is
	// handled manually by an admin.
	PlacementCost int
	// LikedPageSize is the page size of the client's "my likes" list.
	LikedPageSize int
	Tariffs       []Tariff
	// OpsPort serves the health/stats HTTP endpoint.
	OpsPort string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally; ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:      getEnv("BOT_TOKEN", ""),
		AdminIDs:      parseAdminIDs(getEnv("ADMIN_IDS", "")),
		DatabasePath:  getEnv("DATABASE_PATH", "trainers_tinder.db"),
		Directions:    parseList(getEnv("TRAINING_DIRECTIONS", "Fitness,Yoga,Stretching")),
		InitialLikes:  getEnvInt("INITIAL_LIKES", 5),
		PlacementCost: getEnvInt("PLACEMENT_COST", 1000),
		LikedPageSize: getEnvInt("LIKED_PAGE_SIZE", 5),
		Tariffs:       DefaultTariffs,
		OpsPort:       getEnv("OPS_PORT", "8080"),
	}

	if cfg.BotToken == "" {
		log.Println("WARNING: BOT_TOKEN is missing. The bot will fail to start.")
	}
	if len(cfg.AdminIDs) == 0 {
		log.Println("WARNING: ADMIN_IDS is empty. Moderation and credit commands will be unavailable.")
	}

	return cfg, nil
}

// IsAdmin reports whether the given user is in the configured admin set.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// HasDirection reports whether the direction is one of the configured set.
func (c *Config) HasDirection(direction string) bool {
	for _, d := range c.Directions {
		if d == direction {
			return true
		}
	}
	return false
}

// TariffFor returns the tariff with the given like quantity.
func (c *Config) TariffFor(likes int) (Tariff, bool) {
	for _, t := range c.Tariffs {
		if t.Likes == likes {
			return t, true
		}
	}
	return Tariff{}, false
}

// parseAdminIDs accepts a comma-separated list of numeric IDs.
// Non-numeric entries are skipped.
func parseAdminIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func parseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
