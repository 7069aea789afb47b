package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Config holds everything the bot needs from the environment.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	AppID        string `env:"APP_ID,required"`
	OwnerID      string `env:"OWNER_ID,required"`
	GuildID      string `env:"GUILD_ID"`
	SyncGlobal   bool   `env:"SYNC_GLOBAL" envDefault:"false"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"datastore.json"`

	Lavalink LavalinkConfig
}

// LavalinkConfig is the audio node connection. Defaults match a stock
// local Lavalink install.
type LavalinkConfig struct {
	Host     string `env:"LAVALINK_HOST" envDefault:"localhost"`
	Port     int    `env:"LAVALINK_PORT" envDefault:"2333"`
	Password string `env:"LAVALINK_PASSWORD" envDefault:"youshallnotpass"`
	Secure   bool   `env:"LAVALINK_SECURE" envDefault:"false"`
}

// Address returns the node address in host:port form.
func (l LavalinkConfig) Address() string {
	return fmt.Sprintf("%s:%d", l.Host, l.Port)
}

// New loads and validates the configuration. Missing required variables
// are fatal: the bot cannot do anything useful without them.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Load parses the environment into a Config, returning an error instead
// of exiting so tests can exercise validation.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
