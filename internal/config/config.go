package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken     string `envconfig:"BOT_TOKEN" required:"true"`
	CalendarPath string `envconfig:"CALENDAR_PATH" default:"./calendar.json"`
	UsersPath    string `envconfig:"USERS_PATH" default:"./users.json"`
	AdminID      string `envconfig:"ADMIN_ID" default:"5931611517"` // the one identity allowed into /adminman
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`           // debug|info|warn|error
	HTTPAddr     string `envconfig:"HTTP_ADDR" default:":8080"`          // healthz
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
