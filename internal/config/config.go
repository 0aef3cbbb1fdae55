package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string     `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string     `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8000"`
	TCPPort           string     `yaml:"tcp-port" env:"TCP_PORT" env-default:"7000"`
	Redis             Redis      `yaml:"redis"`
	SQLiteStoragePath string     `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"santorini.db"`
	Referee           Referee    `yaml:"referee"`
	Tournament        Tournament `yaml:"tournament"`
	Transport         Transport  `yaml:"transport"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Referee - policy knobs of a single game.
type Referee struct {
	WorkersPerPlayer  int           `yaml:"workers-per-player" env-default:"2"`
	ActionTimeout     time.Duration `yaml:"action-timeout" env-default:"10s"`
	PlacementAttempts int           `yaml:"placement-attempts" env-default:"2"`
	TurnAttempts      int           `yaml:"turn-attempts" env-default:"1"`
}

type Tournament struct {
	ID              string        `yaml:"id" env:"TOURNAMENT_ID"`
	RemotePlayers   int           `yaml:"remote-players" env:"TOURNAMENT_REMOTE_PLAYERS" env-default:"0"`
	JoinTimeout     time.Duration `yaml:"join-timeout" env-default:"5m"`
	GamesPerPairing int           `yaml:"games-per-pairing" env-default:"1"`
	Concurrency     int           `yaml:"concurrency" env-default:"4"`
	Bots            []Bot         `yaml:"bots"`
}

// Bot - a locally hosted entrant.
type Bot struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Seed   uint64 `yaml:"seed"`
	Script string `yaml:"script"`
}

type Transport struct {
	MaxMessageSize   int           `yaml:"max-message-size" env-default:"65536"`
	HandshakeTimeout time.Duration `yaml:"handshake-timeout" env-default:"10s"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
