// Package config loads command settings from the environment (and an
// optional .env file) and configures the global zerolog logger.
package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds defaults shared by the commands. Flags override them.
type Config struct {
	LogLevel  string
	LogFormat string // console or json

	PerftDepth    int
	SelfplaySeed  int64
	SelfplayGames int
}

// Load reads .env (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() Config {
	return Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "console")),
		PerftDepth:    getEnvInt("PERFT_DEPTH", 6),
		SelfplaySeed:  int64(getEnvInt("SELFPLAY_SEED", 1)),
		SelfplayGames: getEnvInt("SELFPLAY_GAMES", 100),
	}
}

// SetupLogging applies the level and output format to the global logger.
// Console output is used for terminals unless json is requested.
func (c Config) SetupLogging(w *os.File) {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = zerolog.New(c.logWriter(w, isatty.IsTerminal(w.Fd()))).With().Timestamp().Logger()
}

func (c Config) logWriter(w io.Writer, tty bool) io.Writer {
	if c.LogFormat == "json" {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, NoColor: !tty}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-integer environment value")
		return def
	}
	return n
}
