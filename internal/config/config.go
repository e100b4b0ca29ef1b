package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Catalog struct {
		TTL string `yaml:"ttl"`
	} `yaml:"catalog"`
	Game GameConfig `yaml:"game"`
}

// GameConfig holds the tunable game rules as they appear in YAML. Durations
// are strings so operators can write "2.5s"; zero values fall back to the
// classic rule set via Rules().
type GameConfig struct {
	MinPlayers        int     `yaml:"minPlayers"`
	MaxPlayers        int     `yaml:"maxPlayers"`
	DefaultPlayers    int     `yaml:"defaultPlayers"`
	CountdownTicks    int     `yaml:"countdownTicks"`
	SpeedBonusCutoff  int     `yaml:"speedBonusCutoff"`
	SpeedBonusRate    float64 `yaml:"speedBonusRate"`
	StreakThreshold   int     `yaml:"streakThreshold"`
	StreakMultiplier  float64 `yaml:"streakMultiplier"`
	TickInterval      string  `yaml:"tickInterval"`
	DailyDoubleSplash string  `yaml:"dailyDoubleSplash"`
	MandatorySplash   string  `yaml:"mandatorySplash"`
}

// Rules is the resolved rule set the engine runs with.
type Rules struct {
	MinPlayers        int
	MaxPlayers        int
	DefaultPlayers    int
	CountdownTicks    int
	SpeedBonusCutoff  int
	SpeedBonusRate    float64
	StreakThreshold   int
	StreakMultiplier  float64
	TickInterval      time.Duration
	DailyDoubleSplash time.Duration
	MandatorySplash   time.Duration
}

// DefaultRules returns the classic rule set: a 40-tick window, speed bonus for
// answers with 30+ ticks remaining, and a 1.5x multiplier from 3 straight wins.
func DefaultRules() Rules {
	return Rules{
		MinPlayers:        2,
		MaxPlayers:        6,
		DefaultPlayers:    4,
		CountdownTicks:    40,
		SpeedBonusCutoff:  30,
		SpeedBonusRate:    0.2,
		StreakThreshold:   3,
		StreakMultiplier:  1.5,
		TickInterval:      time.Second,
		DailyDoubleSplash: 2500 * time.Millisecond,
		MandatorySplash:   4 * time.Second,
	}
}

// Rules resolves the YAML values against DefaultRules.
func (g GameConfig) Rules() Rules {
	r := DefaultRules()
	if g.MinPlayers > 0 {
		r.MinPlayers = g.MinPlayers
	}
	if g.MaxPlayers > 0 {
		r.MaxPlayers = g.MaxPlayers
	}
	if g.DefaultPlayers > 0 {
		r.DefaultPlayers = g.DefaultPlayers
	}
	if g.CountdownTicks > 0 {
		r.CountdownTicks = g.CountdownTicks
	}
	if g.SpeedBonusCutoff > 0 {
		r.SpeedBonusCutoff = g.SpeedBonusCutoff
	}
	if g.SpeedBonusRate > 0 {
		r.SpeedBonusRate = g.SpeedBonusRate
	}
	if g.StreakThreshold > 0 {
		r.StreakThreshold = g.StreakThreshold
	}
	if g.StreakMultiplier > 0 {
		r.StreakMultiplier = g.StreakMultiplier
	}
	r.TickInterval = TTLDuration(g.TickInterval, r.TickInterval)
	r.DailyDoubleSplash = TTLDuration(g.DailyDoubleSplash, r.DailyDoubleSplash)
	r.MandatorySplash = TTLDuration(g.MandatorySplash, r.MandatorySplash)
	return r
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
