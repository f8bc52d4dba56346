// Package config holds the defaults a game starts with. They can be tuned
// through the environment and are overridden by command line flags.
package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Configuration variables.
var (
	Width  = getEnvInt("SNAKE_WIDTH", 15)
	Height = getEnvInt("SNAKE_HEIGHT", 15)
	Seed   = getEnvInt64("SNAKE_SEED", 0)
	// TickInterval is how long a single turn lasts.
	TickInterval = time.Duration(getEnvInt("SNAKE_TICK_MS", 250)) * time.Millisecond
)

// TickRate turns a tick interval into a limiter rate. A non-positive
// interval means no delay between turns.
func TickRate(interval time.Duration) rate.Limit {
	if interval <= 0 {
		return rate.Inf
	}
	return rate.Every(interval)
}

// NewTickLimiter returns a limiter releasing one tick per interval.
func NewTickLimiter(interval time.Duration) *rate.Limiter {
	return rate.NewLimiter(TickRate(interval), 1)
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvInt64(varName string, defaults int64) int64 {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defaults
	}
	return intVal
}
