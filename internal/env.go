package internal

import (
	"fmt"
	"os"
	"time"
)

func EnvOr(key, defaultValue string) string {
	if value := os.Getenv(key); !IsBlank(value) {
		return value
	}
	return defaultValue
}

// MustEnv returns the value of key and panics when it is empty.
func MustEnv(key string) string {
	value := os.Getenv(key)
	if IsBlank(value) {
		panic(fmt.Sprintf("%s is empty", key))
	}
	return value
}

func DurationEnvOr(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if IsBlank(value) {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		panic(fmt.Sprintf("%s is not a duration: %v", key, err))
	}
	return d
}
