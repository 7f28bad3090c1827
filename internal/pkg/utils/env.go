package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// lookupEnv returns the parsed value of key, or defaultValue when the key is
// unset, blank or cannot be parsed.
func lookupEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}

	parsed, err := parse(strings.TrimSpace(value))
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return parsed
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(value string) (string, error) {
		return value, nil
	})
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvInt64(key string, defaultValue int64) int64 {
	return lookupEnv(key, defaultValue, func(value string) (int64, error) {
		return strconv.ParseInt(value, 10, 64)
	})
}

func GetEnvUint32(key string, defaultValue uint32) uint32 {
	return lookupEnv(key, defaultValue, func(value string) (uint32, error) {
		parsed, err := strconv.ParseUint(value, 10, 32)
		return uint32(parsed), err
	})
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	return lookupEnv(key, defaultValue, func(value string) (float64, error) {
		return strconv.ParseFloat(value, 64)
	})
}
