package config

import (
	"os"
	"strings"
)

type Config struct {
	Port        string
	DataFile    string
	CORSOrigins []string
	GinMode     string
}

func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		DataFile:    getenv("DATA_FILE", "hotel_data.json"),
		CORSOrigins: splitCSV(getenv("CORS_ORIGINS", "*")),
		GinMode:     os.Getenv("GIN_MODE"),
	}
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
