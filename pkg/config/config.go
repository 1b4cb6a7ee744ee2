// Файл: pkg/config/config.go
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	// Address порожній — налаштування зберігаються у пам'яті процесу.
	Address  string
	Password string
}

type TableConfig struct {
	DefaultPageSize int
	PageSizes       []int
}

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Table  TableConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Попередження: .env файл не знайдено або не вдалося завантажити.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Table: TableConfig{
			DefaultPageSize: getEnvInt("TABLE_PAGE_SIZE", 10),
			PageSizes:       []int{10, 25, 50, 100},
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
