package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	DB       DBConfig
	Redis    RedisConfig
	Operator OperatorConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// StoreConfig selects the key-value backend for the named collections.
// Driver is one of "memory", "redis" or "postgres".
type StoreConfig struct {
	Driver string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// OperatorConfig is the display identity for the front-desk shell (GET /me).
type OperatorConfig struct {
	Name   string
	Avatar string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional; plain environment variables are enough
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	driver := viper.GetString("STORE_DRIVER")
	if driver == "" {
		driver = "memory"
	}

	port := viper.GetString("APP_PORT")
	if port == "" {
		port = "8080"
	}

	operatorName := viper.GetString("OPERATOR_NAME")
	if operatorName == "" {
		operatorName = "Recepção"
	}

	config := &Config{
		App: AppConfig{
			Port: port,
			Env:  viper.GetString("APP_ENV"),
		},
		Store: StoreConfig{
			Driver: driver,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Operator: OperatorConfig{
			Name:   operatorName,
			Avatar: viper.GetString("OPERATOR_AVATAR"),
		},
	}

	return config, nil
}
