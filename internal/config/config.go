package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DBFile     string `mapstructure:"DB_FILE"`
	JWTSecret  string `mapstructure:"JWT_SECRET"`
	ListenAddr string `mapstructure:"LISTEN_ADDR"`

	// UsersLoginColumn names the users-table column that stores the durable
	// login identifier. Older deployments used external_id or kakao_id for
	// the same column; resolving the name once here keeps that schema
	// variance out of the query layer.
	UsersLoginColumn string `mapstructure:"USERS_LOGIN_COLUMN"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("DB_FILE", "giphywall.db")
	viper.SetDefault("JWT_SECRET", "giphywall-dev-secret")
	viper.SetDefault("LISTEN_ADDR", ":8080")
	viper.SetDefault("USERS_LOGIN_COLUMN", "login_identifier")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
