package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	} `mapstructure:"server"`

	Data struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"data"`

	SMTP struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		From     string `mapstructure:"from"`
	} `mapstructure:"smtp"`

	Mail struct {
		OperatorInbox string `mapstructure:"operator_inbox"`
	} `mapstructure:"mail"`

	AMQP struct {
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
	} `mapstructure:"amqp"`

	Admin struct {
		User         string `mapstructure:"user"`
		Password     string `mapstructure:"password"`
		PasswordHash string `mapstructure:"password_hash"`
	} `mapstructure:"admin"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Sensible defaults so the binary works without a config file
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("data.dir", "data")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from", "no-reply@brandleads.local")
	v.SetDefault("mail.operator_inbox", "leads@brandleads.local")
	v.SetDefault("amqp.user", "guest")
	v.SetDefault("amqp.password", "guest")
	v.SetDefault("amqp.host", "localhost")
	v.SetDefault("amqp.port", "5672")
	v.SetDefault("admin.user", "admin")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("⚠️ No config file loaded, using env and defaults: %v", err)
	}

	// Explicit env overrides for the values that usually come from .env
	bindEnv(v, "server.port", "PORT")
	bindEnv(v, "data.dir", "DATA_DIR")
	bindEnv(v, "smtp.host", "MAIL_HOST")
	bindEnv(v, "smtp.port", "MAIL_PORT")
	bindEnv(v, "smtp.user", "MAIL_USER")
	bindEnv(v, "smtp.password", "MAIL_PASS")
	bindEnv(v, "smtp.from", "MAIL_FROM")
	bindEnv(v, "mail.operator_inbox", "OPERATOR_INBOX")
	bindEnv(v, "amqp.user", "AMQP_USER")
	bindEnv(v, "amqp.password", "AMQP_PASS")
	bindEnv(v, "amqp.host", "AMQP_HOST")
	bindEnv(v, "amqp.port", "AMQP_PORT")
	bindEnv(v, "admin.user", "ADMIN_USER")
	bindEnv(v, "admin.password", "ADMIN_PASS")
	bindEnv(v, "admin.password_hash", "ADMIN_PASS_HASH")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("❌ Failed to parse configuration: %v", err)
	}

	return &cfg
}

func bindEnv(v *viper.Viper, key, env string) {
	if err := v.BindEnv(key, env); err != nil {
		log.Fatalf("❌ Failed to bind %s: %v", env, err)
	}
}
