package config

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port      string `mapstructure:"port"`
		Env       string `mapstructure:"env"`
		ImagesDir string `mapstructure:"images_dir"`
	} `mapstructure:"app"`
	API struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
		UserID  int64         `mapstructure:"user_id"`
	} `mapstructure:"api"`
	Contact struct {
		SuccessWindow time.Duration `mapstructure:"success_window"`
		RateLimit     int64         `mapstructure:"rate_limit"`
		RateWindow    time.Duration `mapstructure:"rate_window"`
	} `mapstructure:"contact"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret         string        `mapstructure:"jwt_secret"`
		TokenLifespan     time.Duration `mapstructure:"token_lifespan"`
		AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	} `mapstructure:"auth"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
	SMTP struct {
		Host    string `mapstructure:"host"`
		Port    string `mapstructure:"port"`
		User    string `mapstructure:"user"`
		Pass    string `mapstructure:"pass"`
		ToEmail string `mapstructure:"to_email"`
	} `mapstructure:"smtp"`
}

const DefaultBaseURL = "http://localhost:8080/api"

// LoadConfig reads .env and config.yaml from the first of paths (default ".")
// and overlays environment variables.
func LoadConfig(paths ...string) (cfg Config, err error) {
	dir := "."
	if len(paths) > 0 && paths[0] != "" {
		dir = paths[0]
	}

	err = godotenv.Load(filepath.Join(dir, ".env"))
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read env only. Error: %v", err)
	}

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.images_dir", "IMAGES_DIR")
	v.BindEnv("api.base_url", "PORTFOLIO_API_URL")
	v.BindEnv("api.timeout", "API_TIMEOUT")
	v.BindEnv("api.user_id", "PORTFOLIO_USER_ID")
	v.BindEnv("contact.success_window", "CONTACT_SUCCESS_WINDOW")
	v.BindEnv("contact.rate_limit", "CONTACT_RATE_LIMIT")
	v.BindEnv("contact.rate_window", "CONTACT_RATE_WINDOW")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.group_id", "KAFKA_GROUP_ID")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	v.BindEnv("auth.admin_password_hash", "ADMIN_PASSWORD_HASH")

	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	v.BindEnv("jaeger.otlp_endpoint", "OTLP_ENDPOINT")

	v.BindEnv("smtp.host", "SMTP_HOST")
	v.BindEnv("smtp.port", "SMTP_PORT")
	v.BindEnv("smtp.user", "SMTP_USER")
	v.BindEnv("smtp.pass", "SMTP_PASS")
	v.BindEnv("smtp.to_email", "TO_EMAIL")

	err = v.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}

	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "3000")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.images_dir", "./images")
	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("api.user_id", 1)
	v.SetDefault("contact.success_window", 5*time.Second)
	v.SetDefault("contact.rate_limit", 5)
	v.SetDefault("contact.rate_window", time.Hour)
	v.SetDefault("kafka.group_id", "contact-notifier-group")
	v.SetDefault("auth.token_lifespan", 24*time.Hour)
	v.SetDefault("smtp.port", "587")
}

// splitList flattens comma separated entries; KAFKA_BROKERS arrives as a
// single string from the environment.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
