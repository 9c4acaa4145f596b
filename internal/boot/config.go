package boot

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env     string `env:"ENV,default=dev"`
	DataDir string `env:"DATA_DIR"`
	Server  struct {
		Port        string `env:"PORT,default=8080"`
		MetricsPort string `env:"METRICS_PORT,default=8081"`
		Origins     string `env:"ALLOWED_ORIGINS,default=*"`
	}
	Auth struct {
		JWTSecret        string        `env:"JWT_SECRET,required"`
		TokenTTL         time.Duration `env:"TOKEN_TTL,default=24h"`
		OperatorHandle   string        `env:"OPERATOR_HANDLE,default=admin"`
		OperatorEmail    string        `env:"OPERATOR_EMAIL"`
		OperatorPassword string        `env:"OPERATOR_PASSWORD"`
	}
	Webhooks struct {
		VerifyToken string `env:"WEBHOOK_VERIFY_TOKEN,required"`
		AppSecret   string `env:"WEBHOOK_APP_SECRET"`
	}
	Messaging struct {
		APIBase       string `env:"MESSAGING_API_BASE,default=https://graph.facebook.com/v18.0"`
		Token         string `env:"MESSAGING_API_TOKEN"`
		PhoneNumberID string `env:"MESSAGING_PHONE_NUMBER_ID"`
	}
	Social struct {
		APIBase string `env:"SOCIAL_API_BASE,default=https://graph.facebook.com/v18.0"`
		Token   string `env:"SOCIAL_API_TOKEN"`
		PageID  string `env:"SOCIAL_PAGE_ID"`
	}
	Media struct {
		APIBase   string `env:"MEDIA_API_BASE,default=https://graph.facebook.com/v18.0"`
		Token     string `env:"MEDIA_API_TOKEN"`
		AccountID string `env:"MEDIA_ACCOUNT_ID"`
	}
	Pixel struct {
		APIBase string `env:"PIXEL_API_BASE,default=https://graph.facebook.com/v18.0"`
		Token   string `env:"PIXEL_API_TOKEN"`
		PixelID string `env:"PIXEL_ID"`
	}
}

func Load() (*Config, error) {
	config := &Config{}
	if err := envconfig.Process(context.Background(), config); err != nil {
		return nil, fmt.Errorf("parsing env vars: %w", err)
	}
	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "dev"
}

func (c *Config) DataDirectory() string {
	return c.DataDir
}
