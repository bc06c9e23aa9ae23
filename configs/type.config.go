package config

import (
	"context"

	"ashok-storefront/internal/common/enum"
	catalogService "ashok-storefront/internal/service/catalog"
	orderService "ashok-storefront/internal/service/order"
)

// Config holds all application configuration loaded from environment variables
type Config struct {
	AppEnv           enum.EnvEnum `env:"APP_ENV" envDefault:"development" validate:"enum"`
	AppPort          int          `env:"APP_PORT" envDefault:"8080" validate:"gt=0,lte=65535"`
	WhatsAppNumber   string       `env:"WHATSAPP_NUMBER" envDefault:"+919618108744" validate:"required,e164"`
	WhatsAppHost     string       `env:"WHATSAPP_HOST" envDefault:"wa.me" validate:"required,hostname_rfc1123"`
	CurrencySymbol   string       `env:"CURRENCY_SYMBOL" envDefault:"₹" validate:"required"`
	CatalogPath      string       `env:"CATALOG_PATH" envDefault:""`
	CorsAllowOrigins string       `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
}

// OrderConfig is the part of Config the order link builder needs
func (c *Config) OrderConfig() orderService.Config {
	return orderService.Config{
		MessagingHost:  c.WhatsAppHost,
		Destination:    c.WhatsAppNumber,
		CurrencySymbol: c.CurrencySymbol,
	}
}

// SetupServerDto contains dependencies for server setup
type SetupServerDto struct {
	Ctx     context.Context
	Cancel  context.CancelFunc
	Env     *Config
	Catalog catalogService.IService
	Order   orderService.IService
}
