package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type App struct {
	APIEnv          string `envconfig:"API_ENV" default:"local"`
	Port            string `envconfig:"PORT" default:"9090"`
	AppHost         string `envconfig:"APP_HOST"`
	MaintenanceMode bool   `envconfig:"MAINTENANCE_MODE" default:"false"`
	TLSEnable       bool   `envconfig:"TLS_ENABLE" default:"false"`

	// DB. STORE_DRIVER=memory keeps everything in process.
	StoreDriver      string `envconfig:"STORE_DRIVER" default:"postgres"`
	DatabaseHost     string `envconfig:"DATABASE_HOST" default:"localhost"`
	DatabasePort     string `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseUser     string `envconfig:"DATABASE_USER" default:"postgres"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"studio"`
	DatabaseSSLMode  string `envconfig:"DATABASE_SSLMODE" default:"disable"`
	DatabaseTimezone string `envconfig:"DATABASE_TIMEZONE" default:"UTC"`

	// Redis connection URL. Empty disables the availability cache.
	RedisHost            string        `envconfig:"REDIS_HOST"`
	AvailabilityCacheTTL time.Duration `envconfig:"AVAILABILITY_CACHE_TTL" default:"5m"`

	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`

	// Admin credential. The password is stored as a bcrypt hash.
	AdminEmail        string `envconfig:"ADMIN_EMAIL" required:"true"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`

	// Mail
	MailTransport string `envconfig:"MAIL_TRANSPORT" default:"log"`
	MailFrom      string `envconfig:"MAIL_FROM" default:"bookings@localhost"`
	MailFromName  string `envconfig:"MAIL_FROM_NAME" default:"Studio Bookings"`
	SMTPHost      string `envconfig:"SMTP_HOST"`
	SMTPPort      int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername  string `envconfig:"SMTP_USERNAME"`
	SMTPPassword  string `envconfig:"SMTP_PASSWORD"`

	// Storage
	S3AssetsBucket string `envconfig:"S3_ASSETS_BUCKET"`

	// Jobs
	HousekeepingEnabled bool   `envconfig:"HOUSEKEEPING_ENABLED" default:"true"`
	HousekeepingCron    string `envconfig:"HOUSEKEEPING_CRON" default:"5 0 * * *"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

func (c App) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", c.DatabaseHost, c.DatabaseUser, c.DatabasePassword, c.DatabaseName, c.DatabasePort, c.DatabaseSSLMode, c.DatabaseTimezone)
}

func (c App) IsProd() bool {
	return c.APIEnv == "production"
}

func (c App) IsLocal() bool {
	return c.APIEnv == "local"
}

func (c App) UseMemoryStore() bool {
	return c.StoreDriver == "memory"
}

func (c App) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpireMin) * time.Minute
}
