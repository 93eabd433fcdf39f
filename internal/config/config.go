package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	Locale      Locale

	Database Database `envPrefix:"DB_"`
	Cart     Cart     `envPrefix:"CART_"`
	Catalog  Catalog  `envPrefix:"CATALOG_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	Kafka    Kafka    `envPrefix:"KAFKA_"`
	Line     Line     `envPrefix:"LINE_"`
	Auth     Auth     `envPrefix:"AUTH_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Locale struct {
	Timezone string `env:"TIMEZONE" envDefault:"Asia/Taipei"`
}

type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"` // sqlite, mysql
	URL    string `env:"URL" envDefault:"storefront.db"`
}

type Cart struct {
	Store         string `env:"STORE" envDefault:"sql"` // sql, redis
	SessionCookie string `env:"SESSION_COOKIE" envDefault:"aquarium_cart"`
}

type Catalog struct {
	SeedFile string `env:"SEED_FILE" envDefault:"products.json"`
}

type Redis struct {
	Addr     string        `env:"ADDR" envDefault:"localhost:6379"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	CartTTL  time.Duration `env:"CART_TTL" envDefault:"720h"`
}

type Kafka struct {
	Brokers     []string `env:"BROKERS" envSeparator:","`
	OrdersTopic string   `env:"ORDERS_TOPIC" envDefault:"orders.placed"`
}

type Line struct {
	RelayURL     string        `env:"RELAY_URL"`
	HandoffDelay time.Duration `env:"HANDOFF_DELAY" envDefault:"500ms"`
}

type Auth struct {
	// IdpSecret verifies identity tokens; empty selects the demo login provider.
	IdpSecret     string        `env:"IDP_SECRET"`
	SessionSecret string        `env:"SESSION_SECRET" envDefault:"aquarium-dev-session-secret"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"720h"`
}
