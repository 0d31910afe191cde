package config

// AppConfig holds runtime startup configuration loaded from YAML and the
// environment.
type AppConfig struct {
	Port           int       `yaml:"port"`
	DSN            string    `yaml:"dsn"` // MySQL DSN
	Env            string    `yaml:"env"` // "development" | "production"
	StaticDir      string    `yaml:"static_dir"`
	AllowedOrigins []string  `yaml:"allowed_origins"`
	Media          S3Options `yaml:"media"`

	// PaymentKey is the public payment key injected into the SPA entry page.
	PaymentKey string `yaml:"payment_key"`
}

// S3Options configures the remote media bucket. A non-empty Bucket switches
// uploads from the local static dir to remote storage.
type S3Options struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Endpoint        string `yaml:"endpoint"`
	CustomDomain    string `yaml:"custom_domain"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// RemoteMedia reports whether uploads go to the remote bucket.
func (c *AppConfig) RemoteMedia() bool { return c.Media.Bucket != "" }
