package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	Timezone       string   `mapstructure:"timezone"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// AuthRateLimit caps requests per client IP to the auth endpoints.
	// It only applies when Redis is configured.
	AuthRateLimit RequestLimitConfig `mapstructure:"auth_rate_limit"`
}

type RequestLimitConfig struct {
	Requests      int `mapstructure:"requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN returns the driver-specific data source name.
func (d *DatabaseConfig) GetDSN() string {
	if d.IsSQLite() {
		path := d.Path
		if path == "" {
			path = "setracker.db"
		}
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	}
	// Use loc=UTC so audit timestamps round-trip without shifting
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

func (d *DatabaseConfig) IsSQLite() bool {
	return d.Driver == "sqlite"
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

// LoginLimitConfig bounds failed login attempts per username and client IP.
// It only applies when Redis is configured.
type LoginLimitConfig struct {
	MaxAttempts   int `mapstructure:"max_attempts"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

type AuthConfig struct {
	Password   PasswordConfig   `mapstructure:"password"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	LoginLimit LoginLimitConfig `mapstructure:"login_limit"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	BaseURL      string `mapstructure:"base_url"`
}

// Enabled reports whether outgoing mail is configured.
func (e *EmailConfig) Enabled() bool {
	return e.SMTPHost != ""
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Enabled reports whether a Redis server is configured.
func (r *RedisConfig) Enabled() bool {
	return r.Host != ""
}

const (
	SequenceBackendDatabase = "database"
	SequenceBackendRedis    = "redis"
)

type TicketConfig struct {
	IDPrefix        string `mapstructure:"id_prefix"`
	SequenceBackend string `mapstructure:"sequence_backend"`
	MaxIDRetries    int    `mapstructure:"max_id_retries"`
}
