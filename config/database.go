package config

import "strings"

// RedisConfig contains Redis configuration for server-side token storage.
type RedisConfig struct {
	Addr      string `env:"ADDR"       envDefault:"localhost:6379"`
	Password  string `env:"PASSWORD"   envDefault:""`
	DB        int    `env:"DB"         envDefault:"0"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"locker-panel:token:"`
}

// Sanitize trims connection settings and restores the default key prefix.
func (r *RedisConfig) Sanitize() {
	r.Addr = strings.TrimSpace(r.Addr)
	if r.Addr == "" {
		r.Addr = "localhost:6379"
	}
	if r.DB < 0 {
		r.DB = 0
	}
	if strings.TrimSpace(r.KeyPrefix) == "" {
		r.KeyPrefix = "locker-panel:token:"
	}
}
