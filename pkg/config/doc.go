// Package config loads configuration structs from the environment, from
// .env files and from YAML files.
//
// Environment parsing is delegated to github.com/caarlos0/env/v11 (struct
// tags `env` and `envDefault`), .env files to github.com/joho/godotenv and
// YAML to gopkg.in/yaml.v3.
//
//	type Config struct {
//	    Dir      string `env:"TMPNAME_DIR" envDefault:"/tmp" yaml:"dir"`
//	    MaxNames uint64 `env:"TMPNAME_MAX_NAMES" envDefault:"238328" yaml:"max_names"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Load reads ./.env (when present) before the first parse and caches the
// parsed value per type; ForceReloadConfig and ResetCache exist for tests.
// LoadEnv loads explicit .env files into the process environment. LoadFile
// reads a YAML file on top of the `envDefault` values without touching the
// cache.
//
// All errors wrap one of the sentinels in errors.go and can be matched with
// errors.Is.
package config
