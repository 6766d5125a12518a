package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type Redis struct {
	Host string
	Port int
	DB   int
	Pass string
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type Admin struct {
	FullName string
	Email    string
	Password string
}

type Config struct {
	Env   string
	HTTP  HTTP
	DB    DB
	Redis Redis
	JWT   JWT
	Admin Admin
}

var (
	v        *viper.Viper
	mu       sync.Mutex
	debounce *time.Timer
)

// file change events often arrive in bursts; wait for them to settle
const debounceDelay = time.Second

func Load(path string) (Config, error) {
	v = viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("env", "dev")
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 8080)
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "helpdesk")
	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pass", "")
	v.SetDefault("jwt.secret", "dev-secret")
	v.SetDefault("jwt.issuer", "helpdesk")
	v.SetDefault("jwt.exp_min", 60)
	v.SetDefault("admin.full_name", "Administrador")
	v.SetDefault("admin.email", "admin@helpdesk.local")
	v.SetDefault("admin.password", "admin123")

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v), nil
}

// Watch re-reads the config file on change and hands the result to onChange.
// Load must have been called first.
func Watch(onChange func(Config)) {
	if v == nil {
		return
	}
	v.OnConfigChange(func(fsnotify.Event) {
		mu.Lock()
		defer mu.Unlock()
		if debounce != nil {
			debounce.Stop()
		}
		debounce = time.AfterFunc(debounceDelay, func() {
			onChange(fromViper(v))
		})
	})
	v.WatchConfig()
}

func fromViper(v *viper.Viper) Config {
	return Config{
		Env: v.GetString("env"),
		HTTP: HTTP{
			Host: v.GetString("http.host"),
			Port: v.GetInt("http.port"),
		},
		DB: DB{
			Host: v.GetString("db.host"),
			Port: v.GetInt("db.port"),
			User: v.GetString("db.user"),
			Pass: v.GetString("db.pass"),
			Name: v.GetString("db.name"),
		},
		Redis: Redis{
			Host: v.GetString("redis.host"),
			Port: v.GetInt("redis.port"),
			DB:   v.GetInt("redis.db"),
			Pass: v.GetString("redis.pass"),
		},
		JWT: JWT{
			Secret: v.GetString("jwt.secret"),
			Issuer: v.GetString("jwt.issuer"),
			ExpMin: v.GetInt("jwt.exp_min"),
		},
		Admin: Admin{
			FullName: v.GetString("admin.full_name"),
			Email:    v.GetString("admin.email"),
			Password: v.GetString("admin.password"),
		},
	}
}
