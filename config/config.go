package config

import (
	"fmt"
	"time"
)

// Duration lets toml files write durations as strings like "720h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Configs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`

	Database  DatabaseConfigs `toml:"database"`
	ApiServer ServerConfigs   `toml:"api_server"`
	Auth      AuthConfigs     `toml:"auth"`
	Session   SessionConfigs  `toml:"session"`
	Redis     RedisConfigs    `toml:"redis"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`

	AllowOrigins []string `toml:"allow_origins"`
}

func (s *ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type AuthConfigs struct {
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Name       string   `toml:"name"`
	Secret     string   `toml:"secret"`
	Expiration Duration `toml:"expiration"`
}

type SessionConfigs struct {
	Secret string `toml:"secret"`
	Name   string `toml:"name"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}
