package profile

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const (
	redactedPassword = "********"
	// dsnMask matches what url.URL.Redacted puts in place of a password.
	dsnMask = "xxxxx"
)

// Profile holds the connection parameters stored under one profile name.
// Type is free-form; no attribute is validated on add.
type Profile struct {
	Type     string `json:"type" yaml:"type"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	DBName   string `json:"db_name" yaml:"db_name"`
}

// DSN renders a driver connection string for the profile's database type.
// Nothing is dialed.
func (p Profile) DSN() string {
	return p.dsn(false)
}

// RedactedDSN is DSN with the password masked.
func (p Profile) RedactedDSN() string {
	return p.dsn(true)
}

func (p Profile) dsn(redact bool) string {
	switch strings.ToLower(p.Type) {
	case "postgres", "postgresql":
		return p.urlDSN("postgres", redact)
	case "mysql", "mariadb":
		cfg := mysql.NewConfig()
		cfg.User = p.User
		cfg.Passwd = p.Password
		if redact && p.Password != "" {
			cfg.Passwd = dsnMask
		}
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
		cfg.DBName = p.DBName
		return cfg.FormatDSN()
	case "sqlite", "sqlite3":
		return p.DBName
	default:
		scheme := strings.ToLower(p.Type)
		if scheme == "" {
			scheme = "db"
		}
		return p.urlDSN(scheme, redact)
	}
}

func (p Profile) urlDSN(scheme string, redact bool) string {
	u := url.URL{
		Scheme: scheme,
		Host:   fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:   p.DBName,
	}
	if p.User != "" || p.Password != "" {
		u.User = url.UserPassword(p.User, p.Password)
	}
	if redact && p.Password != "" {
		return u.Redacted()
	}
	return u.String()
}

// Redacted returns a copy safe for display.
func (p Profile) Redacted() Profile {
	if p.Password != "" {
		p.Password = redactedPassword
	}
	return p
}
