package config

import "time"

const (
	defaultPort             = 8080
	defaultOperationTimeout = 3 * time.Second
)

var defaultDB = DB{
	Host:    "127.0.0.1",
	Port:    "5432",
	User:    "myuser",
	Pass:    "mypassword",
	Name:    "cursos",
	SSLMode: "disable",
}

var defaultLog = Log{
	Level:   "info",
	Backend: LogBackendSlog,
}

var defaultPagination = Pagination{
	DefaultPageSize: 10,
	MaxPageSize:     10,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       50,
	Burst:      100,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default HTTP port.
func DefaultPort() int { return defaultPort }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultPagination returns the default listing settings.
func DefaultPagination() Pagination { return defaultPagination }
