package config

// DB holds the database configuration settings.
type DB struct {
	URL        string // full connection URL, usually from DATABASE_URL
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	GormEngine string // postgres, mysql or sqlite
}
