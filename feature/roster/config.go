package roster

// Config holds configuration for the roster reconciliation feature.
type Config struct {
	// Enabled gates loading of the feature's HTTP routes.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Source selects the reference unit provider (database, static).
	Source string `mapstructure:"source" default:"database"`
	// AllowFallback permits falling back to the static dataset when the
	// database provider fails.
	AllowFallback bool `mapstructure:"allow_fallback" default:"true"`
	// RepoPrefix is the directory inside the remote repository under which
	// generated faction files are published.
	RepoPrefix string `mapstructure:"repo_prefix" default:"data"`
}

const (
	SourceDatabase = "database"
	SourceStatic   = "static"
)

// IsValidSource checks if the configured reference source is valid.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceDatabase, SourceStatic:
		return true
	default:
		return false
	}
}
