package remote

// Config holds configuration for the remote repository publisher.
type Config struct {
	// BaseURL is the API root of the remote host (e.g. https://api.github.com).
	BaseURL string `mapstructure:"base_url" default:"https://api.github.com"`
	// Owner is the repository owner (user or organization).
	Owner string `mapstructure:"owner" default:""`
	// Repo is the repository name.
	Repo string `mapstructure:"repo" default:""`
	// Branch is the branch to commit generated files to.
	Branch string `mapstructure:"branch" default:"main"`
	// Token is the bearer credential with repository-write access.
	Token string `mapstructure:"token" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
