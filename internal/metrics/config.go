package metrics

type Config struct {
	// Enabled exposes the collectors over http.
	Enabled bool `conf:"metrics"`

	// Path is the route the collectors are exposed on.
	Path string `conf:"metrics_path"`
}
