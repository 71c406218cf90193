package handler

type Config struct {
	// PublicDir is the directory static files are served from.
	PublicDir string `conf:"public_dir"`
}
