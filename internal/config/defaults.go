package config

const (
	defaultBaseURL        = "http://127.0.0.1:5000"
	defaultRequestTimeout = 30
	defaultLogDir         = "~/.local/share/gavel/logs"
	defaultCacheDir       = "~/.cache/gavel"
	defaultPageSize       = 10
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Backend: Backend{
			BaseURL:        defaultBaseURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		UI: UI{
			PageSize: defaultPageSize,
		},
		Cache: Cache{
			Enabled: true,
			Dir:     defaultCacheDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
