package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Extract.FFProbePath == "" {
		cfg.Extract.FFProbePath = "ffprobe"
	}
	if cfg.Extract.ProbeTimeoutSeconds == 0 {
		cfg.Extract.ProbeTimeoutSeconds = 30
	}
	// PDFMargin defaults to zero: all page text is kept.
}
