package types

// FinderConfig holds the settings shared by the bookfinder commands.
type FinderConfig struct {
	// CatalogFile is the path of a YAML catalog. Empty selects the built-in catalog.
	CatalogFile string `json:"catalog" yaml:"catalog" mapstructure:"catalog"`

	// LogLevel is a logrus level name (default "warn").
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}
