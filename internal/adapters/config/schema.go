package config

// File is the structure of the optional config.yaml.
// Pointer fields distinguish an absent key from an explicitly empty one.
type File struct {
	ServiceURL *string `yaml:"service_url"`
	Timeout    *string `yaml:"timeout"`
	LogDir     *string `yaml:"log_dir"`
}
