package models

// Default values for the snaphu release source and the local README.
const (
	DefaultSourceURL      = "https://web.stanford.edu/group/radar/softwareandlinks/sw/snaphu/"
	DefaultArchiveSuffix  = ".tar.gz"
	DefaultNamePrefix     = "snaphu-v"
	DefaultArchivePattern = `^snaphu-v(\d+\.\d+\.\d+)`
	DefaultReadmePattern  = `^Version\s+(\d+\.\d+\.\d+)`
)

// SourceConfig describes where upstream releases are published and how
// archive links are recognised.
type SourceConfig struct {
	URL            string `yaml:"url"`
	ArchiveSuffix  string `yaml:"archive_suffix"`
	NamePrefix     string `yaml:"name_prefix"`
	ArchivePattern string `yaml:"archive_pattern"`
}

// LocalConfig describes the local file recording the bundled version.
type LocalConfig struct {
	Readme        string `yaml:"readme"` // empty = resolve relative to the executable
	ReadmePattern string `yaml:"readme_pattern"`
}

// Settings is the full configuration of a check run.
type Settings struct {
	Source SourceConfig `yaml:"source"`
	Local  LocalConfig  `yaml:"local"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Source: SourceConfig{
			URL:            DefaultSourceURL,
			ArchiveSuffix:  DefaultArchiveSuffix,
			NamePrefix:     DefaultNamePrefix,
			ArchivePattern: DefaultArchivePattern,
		},
		Local: LocalConfig{
			Readme:        "",
			ReadmePattern: DefaultReadmePattern,
		},
	}
}
