package constants

const (
	// ConfigName is the config file base name viper looks for (proflink.yaml).
	ConfigName   = "proflink"
	ConfigFormat = "yaml"
)
