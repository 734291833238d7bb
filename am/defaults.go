package am

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Tables defaults
	v.SetDefault("tables.path", "") // built-in tables
	v.SetDefault("tables.particle_match", "substring")

	// Output defaults
	v.SetDefault("output.format", "text")

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", "everforest")

	// Batch defaults
	v.SetDefault("batch.sheet", "")
	v.SetDefault("batch.header", true)
	v.SetDefault("batch.workers", 4)
}

// Default returns the configuration with only defaults applied
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// defaults always unmarshal
		panic(err)
	}
	return cfg
}
