package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains the selectable window options and defaults
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	DefaultMode            GameMode
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 800, Height: 600, Label: "800 x 600"},
			{Width: 1200, Height: 900, Label: "1200 x 900"},
			{Width: 1600, Height: 1200, Label: "1600 x 1200"},
		},
		DefaultResolutionIndex: 0,
		DefaultMode:            ModeNormal,
	}
}
