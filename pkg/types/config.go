// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// OutDir is the directory converted output files are written to (default ".").
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// Overwrite replaces existing output files instead of skipping them.
	Overwrite bool `json:"overwrite" yaml:"overwrite"`
}

// HistoryConfig holds settings for the conversion history store.
type HistoryConfig struct {
	// HistoryDir is the directory holding history.db
	// (default ~/.local/share/svgconv).
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// MaxResults is the default maximum number of entries returned by
	// history queries (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Disabled turns off history recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// PreviewConfig holds settings for PNG preview rendering.
type PreviewConfig struct {
	// Size is the square preview size in pixels (default 128).
	Size int `json:"size" yaml:"size"`

	// OutDir is the directory preview PNGs are written to (default ".").
	OutDir string `json:"out_dir" yaml:"out_dir"`
}

// Config groups all stage configurations.
type Config struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	History HistoryConfig `json:"history" yaml:"history"`
	Preview PreviewConfig `json:"preview" yaml:"preview"`
}
