// Package model contains plain content records shared between layers.
package model

// Game is a downloadable game shown on the games page.
type Game struct {
	Title         string `json:"title" yaml:"title"`
	Description   string `json:"description" yaml:"description"`
	ThumbnailPath string `json:"thumbnailPath,omitempty" yaml:"thumbnailPath,omitempty"`
	DownloadPath  string `json:"downloadPath,omitempty" yaml:"downloadPath,omitempty"`
	VideoPath     string `json:"videoPath,omitempty" yaml:"videoPath,omitempty"`
}
