package core

// ViewConfig sizes the previewer and sets its frame rate.
type ViewConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second while autoplaying
}

// DefaultViewConfig returns an 80x24 view at 60 fps.
func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
