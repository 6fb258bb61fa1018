package config

// Viewer window configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 800
	WindowHeight = 600

	// Debug origin: world (0, 0) is drawn here, the centre of the window
	OriginX = 400
	OriginY = 300

	// Camera limits
	MinZoom  = 0.25
	MaxZoom  = 8.0
	ZoomStep = 1.25 // Factor applied per zoom key press
	PanSpeed = 6.0  // Pixels per frame while a pan key is held

	// Message panel
	MessageLines      = 6
	MessageLineHeight = 14
	MessagePanelTop   = WindowHeight - MessageLines*MessageLineHeight - 8
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
