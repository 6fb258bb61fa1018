package systems

import (
	"image/color"

	"github.com/logrusorgru/aurora"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for generation progress (white/gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeRoom is for messages about a single room (gold)
	MessageTypeRoom
	// MessageTypeAlert is for errors and warnings (bright yellow)
	MessageTypeAlert
	// MessageTypeSystem is for messages about the tool itself (purple/magenta)
	MessageTypeSystem
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeRoom:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeAlert:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case MessageTypeSystem:
		return color.RGBA{186, 85, 211, 255} // Medium Orchid (Purple)
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray (default)
	}
}

// Terminal returns the text coloured for an ANSI terminal, or plain when
// colorize is false.
func (cm ColoredMessage) Terminal(colorize bool) string {
	au := aurora.NewAurora(colorize)
	switch cm.Type {
	case MessageTypeRoom:
		return au.Yellow(cm.Text).String()
	case MessageTypeAlert:
		return au.Bold(au.BrightYellow(cm.Text)).String()
	case MessageTypeSystem:
		return au.Magenta(cm.Text).String()
	default:
		return cm.Text
	}
}
