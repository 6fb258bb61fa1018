package systems

import (
	"fmt"
	"io"
)

// MessageLog stores generation messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log. Its signature matches the logging
// callback the generators take.
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// AddSystem adds a message about the tool itself, such as a seed change.
func (ml *MessageLog) AddSystem(message string) {
	ml.AddTyped(message, MessageTypeSystem)
}

// AddAlert adds an error or warning.
func (ml *MessageLog) AddAlert(message string) {
	ml.AddTyped(message, MessageTypeAlert)
}

// AddTyped adds a message of the given type to the log
func (ml *MessageLog) AddTyped(message string, messageType MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: messageType})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Print writes every message, oldest first, one per line. With colorize set
// the lines carry terminal colour codes.
func (ml *MessageLog) Print(w io.Writer, colorize bool) error {
	for _, msg := range ml.Messages {
		if _, err := fmt.Fprintln(w, msg.Terminal(colorize)); err != nil {
			return err
		}
	}
	return nil
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}
