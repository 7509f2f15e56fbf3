package chat

import "strings"

// CommandKind classifies one line of operator input.
type CommandKind int

// Command kinds, in dispatch order.
const (
	// KindEmpty is a blank or whitespace-only line; the loop ignores it.
	KindEmpty CommandKind = iota

	// KindExit terminates the loop ("exit", "quit", "bye", any case).
	KindExit

	// KindClear resets the transcript ("clear", any case).
	KindClear

	// KindMessage is anything else; the line is sent to the model.
	KindMessage
)

// String returns the kind name.
func (k CommandKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindExit:
		return "exit"
	case KindClear:
		return "clear"
	case KindMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Command is a classified input line.
type Command struct {
	Kind CommandKind

	// Text is the trimmed input; set only for KindMessage.
	Text string
}

// exitWords terminate the conversation. Matching is case-insensitive and
// exact (a message containing "exit" mid-sentence is still a message).
var exitWords = map[string]bool{
	"exit": true,
	"quit": true,
	"bye":  true,
}

// Parse classifies one line of input. Control words are only recognized
// when they are the entire (trimmed) line.
func Parse(line string) Command {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Command{Kind: KindEmpty}
	}

	lower := strings.ToLower(trimmed)
	if exitWords[lower] {
		return Command{Kind: KindExit}
	}
	if lower == "clear" {
		return Command{Kind: KindClear}
	}
	return Command{Kind: KindMessage, Text: trimmed}
}
