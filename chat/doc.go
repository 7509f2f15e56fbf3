// Package chat owns the conversation state.
//
// A Session holds the transcript (an ordered list of user/model turns) and
// exposes exactly two operations on it: Send, which appends the user turn,
// forwards the whole transcript to the backend and appends the reply, and
// Reset, which clears the transcript in place. The transcript is append-only
// otherwise; no turn is ever edited or removed individually.
//
// The package also classifies raw input lines into the commands the loop
// understands (exit words, clear, empty input, plain messages).
package chat
