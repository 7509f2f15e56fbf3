package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/LILHARSHNIK999/chatbot-google-Gemini/chat"
	"github.com/LILHARSHNIK999/chatbot-google-Gemini/config"
	"github.com/LILHARSHNIK999/chatbot-google-Gemini/model"
	"github.com/LILHARSHNIK999/chatbot-google-Gemini/provider"
)

// Loop reads operator input line by line and drives the session.
//
// It runs until an exit word is read or input is exhausted; both end the
// process with success. Send failures are printed and the loop continues.
type Loop struct {
	Session *chat.Session
	In      io.Reader
	Out     io.Writer

	// Updates optionally delivers reloaded configs; a model change is
	// applied before the next read. May be nil.
	Updates <-chan config.Config
}

// Run executes the loop until exit or end of input.
func (l *Loop) Run(ctx context.Context) error {
	l.banner()

	scanner := bufio.NewScanner(l.In)
	for {
		l.applyPendingConfig()

		fmt.Fprint(l.Out, promptStyle.Render("You: "))
		if !scanner.Scan() {
			// End of input counts as an implicit exit.
			fmt.Fprintln(l.Out)
			l.farewell()
			return scanner.Err()
		}

		cmd := chat.Parse(scanner.Text())
		switch cmd.Kind {
		case chat.KindEmpty:
			continue
		case chat.KindExit:
			l.farewell()
			return nil
		case chat.KindClear:
			l.Session.Reset()
			fmt.Fprintln(l.Out, noticeStyle.Render("Conversation has been reset."))
			fmt.Fprintln(l.Out)
		case chat.KindMessage:
			l.send(ctx, cmd.Text)
		}
	}
}

// send forwards one message and prints the reply or a diagnostic.
func (l *Loop) send(ctx context.Context, text string) {
	thinking := dimStyle.Render("Gemini is thinking...")
	fmt.Fprint(l.Out, thinking+"\r")

	reply, err := l.Session.Send(ctx, text)

	// Overwrite the busy indicator before printing the result.
	fmt.Fprint(l.Out, strings.Repeat(" ", len("Gemini is thinking..."))+"\r")

	if err != nil {
		fmt.Fprintln(l.Out, errorStyle.Render("Error: ")+diagnose(err))
		fmt.Fprintln(l.Out)
		return
	}
	fmt.Fprintln(l.Out, replyTagStyle.Render("Gemini: ")+reply)
	fmt.Fprintln(l.Out)
}

// applyPendingConfig picks up a reloaded config without blocking the loop.
func (l *Loop) applyPendingConfig() {
	if l.Updates == nil {
		return
	}
	select {
	case cfg, ok := <-l.Updates:
		if !ok {
			l.Updates = nil
			return
		}
		resolved := model.Resolve(cfg.Model)
		if resolved != l.Session.Model() {
			l.Session.SetModel(resolved)
			fmt.Fprintln(l.Out, noticeStyle.Render("Switched model to "+resolved+"."))
		}
	default:
	}
}

func (l *Loop) banner() {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(l.Out, dimStyle.Render(rule))
	fmt.Fprintln(l.Out, bannerStyle.Render("Welcome to Gemini Chatbot!"))
	fmt.Fprintln(l.Out, "Type 'exit', 'quit', or 'bye' to end the conversation.")
	fmt.Fprintln(l.Out, "Type 'clear' to start a new conversation.")
	fmt.Fprintln(l.Out, dimStyle.Render(rule))
	fmt.Fprintln(l.Out)
}

func (l *Loop) farewell() {
	fmt.Fprintln(l.Out)
	fmt.Fprintln(l.Out, "Thank you for chatting! Goodbye.")
}

// diagnose turns a typed send failure into a human-readable message,
// keeping the collaborator's own diagnostic text.
func diagnose(err error) string {
	switch {
	case provider.IsAuthError(err):
		return fmt.Sprintf("the API key was rejected (%v). Check your key at %s.", err, config.APIKeyURL)
	case provider.IsQuotaError(err):
		return fmt.Sprintf("quota or rate limit reached (%v). Wait a moment and try again.", err)
	case provider.IsNetworkError(err):
		return fmt.Sprintf("could not reach the Gemini service (%v). Check your connection and try again.", err)
	case provider.IsEmptyReply(err):
		return fmt.Sprintf("the model returned an empty reply (%v). Try rephrasing your message.", err)
	default:
		return err.Error()
	}
}
