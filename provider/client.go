// Package provider defines the interface between the chat client and the
// hosted generation service.
//
// The chat loop and session manager only ever talk to the Client interface;
// the concrete backend (the Gemini API) registers itself through the factory
// registry. This keeps the collaborator opaque: the core sends a transcript
// and a model name, and gets back generated text or a typed failure.
//
// # Usage
//
// Create a client using the registry:
//
//	client, err := provider.New("gemini", provider.Config{
//	    APIKey: key,
//	    Model:  "gemini-2.0-flash",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
package provider

import "context"

// Client is the interface to a hosted generation backend.
// Implementations must be safe for concurrent use, although the chat loop
// only ever keeps one request outstanding.
type Client interface {
	// Complete sends the full transcript and returns the model's reply.
	// The context controls cancellation and timeouts. Failures are returned
	// as *Error values wrapping one of the package's sentinel errors.
	Complete(ctx context.Context, req Request) (*Response, error)

	// Provider returns the backend name (e.g. "gemini").
	Provider() string

	// Close releases any resources held by the client.
	Close() error
}
