// Package gemini implements the provider.Client interface on top of the
// official Google Gemini API SDK (google.golang.org/genai).
//
// The backend is stateless: every Complete call converts the caller's full
// transcript into SDK content values and sends it whole. The SDK's own
// stateful chat session object is deliberately not used, so conversation
// state lives in exactly one place (the caller's transcript).
//
// Vendor failures are translated into the provider package's error taxonomy
// (auth, quota, network, empty reply) with the vendor's diagnostic text
// preserved through error wrapping.
package gemini
