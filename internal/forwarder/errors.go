package forwarder

import "errors"

// Failure messages are caller-visible contract text: every failure collapses
// to the same 500 envelope and is distinguishable only by its message, so the
// wording (including capitalization) must stay stable.
var (
	// ErrEventRequired is returned when the event field fails the
	// truthiness check.
	ErrEventRequired = errors.New("Event name is required")

	// ErrConfigMissing is returned when either Supabase value is absent.
	// No outbound call is attempted in that case.
	ErrConfigMissing = errors.New("Supabase configuration missing")
)
