package controller

// Package controller implements the per-screen state machines: field state,
// the submission lifecycle (idle, submitting, error, success transition), and
// navigation on success. Controllers are driven from a single goroutine (the
// UI event loop) and are not safe for concurrent use; concurrent submissions
// from the same screen are expected to be prevented at the UI layer by
// disabling submit controls while a submission is in flight.

// Application routes. The guard bounces anonymous visitors off protected
// routes and preserves the one they asked for.
const (
	RouteLogin         = "/login"
	RouteSignupRequest = "/signup"
	RouteSignupVerify  = "/signup/verify"
	RouteDashboard     = "/dashboard"
)

// Phase is the submission lifecycle phase of a screen.
type Phase string

const (
	// PhaseIdle means the screen accepts input and submissions.
	PhaseIdle Phase = "idle"
	// PhaseSubmitting means a submission is in flight.
	PhaseSubmitting Phase = "submitting"
)

// ScreenState is the shared shape of every screen's lifecycle state. Status
// holds the last error or informational message; it is a plain line near the
// form, never a structured error.
type ScreenState struct {
	Phase  Phase
	Status string
}

// Ready reports whether the screen accepts a new submission.
func (s ScreenState) Ready() bool {
	return s.Phase != PhaseSubmitting
}
