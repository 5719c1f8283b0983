package tui

import "github.com/futuristic/perceptronx/models"

// authDoneMsg ends the login flow: the server confirmed a valid session.
type authDoneMsg struct{}

type loginResultMsg struct {
	err error
}

type registerResultMsg struct {
	err error
}

type resetResultMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

// Loaded messages carry the generation of the fetch that produced them.
// The app drops any result whose generation is stale, so a slow response
// never overwrites the screen a newer fetch already filled.

type directoryLoadedMsg struct {
	gen   int
	items []models.TherapistSummary
	err   error
}

type therapistLoadedMsg struct {
	gen       int
	therapist models.Therapist
	err       error
}

type scheduleLoadedMsg struct {
	gen  int
	days []models.DaySchedule
	err  error
}

type profileLoadedMsg struct {
	gen     int
	profile models.Profile
	err     error
}

type historyLoadedMsg struct {
	gen   int
	items []models.Appointment
	err   error
}

type annotationsLoadedMsg struct {
	gen    int
	items  []models.AnnotationItem
	notice string
	err    error
}

// submissionDoneMsg reports the outcome of a write call (appointment,
// message, rating). On success the server's confirmation text is shown.
type submissionDoneMsg struct {
	message string
	err     error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
