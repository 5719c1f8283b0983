package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/futuristic/perceptronx/internal/service/mock"
	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/models"
)

type tuiMocks struct {
	auth         *mock.MockClientAuthService
	directory    *mock.MockDirectoryService
	appointments *mock.MockClientAppointmentService
	messages     *mock.MockClientMessageService
	annotations  *mock.MockClientAnnotationService
	statusJob    *mock.MockClientStatusJob
}

func newTestServices(ctrl *gomock.Controller) (*service.ClientServices, tuiMocks) {
	mocks := tuiMocks{
		auth:         mock.NewMockClientAuthService(ctrl),
		directory:    mock.NewMockDirectoryService(ctrl),
		appointments: mock.NewMockClientAppointmentService(ctrl),
		messages:     mock.NewMockClientMessageService(ctrl),
		annotations:  mock.NewMockClientAnnotationService(ctrl),
		statusJob:    mock.NewMockClientStatusJob(ctrl),
	}

	services := &service.ClientServices{
		AuthService:        mocks.auth,
		DirectoryService:   mocks.directory,
		AppointmentService: mocks.appointments,
		MessageService:     mocks.messages,
		AnnotationService:  mocks.annotations,
		StatusJob:          mocks.statusJob,
	}

	return services, mocks
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(m appModel, text string) appModel {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(appModel)
	}
	return m
}

// ── login flow ──────────────────────────────────────────────────────────────

func TestLoginScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("submit dispatches the login call", func(t *testing.T) {
		services, mocks := newTestServices(ctrl)
		m := newLoginAppModel(context.Background(), services)
		m.currentScreen = screenLogin

		m = typeText(m, "cure53")
		next, _ := m.Update(keyPress("tab"))
		m = next.(appModel)
		m = typeText(m, "s3cret")

		mocks.auth.EXPECT().
			Login(gomock.Any(), models.LoginRequest{Username: "cure53", Password: "s3cret"}).
			Return(nil)

		next, cmd := m.Update(keyPress("enter"))
		m = next.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.login.submitting)

		result, ok := cmd().(loginResultMsg)
		require.True(t, ok)
		assert.NoError(t, result.err)
	})

	t.Run("remember me checkbox travels with the request", func(t *testing.T) {
		services, mocks := newTestServices(ctrl)
		m := newLoginAppModel(context.Background(), services)
		m.currentScreen = screenLogin

		m = typeText(m, "cure53")
		next, _ := m.Update(keyPress("tab"))
		m = next.(appModel)
		m = typeText(m, "s3cret")
		next, _ = m.Update(keyPress("tab")) // focus the checkbox
		m = next.(appModel)
		next, _ = m.Update(keyPress(" "))
		m = next.(appModel)
		require.True(t, m.login.remember)

		mocks.auth.EXPECT().
			Login(gomock.Any(), models.LoginRequest{Username: "cure53", Password: "s3cret", RememberMe: true}).
			Return(nil)

		_, cmd := m.Update(keyPress("enter"))
		require.NotNil(t, cmd)
		cmd()
	})

	t.Run("rejected credentials show the error overlay", func(t *testing.T) {
		services, _ := newTestServices(ctrl)
		m := newLoginAppModel(context.Background(), services)
		m.currentScreen = screenLogin
		m.login.submitting = true

		next, _ := m.Update(loginResultMsg{err: service.ErrInvalidCredentials})
		m = next.(appModel)

		assert.False(t, m.login.submitting)
		require.True(t, m.showError)
		assert.Equal(t, "Invalid username or password.", m.errorOverlay.message)

		// enter closes the overlay, it must not resubmit
		next, cmd := m.Update(keyPress("enter"))
		m = next.(appModel)
		assert.False(t, m.showError)
		assert.Nil(t, cmd)
	})

	t.Run("successful login quits the flow", func(t *testing.T) {
		services, _ := newTestServices(ctrl)
		m := newLoginAppModel(context.Background(), services)
		m.currentScreen = screenLogin

		next, cmd := m.Update(loginResultMsg{})
		m = next.(appModel)
		require.NotNil(t, cmd)

		next, cmd = m.Update(cmd())
		m = next.(appModel)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.NoError(t, m.err)
	})

	t.Run("ctrl+c reports a user quit", func(t *testing.T) {
		services, _ := newTestServices(ctrl)
		m := newLoginAppModel(context.Background(), services)

		next, cmd := m.Update(keyPress("ctrl+c"))
		m = next.(appModel)
		require.NotNil(t, cmd)
		assert.ErrorIs(t, m.err, ErrUserQuit)
	})
}

func TestRegisterScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, mocks := newTestServices(ctrl)
	m := newLoginAppModel(context.Background(), services)
	m.currentScreen = screenRegister

	m = typeText(m, "newbie")
	for _, text := range []string{"newbie@example.com", "pass-word-1", "pass-word-1"} {
		next, _ := m.Update(keyPress("tab"))
		m = next.(appModel)
		m = typeText(m, text)
	}

	mocks.auth.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{
			Username: "newbie",
			Email:    "newbie@example.com",
			Password: "pass-word-1",
		}, "pass-word-1").
		Return(nil)

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)

	result, ok := cmd().(registerResultMsg)
	require.True(t, ok)
	assert.NoError(t, result.err)
}

func TestResetScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, mocks := newTestServices(ctrl)
	m := newLoginAppModel(context.Background(), services)
	m.currentScreen = screenReset

	m = typeText(m, "cure53@example.com")

	mocks.auth.EXPECT().
		ResetPassword(gomock.Any(), "cure53@example.com").
		Return(nil)

	next, cmd := m.Update(keyPress("enter"))
	m = next.(appModel)
	require.NotNil(t, cmd)

	next, _ = m.Update(cmd())
	m = next.(appModel)
	assert.True(t, m.reset.sent)
}

// ── finder ──────────────────────────────────────────────────────────────────

func TestFinderScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summaries := []models.TherapistSummary{
		{ID: 1, Name: "Dr. Sarah Johnson"},
		{ID: 2, Name: "Dr. Michael Chen"},
	}

	t.Run("directory result fills the list", func(t *testing.T) {
		services, _ := newTestServices(ctrl)
		m := newMainAppModel(context.Background(), services)
		m.currentScreen = screenFinder
		gen := m.beginFetch()

		next, _ := m.Update(directoryLoadedMsg{gen: gen, items: summaries})
		m = next.(appModel)

		assert.False(t, m.finder.loading)
		assert.Len(t, m.finder.items, 2)
	})

	t.Run("stale directory result is dropped", func(t *testing.T) {
		services, _ := newTestServices(ctrl)
		m := newMainAppModel(context.Background(), services)
		m.currentScreen = screenFinder
		stale := m.beginFetch()
		m.beginFetch() // a newer fetch is already in flight

		next, _ := m.Update(directoryLoadedMsg{gen: stale, items: summaries})
		m = next.(appModel)

		assert.True(t, m.finder.loading, "stale result must not end the newer load")
		assert.Empty(t, m.finder.items)
	})

	t.Run("enter opens the selected therapist", func(t *testing.T) {
		services, mocks := newTestServices(ctrl)
		m := newMainAppModel(context.Background(), services)
		m.currentScreen = screenFinder
		m.finder.loading = false
		m.finder.items = summaries
		m.finder.idx = 1

		mocks.directory.EXPECT().
			Get(gomock.Any(), 2).
			Return(models.Therapist{ID: 2, Name: "Dr. Michael Chen"}, nil)

		next, cmd := m.Update(keyPress("enter"))
		m = next.(appModel)
		require.NotNil(t, cmd)
		assert.Equal(t, screenDetail, m.currentScreen)
		assert.True(t, m.detail.loading)

		loaded, ok := cmd().(therapistLoadedMsg)
		require.True(t, ok)
		require.NoError(t, loaded.err)

		next, _ = m.Update(loaded)
		m = next.(appModel)
		assert.False(t, m.detail.loading)
		assert.Equal(t, "Dr. Michael Chen", m.detail.therapist.Name)
	})

	t.Run("enter on an empty list is a no-op", func(t *testing.T) {
		services, _ := newTestServices(ctrl)
		m := newMainAppModel(context.Background(), services)
		m.currentScreen = screenFinder
		m.finder.loading = false

		next, cmd := m.Update(keyPress("enter"))
		m = next.(appModel)
		assert.Nil(t, cmd)
		assert.Equal(t, screenFinder, m.currentScreen)
	})

	t.Run("typing filters with the new query", func(t *testing.T) {
		services, mocks := newTestServices(ctrl)
		m := newMainAppModel(context.Background(), services)
		m.currentScreen = screenFinder
		m.finder.loading = false

		mocks.directory.EXPECT().
			List(gomock.Any(), "s", service.AllSpecialties).
			Return(summaries[:1], nil).
			AnyTimes()

		next, cmd := m.Update(keyPress("s"))
		m = next.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.finder.loading)
		assert.Equal(t, "s", m.finder.search.Value())
	})

	t.Run("tab cycles the specialty filter and refetches", func(t *testing.T) {
		services, mocks := newTestServices(ctrl)
		m := newMainAppModel(context.Background(), services)
		m.currentScreen = screenFinder
		m.finder.loading = false

		mocks.directory.EXPECT().
			List(gomock.Any(), "", "Anxiety").
			Return(nil, nil).
			AnyTimes()

		next, cmd := m.Update(keyPress("tab"))
		m = next.(appModel)
		require.NotNil(t, cmd)
		assert.Equal(t, "Anxiety", m.finder.specialty())
	})

	t.Run("ctrl+r drops the cached directory before reloading", func(t *testing.T) {
		services, mocks := newTestServices(ctrl)
		m := newMainAppModel(context.Background(), services)
		m.currentScreen = screenFinder
		m.finder.loading = false

		mocks.directory.EXPECT().Invalidate()
		mocks.directory.EXPECT().
			List(gomock.Any(), "", service.AllSpecialties).
			Return(summaries, nil).
			AnyTimes()

		next, cmd := m.Update(keyPress("ctrl+r"))
		m = next.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.finder.loading)
	})
}

// ── detail actions ──────────────────────────────────────────────────────────

func TestDetailScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	therapist := models.Therapist{
		ID:      3,
		Name:    "Dr. Amara Okafor",
		Address: "221B Baker Street, London",
	}

	newDetailApp := func(services *service.ClientServices) appModel {
		m := newMainAppModel(context.Background(), services)
		m.currentScreen = screenDetail
		m.detail = detailModel{therapist: therapist}
		return m
	}

	t.Run("a loads the availability schedule", func(t *testing.T) {
		services, mocks := newTestServices(ctrl)
		m := newDetailApp(services)

		mocks.directory.EXPECT().
			Availability(gomock.Any(), 3).
			Return([]models.DaySchedule{{Date: "2026-09-01"}}, nil)

		next, cmd := m.Update(keyPress("a"))
		m = next.(appModel)
		require.NotNil(t, cmd)
		assert.Equal(t, screenSchedule, m.currentScreen)

		next, _ = m.Update(cmd())
		m = next.(appModel)
		assert.False(t, m.schedule.loading)
		require.Len(t, m.schedule.days, 1)
	})

	t.Run("b opens the appointment form for this therapist", func(t *testing.T) {
		services, _ := newTestServices(ctrl)
		m := newDetailApp(services)

		next, _ := m.Update(keyPress("b"))
		m = next.(appModel)

		assert.Equal(t, screenAppointment, m.currentScreen)
		assert.Equal(t, 3, m.appointment.therapistID)
	})

	t.Run("c copies the address", func(t *testing.T) {
		services, _ := newTestServices(ctrl)
		m := newDetailApp(services)

		_, cmd := m.Update(keyPress("c"))
		assert.NotNil(t, cmd)
	})

	t.Run("c is a no-op without an address", func(t *testing.T) {
		services, _ := newTestServices(ctrl)
		m := newDetailApp(services)
		m.detail.therapist.Address = ""

		_, cmd := m.Update(keyPress("c"))
		assert.Nil(t, cmd)
	})
}

// ── submissions ─────────────────────────────────────────────────────────────

func TestAppointmentSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("submit sends the collected form", func(t *testing.T) {
		services, mocks := newTestServices(ctrl)
		m := newMainAppModel(context.Background(), services)
		m.appointment = newAppointmentFormModel(3, "Dr. Amara Okafor")
		m.currentScreen = screenAppointment

		m = typeText(m, "2026-09-01")
		next, _ := m.Update(keyPress("tab"))
		m = next.(appModel)
		m = typeText(m, "09:00")

		mocks.appointments.EXPECT().
			Request(gomock.Any(), models.AppointmentRequest{
				TherapistID: 3,
				Date:        "2026-09-01",
				Time:        "09:00",
				Type:        "Initial Consultation",
			}).
			Return("Appointment request submitted. The office will contact you shortly.", nil)

		next, cmd := m.Update(keyPress("enter"))
		m = next.(appModel)
		require.NotNil(t, cmd)

		next, statusCmd := m.Update(cmd())
		m = next.(appModel)
		assert.Equal(t, screenDetail, m.currentScreen)
		assert.Contains(t, m.detail.status, "Appointment request submitted")
		assert.NotNil(t, statusCmd)
	})

	t.Run("declined submission shows the server's message", func(t *testing.T) {
		services, _ := newTestServices(ctrl)
		m := newMainAppModel(context.Background(), services)
		m.currentScreen = screenAppointment
		m.appointment.submitting = true

		next, _ := m.Update(submissionDoneMsg{err: errors.New("This therapist is not accepting new patients.")})
		m = next.(appModel)

		assert.False(t, m.appointment.submitting)
		require.True(t, m.showError)
		assert.Contains(t, m.errorOverlay.message, "not accepting new patients")
	})
}

func TestRateSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services, mocks := newTestServices(ctrl)
	m := newMainAppModel(context.Background(), services)
	m.detail = detailModel{therapist: models.Therapist{ID: 3, Name: "Dr. Amara Okafor"}}
	m.currentScreen = screenDetail

	next, _ := m.Update(keyPress("r"))
	m = next.(appModel)
	require.Equal(t, screenRate, m.currentScreen)
	assert.Equal(t, 5, m.rate.stars)

	next, _ = m.Update(keyPress("left"))
	m = next.(appModel)
	assert.Equal(t, 4, m.rate.stars)

	m = typeText(m, "Very helpful")

	mocks.directory.EXPECT().
		Rate(gomock.Any(), 3, models.RatingRequest{Rating: 4, Comment: "Very helpful"}).
		Return(nil)

	next, cmd := m.Update(keyPress("enter"))
	m = next.(appModel)
	require.NotNil(t, cmd)

	next, _ = m.Update(cmd())
	m = next.(appModel)
	assert.Equal(t, screenDetail, m.currentScreen)
	assert.Equal(t, "Thank you for your feedback!", m.detail.status)
}

// ── home navigation and logout ──────────────────────────────────────────────

func TestHomeNavigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("opens the appointment history", func(t *testing.T) {
		services, mocks := newTestServices(ctrl)
		m := newMainAppModel(context.Background(), services)

		mocks.appointments.EXPECT().
			History(gomock.Any()).
			Return([]models.Appointment{{ID: 101, Date: "2026-09-01"}}, nil)

		next, _ := m.Update(keyPress("down"))
		m = next.(appModel)
		next, cmd := m.Update(keyPress("enter"))
		m = next.(appModel)
		require.NotNil(t, cmd)
		assert.Equal(t, screenHistory, m.currentScreen)

		next, _ = m.Update(cmd())
		m = next.(appModel)
		assert.False(t, m.history.loading)
		require.Len(t, m.history.items, 1)
	})

	t.Run("opens the detection results with a notice", func(t *testing.T) {
		services, mocks := newTestServices(ctrl)
		m := newMainAppModel(context.Background(), services)
		m.home.idx = 2

		mocks.annotations.EXPECT().
			List(gomock.Any()).
			Return(nil, "no annotations found for user", nil)

		next, cmd := m.Update(keyPress("enter"))
		m = next.(appModel)
		require.NotNil(t, cmd)

		next, _ = m.Update(cmd())
		m = next.(appModel)
		assert.Equal(t, "no annotations found for user", m.annotations.notice)
	})

	t.Run("logout calls the server and quits", func(t *testing.T) {
		services, mocks := newTestServices(ctrl)
		m := newMainAppModel(context.Background(), services)

		mocks.auth.EXPECT().Logout(gomock.Any()).Return(nil)

		next, cmd := m.Update(keyPress("ctrl+l"))
		m = next.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.logout)

		next, quitCmd := m.Update(cmd())
		m = next.(appModel)
		require.NotNil(t, quitCmd)
		assert.IsType(t, tea.QuitMsg{}, quitCmd())
	})
}
