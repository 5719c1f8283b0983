package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenReset
	screenHome
	screenFinder
	screenDetail
	screenSchedule
	screenRate
	screenAppointment
	screenMessage
	screenHistory
	screenProfile
	screenAnnotations
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	mode          appMode
	currentScreen screen

	welcome     welcomeModel
	login       loginModel
	register    registerModel
	reset       resetModel
	home        homeModel
	finder      finderModel
	detail      detailModel
	schedule    scheduleModel
	rate        rateModel
	appointment appointmentFormModel
	message     messageFormModel
	history     historyModel
	profile     profileModel
	annotations annotationsModel

	// fetchGen stamps every async load. A response carrying an older
	// generation is dropped, so a slow reply cannot clobber the result of
	// a newer fetch.
	fetchGen int

	showError    bool
	errorOverlay errorOverlayModel

	err    error
	logout bool
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		reset:         newResetModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices) appModel {
	m := newLoginAppModel(ctx, services)
	m.mode = modeMain
	m.currentScreen = screenHome
	m.home = newHomeModel()
	m.finder = newFinderModel()
	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

// beginFetch advances the generation counter and returns the stamp the next
// load command should carry.
func (m *appModel) beginFetch() int {
	m.fetchGen++
	return m.fetchGen
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.mode == modeMain && key.Matches(msg, keys.logout) {
			m.logout = true
			return m, m.cmdLogout()
		}

	case loginResultMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m, func() tea.Msg { return authDoneMsg{} }

	case registerResultMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m, func() tea.Msg { return authDoneMsg{} }

	case authDoneMsg:
		return m, tea.Quit

	case resetResultMsg:
		m.reset.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.reset.sent = true
		return m, nil

	case logoutDoneMsg:
		return m, tea.Quit

	case directoryLoadedMsg:
		if msg.gen != m.fetchGen {
			return m, nil
		}
		m.finder.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.finder.items = msg.items
		if m.finder.idx >= len(m.finder.items) {
			m.finder.idx = len(m.finder.items) - 1
		}
		if m.finder.idx < 0 {
			m.finder.idx = 0
		}
		return m, nil

	case therapistLoadedMsg:
		if msg.gen != m.fetchGen {
			return m, nil
		}
		m.detail.loading = false
		if msg.err != nil {
			m.currentScreen = screenFinder
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.detail.therapist = msg.therapist
		return m, nil

	case scheduleLoadedMsg:
		if msg.gen != m.fetchGen {
			return m, nil
		}
		m.schedule.loading = false
		if msg.err != nil {
			m.currentScreen = screenDetail
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.schedule.days = msg.days
		return m, nil

	case profileLoadedMsg:
		if msg.gen != m.fetchGen {
			return m, nil
		}
		m.profile.loading = false
		if msg.err != nil {
			m.currentScreen = screenHome
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.profile.profile = msg.profile
		return m, nil

	case historyLoadedMsg:
		if msg.gen != m.fetchGen {
			return m, nil
		}
		m.history.loading = false
		if msg.err != nil {
			m.currentScreen = screenHome
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.history.items = msg.items
		return m, nil

	case annotationsLoadedMsg:
		if msg.gen != m.fetchGen {
			return m, nil
		}
		m.annotations.loading = false
		if msg.err != nil {
			m.currentScreen = screenHome
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.annotations.items = msg.items
		m.annotations.notice = msg.notice
		if m.annotations.idx >= len(m.annotations.items) {
			m.annotations.idx = 0
		}
		return m, nil

	case submissionDoneMsg:
		m.rate.submitting = false
		m.appointment.submitting = false
		m.message.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenDetail
		m.detail.status = msg.message
		return m, cmdClearStatus()

	case copiedMsg:
		m.detail.status = "Address copied to clipboard"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.finder.loading {
			var cmd tea.Cmd
			m.finder.spinner, cmd = m.finder.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenReset:
		return m.updateReset(msg)
	case screenHome:
		return m.updateHome(msg)
	case screenFinder:
		return m.updateFinder(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenSchedule:
		return m.updateSchedule(msg)
	case screenRate:
		return m.updateRate(msg)
	case screenAppointment:
		return m.updateAppointment(msg)
	case screenMessage:
		return m.updateMessage(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenAnnotations:
		return m.updateAnnotations(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenReset:
		body = m.reset.View()
	case screenHome:
		body = m.home.View()
	case screenFinder:
		body = m.finder.View()
	case screenDetail:
		body = m.detail.View()
	case screenSchedule:
		body = m.schedule.View()
	case screenRate:
		body = m.rate.View()
	case screenAppointment:
		body = m.appointment.View()
	case screenMessage:
		body = m.message.View()
	case screenHistory:
		body = m.history.View()
	case screenProfile:
		body = m.profile.View()
	case screenAnnotations:
		body = m.annotations.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// ── login-flow screens ──────────────────────────────────────────────────────

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.welcome.idx {
		case 0:
			m.currentScreen = screenLogin
		case 1:
			m.currentScreen = screenRegister
		case 2:
			m.reset = newResetModel()
			m.currentScreen = screenReset
		}
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = loginFocusMove(m.login, +1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = loginFocusMove(m.login, -1)
			return m, nil
		case key.Matches(keyMsg, keys.space) && m.login.focus == 2:
			m.login.remember = !m.login.remember
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.LoginRequest{
				Username:   m.login.inputs[0].Value(),
				Password:   m.login.inputs[1].Value(),
				RememberMe: m.login.remember,
			})
		}
	}

	if m.login.focus < len(m.login.inputs) {
		var cmd tea.Cmd
		m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = registerFocusMove(m.register, +1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = registerFocusMove(m.register, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(models.RegisterRequest{
				Username: m.register.inputs[0].Value(),
				Email:    m.register.inputs[1].Value(),
				Password: m.register.inputs[2].Value(),
			}, m.register.inputs[3].Value())
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.reset.submitting || m.reset.sent {
				return m, nil
			}
			m.reset.submitting = true
			return m, m.cmdResetPassword(m.reset.input.Value())
		}
	}

	var cmd tea.Cmd
	m.reset.input, cmd = m.reset.input.Update(msg)
	return m, cmd
}

// ── main-loop screens ───────────────────────────────────────────────────────

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < len(m.home.items)-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.home.idx {
		case 0:
			m.currentScreen = screenFinder
			return m.reloadFinder()
		case 1:
			m.currentScreen = screenHistory
			m.history.loading = true
			return m, m.cmdLoadHistory(m.beginFetch())
		case 2:
			m.currentScreen = screenAnnotations
			m.annotations.loading = true
			return m, m.cmdLoadAnnotations(m.beginFetch())
		case 3:
			m.currentScreen = screenProfile
			m.profile.loading = true
			return m, m.cmdLoadProfile(m.beginFetch())
		}
	}
	return m, nil
}

// reloadFinder dispatches a directory fetch for the current search and
// specialty, stamping it with a fresh generation.
func (m appModel) reloadFinder() (tea.Model, tea.Cmd) {
	m.finder.loading = true
	gen := m.beginFetch()
	return m, tea.Batch(
		m.finder.spinner.Tick,
		m.cmdLoadDirectory(gen, m.finder.search.Value(), m.finder.specialty()),
	)
}

func (m appModel) updateFinder(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.arrowUp):
			if m.finder.idx > 0 {
				m.finder.idx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.arrowDown):
			if m.finder.idx < len(m.finder.items)-1 {
				m.finder.idx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.finder.specialtyIdx = (m.finder.specialtyIdx + 1) % len(specialtyOptions)
			return m.reloadFinder()
		case key.Matches(keyMsg, keys.backtab):
			m.finder.specialtyIdx = (m.finder.specialtyIdx - 1 + len(specialtyOptions)) % len(specialtyOptions)
			return m.reloadFinder()
		case key.Matches(keyMsg, keys.refresh):
			m.services.DirectoryService.Invalidate()
			return m.reloadFinder()
		case key.Matches(keyMsg, keys.enter):
			summary, ok := m.finder.current()
			if !ok {
				return m, nil
			}
			m.currentScreen = screenDetail
			m.detail = detailModel{loading: true}
			return m, m.cmdLoadTherapist(m.beginFetch(), summary.ID)
		}
	}

	before := m.finder.search.Value()
	var cmd tea.Cmd
	m.finder.search, cmd = m.finder.search.Update(msg)
	if m.finder.search.Value() != before {
		reloaded, reloadCmd := m.reloadFinder()
		return reloaded, tea.Batch(cmd, reloadCmd)
	}
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.detail.loading {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenFinder
		return m, nil
	case key.Matches(keyMsg, keys.schedule):
		m.currentScreen = screenSchedule
		m.schedule = scheduleModel{therapistName: m.detail.therapist.Name, loading: true}
		return m, m.cmdLoadSchedule(m.beginFetch(), m.detail.therapist.ID)
	case key.Matches(keyMsg, keys.book):
		m.appointment = newAppointmentFormModel(m.detail.therapist.ID, m.detail.therapist.Name)
		m.currentScreen = screenAppointment
		return m, nil
	case key.Matches(keyMsg, keys.message):
		m.message = newMessageFormModel(m.detail.therapist.ID, m.detail.therapist.Name)
		m.currentScreen = screenMessage
		return m, nil
	case key.Matches(keyMsg, keys.rate):
		m.rate = newRateModel(m.detail.therapist.Name)
		m.rate.therapistID = m.detail.therapist.ID
		m.currentScreen = screenRate
		return m, nil
	case key.Matches(keyMsg, keys.copyAddr):
		if m.detail.therapist.Address == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.therapist.Address)
	}

	return m, nil
}

func (m appModel) updateSchedule(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.book):
		m.appointment = newAppointmentFormModel(m.detail.therapist.ID, m.detail.therapist.Name)
		m.currentScreen = screenAppointment
	}
	return m, nil
}

func (m appModel) updateRate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDetail
			return m, nil
		case key.Matches(keyMsg, keys.arrowLeft):
			if m.rate.stars > 1 {
				m.rate.stars--
			}
			return m, nil
		case key.Matches(keyMsg, keys.arrowRight):
			if m.rate.stars < 5 {
				m.rate.stars++
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.rate.submitting {
				return m, nil
			}
			m.rate.submitting = true
			return m, m.cmdRateTherapist(m.rate.therapistID, models.RatingRequest{
				Rating:  float64(m.rate.stars),
				Comment: m.rate.comment.Value(),
			})
		}
	}

	var cmd tea.Cmd
	m.rate.comment, cmd = m.rate.comment.Update(msg)
	return m, cmd
}

func (m appModel) updateAppointment(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDetail
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.appointment = appointmentFocusMove(m.appointment, +1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.appointment = appointmentFocusMove(m.appointment, -1)
			return m, nil
		case key.Matches(keyMsg, keys.arrowLeft) && m.appointment.focus == 0:
			m.appointment.typeIdx = (m.appointment.typeIdx - 1 + len(appointmentTypes)) % len(appointmentTypes)
			return m, nil
		case key.Matches(keyMsg, keys.arrowRight) && m.appointment.focus == 0:
			m.appointment.typeIdx = (m.appointment.typeIdx + 1) % len(appointmentTypes)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.appointment.submitting {
				return m, nil
			}
			m.appointment.submitting = true
			return m, m.cmdRequestAppointment(m.appointment.request())
		}
	}

	if m.appointment.focus > 0 {
		idx := m.appointment.focus - 1
		var cmd tea.Cmd
		m.appointment.inputs[idx], cmd = m.appointment.inputs[idx].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateMessage(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDetail
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.message = messageFocusMove(m.message, +1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.message = messageFocusMove(m.message, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.message.submitting {
				return m, nil
			}
			m.message.submitting = true
			return m, m.cmdSendMessage(m.message.request())
		}
	}

	var cmd tea.Cmd
	m.message.inputs[m.message.focus], cmd = m.message.inputs[m.message.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.refresh):
		m.history.loading = true
		return m, m.cmdLoadHistory(m.beginFetch())
	}
	return m, nil
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.esc) {
		m.currentScreen = screenHome
	}
	return m, nil
}

func (m appModel) updateAnnotations(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.up):
		if m.annotations.idx > 0 {
			m.annotations.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.annotations.idx < len(m.annotations.items)-1 {
			m.annotations.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.annotations.loading = true
		return m, m.cmdLoadAnnotations(m.beginFetch())
	}
	return m, nil
}

// ── commands ────────────────────────────────────────────────────────────────

func (m appModel) cmdLogin(creds models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return loginResultMsg{err: auth.Login(ctx, creds)}
	}
}

func (m appModel) cmdRegister(reg models.RegisterRequest, confirmation string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return registerResultMsg{err: auth.Register(ctx, reg, confirmation)}
	}
}

func (m appModel) cmdResetPassword(email string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return resetResultMsg{err: auth.ResetPassword(ctx, email)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdLoadDirectory(gen int, query, specialty string) tea.Cmd {
	ctx := m.ctx
	directory := m.services.DirectoryService
	return func() tea.Msg {
		items, err := directory.List(ctx, query, specialty)
		return directoryLoadedMsg{gen: gen, items: items, err: err}
	}
}

func (m appModel) cmdLoadTherapist(gen, id int) tea.Cmd {
	ctx := m.ctx
	directory := m.services.DirectoryService
	return func() tea.Msg {
		therapist, err := directory.Get(ctx, id)
		return therapistLoadedMsg{gen: gen, therapist: therapist, err: err}
	}
}

func (m appModel) cmdLoadSchedule(gen, therapistID int) tea.Cmd {
	ctx := m.ctx
	directory := m.services.DirectoryService
	return func() tea.Msg {
		days, err := directory.Availability(ctx, therapistID)
		return scheduleLoadedMsg{gen: gen, days: days, err: err}
	}
}

func (m appModel) cmdLoadProfile(gen int) tea.Cmd {
	ctx := m.ctx
	directory := m.services.DirectoryService
	return func() tea.Msg {
		profile, err := directory.Profile(ctx)
		return profileLoadedMsg{gen: gen, profile: profile, err: err}
	}
}

func (m appModel) cmdLoadHistory(gen int) tea.Cmd {
	ctx := m.ctx
	appointments := m.services.AppointmentService
	return func() tea.Msg {
		items, err := appointments.History(ctx)
		return historyLoadedMsg{gen: gen, items: items, err: err}
	}
}

func (m appModel) cmdLoadAnnotations(gen int) tea.Cmd {
	ctx := m.ctx
	annotations := m.services.AnnotationService
	return func() tea.Msg {
		items, notice, err := annotations.List(ctx)
		return annotationsLoadedMsg{gen: gen, items: items, notice: notice, err: err}
	}
}

func (m appModel) cmdRequestAppointment(req models.AppointmentRequest) tea.Cmd {
	ctx := m.ctx
	appointments := m.services.AppointmentService
	return func() tea.Msg {
		confirmation, err := appointments.Request(ctx, req)
		return submissionDoneMsg{message: confirmation, err: err}
	}
}

func (m appModel) cmdSendMessage(req models.MessageRequest) tea.Cmd {
	ctx := m.ctx
	messages := m.services.MessageService
	return func() tea.Msg {
		confirmation, err := messages.Send(ctx, req)
		return submissionDoneMsg{message: confirmation, err: err}
	}
}

func (m appModel) cmdRateTherapist(therapistID int, req models.RatingRequest) tea.Cmd {
	ctx := m.ctx
	directory := m.services.DirectoryService
	return func() tea.Msg {
		if err := directory.Rate(ctx, therapistID, req); err != nil {
			return submissionDoneMsg{err: err}
		}
		return submissionDoneMsg{message: "Thank you for your feedback!"}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return submissionDoneMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ── focus helpers ───────────────────────────────────────────────────────────

func loginFocusMove(m loginModel, delta int) loginModel {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + loginFieldCount) % loginFieldCount
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
	return m
}

func registerFocusMove(m registerModel, delta int) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func appointmentFocusMove(m appointmentFormModel, delta int) appointmentFormModel {
	fields := len(m.inputs) + 1 // slot 0 is the type selector
	if m.focus > 0 {
		m.inputs[m.focus-1].Blur()
	}
	m.focus = (m.focus + delta + fields) % fields
	if m.focus > 0 {
		m.inputs[m.focus-1].Focus()
	}
	return m
}

func messageFocusMove(m messageFormModel, delta int) messageFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
