package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/futuristic/perceptronx/internal/config"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/mock"
	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/models"
)

const testSessionID = "9c5b94b1-35ad-49bb-b118-8e8fc24abf80"

type handlerMocks struct {
	auth         *mock.MockAuthService
	therapists   *mock.MockTherapistService
	appointments *mock.MockAppointmentService
	messages     *mock.MockMessageService
	annotations  *mock.MockAnnotationService
	sessions     *mock.MockServerSessionStore
}

func newTestHandler(ctrl *gomock.Controller) (*Handler, handlerMocks) {
	mocks := handlerMocks{
		auth:         mock.NewMockAuthService(ctrl),
		therapists:   mock.NewMockTherapistService(ctrl),
		appointments: mock.NewMockAppointmentService(ctrl),
		messages:     mock.NewMockMessageService(ctrl),
		annotations:  mock.NewMockAnnotationService(ctrl),
		sessions:     mock.NewMockServerSessionStore(ctrl),
	}

	services := &service.Services{
		AuthService:        mocks.auth,
		TherapistService:   mocks.therapists,
		AppointmentService: mocks.appointments,
		MessageService:     mocks.messages,
		AnnotationService:  mocks.annotations,
	}

	h := NewHandler(services, mocks.sessions, config.Server{APIAddress: ":8080"}, logger.Nop())

	return h, mocks
}

// expectSession arms the session store to resolve the test cookie to userID.
func (m handlerMocks) expectSession(userID int64) {
	m.sessions.EXPECT().
		Find(gomock.Any(), testSessionID).
		Return(models.Session{ID: testSessionID, UserID: userID}, nil)
}

func sessionCookie() *http.Cookie {
	return &http.Cookie{Name: models.SessionCookieName, Value: testSessionID}
}

// doRequest serves one request through the full router, middleware included.
func doRequest(t *testing.T, router *chi.Mux, method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
