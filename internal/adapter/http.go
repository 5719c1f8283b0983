package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/futuristic/perceptronx/internal/config"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/models"
	"github.com/go-resty/resty/v2"
)

var errDetectionNotConfigured = errors.New("detection service not configured")

type httpAPIClient struct {
	api           *resty.Client
	detection     *resty.Client
	apiHost       string
	detectionHost string

	sessions SessionStore
	logger   *logger.Logger
}

// NewHTTPAPIClient constructs the HTTP/REST implementation of [APIClient].
// It normalises and validates the base URLs from adapterCfg, configures one
// resty client per backend with the resolved base URL and request timeout,
// and wires the provided session store for cookie management.
//
// The resty cookie jars are disabled: the [SessionStore] is the single
// authority on which cookie travels with a request, so logout reliably
// stops cookie reuse.
//
// Returns an error if adapterCfg.APIBaseURL is empty or cannot be parsed as
// a valid URL. The detection client is optional and only built when
// adapterCfg.DetectionBaseURL is set.
func NewHTTPAPIClient(adapterCfg config.ClientAdapter, sessions SessionStore, log *logger.Logger) (APIClient, error) {
	apiURL, err := normalizeBaseURL(adapterCfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	c := &httpAPIClient{
		api: resty.New().
			SetBaseURL(apiURL.String()).
			SetTimeout(adapterCfg.RequestTimeout).
			SetCookieJar(nil),
		apiHost:  apiURL.Host,
		sessions: sessions,
		logger:   log,
	}

	if adapterCfg.DetectionBaseURL != "" {
		detectionURL, err := normalizeBaseURL(adapterCfg.DetectionBaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid detection base url: %w", err)
		}
		c.detection = resty.New().
			SetBaseURL(detectionURL.String()).
			SetTimeout(adapterCfg.RequestTimeout).
			SetCookieJar(nil)
		c.detectionHost = detectionURL.Host
	}

	return c, nil
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("address must include host and scheme")
	}

	u.Path = strings.TrimRight(u.Path, "/")
	return u, nil
}

// Login implements [SessionClient]. On a "valid" status the session_id
// cookie from the response is stored keyed by the API host; remember-me
// requests ask the store to persist it.
func (c *httpAPIClient) Login(ctx context.Context, creds models.LoginRequest) (models.SessionStatus, error) {
	resp, err := c.sessionRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/loginUser")
	if err != nil {
		return models.SessionInvalid, fmt.Errorf("login request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionInvalid, err
	}

	status, err := decodeStatus(resp)
	if err != nil {
		return models.SessionInvalid, err
	}

	if status == models.SessionValid {
		if cookie := findSessionCookie(resp.Cookies()); cookie != nil {
			if err := c.sessions.Set(c.apiHost, cookie.Value, creds.RememberMe); err != nil {
				return models.SessionInvalid, fmt.Errorf("save session cookie: %w", err)
			}
		}
	}

	return status, nil
}

// Register implements [SessionClient].
func (c *httpAPIClient) Register(ctx context.Context, reg models.RegisterRequest) (models.SessionStatus, error) {
	resp, err := c.sessionRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reg).
		Post("/registerUser")
	if err != nil {
		return models.SessionInvalid, fmt.Errorf("register request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionInvalid, err
	}

	return decodeStatus(resp)
}

// Logout implements [SessionClient]. The stored cookie is cleared before the
// server result is inspected, so a failed server-side invalidation can never
// leave the client believing it is still logged in.
func (c *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := c.sessionRequest(ctx).Post("/logout")

	if clearErr := c.sessions.Clear(c.apiHost); clearErr != nil {
		c.logger.Err(clearErr).Msg("clearing local session state failed")
	}

	if err != nil {
		return fmt.Errorf("logout request: %w: %v", ErrNetwork, err)
	}
	return mapHTTPError(resp)
}

// Status implements [SessionClient]. Safe to call with no session held.
func (c *httpAPIClient) Status(ctx context.Context) (models.SessionStatus, error) {
	resp, err := c.sessionRequest(ctx).Get("/")
	if err != nil {
		return models.SessionInvalid, fmt.Errorf("status request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionInvalid, err
	}

	return decodeStatus(resp)
}

// ResetPassword implements [SessionClient].
func (c *httpAPIClient) ResetPassword(ctx context.Context, email string) error {
	resp, err := c.sessionRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ResetPasswordRequest{Email: email}).
		Post("/reset-password")
	if err != nil {
		return fmt.Errorf("reset password request: %w: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// GetUserInfo implements [ResourceClient].
func (c *httpAPIClient) GetUserInfo(ctx context.Context) (models.Profile, error) {
	resp, err := c.sessionRequest(ctx).Get("/getUserInfo")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get user info request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err = decodeJSON(resp, &profile); err != nil {
		return models.Profile{}, err
	}
	if profile.Username == "" {
		return models.Profile{}, fmt.Errorf("%w: profile missing username", ErrMalformedResponse)
	}

	return profile, nil
}

// ListTherapists implements [ResourceClient].
func (c *httpAPIClient) ListTherapists(ctx context.Context) ([]models.TherapistSummary, error) {
	resp, err := c.sessionRequest(ctx).Get("/therapists")
	if err != nil {
		return nil, fmt.Errorf("list therapists request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.TherapistSummary
	if err = decodeJSON(resp, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// therapistPayload is the wire shape of GET /therapists/{id}. Required
// fields are pointers so their absence in a 2xx body can be told apart from
// a zero value and reported as a malformed response.
type therapistPayload struct {
	ID                   *int     `json:"id"`
	Name                 *string  `json:"name"`
	PhotoURL             string   `json:"photoUrl"`
	Specialties          []string `json:"specialties"`
	Bio                  string   `json:"bio"`
	ExperienceYears      int      `json:"experienceYears"`
	Education            []string `json:"education"`
	Languages            []string `json:"languages"`
	Address              string   `json:"address"`
	Rating               *float64 `json:"rating"`
	ReviewCount          int      `json:"reviewCount"`
	AcceptingNewPatients bool     `json:"isAcceptingNewPatients"`
	AverageSessionLength int      `json:"averageSessionLength"`
}

// GetTherapist implements [ResourceClient].
func (c *httpAPIClient) GetTherapist(ctx context.Context, id int) (models.Therapist, error) {
	resp, err := c.sessionRequest(ctx).Get(fmt.Sprintf("/therapists/%d", id))
	if err != nil {
		return models.Therapist{}, fmt.Errorf("get therapist request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Therapist{}, err
	}

	var payload therapistPayload
	if err = decodeJSON(resp, &payload); err != nil {
		return models.Therapist{}, err
	}
	if payload.ID == nil || payload.Name == nil || payload.Rating == nil {
		return models.Therapist{}, fmt.Errorf("%w: therapist missing required fields", ErrMalformedResponse)
	}

	return models.Therapist{
		ID:                   *payload.ID,
		Name:                 *payload.Name,
		PhotoURL:             payload.PhotoURL,
		Specialties:          payload.Specialties,
		Bio:                  payload.Bio,
		ExperienceYears:      payload.ExperienceYears,
		Education:            payload.Education,
		Languages:            payload.Languages,
		Address:              payload.Address,
		Rating:               *payload.Rating,
		ReviewCount:          payload.ReviewCount,
		AcceptingNewPatients: payload.AcceptingNewPatients,
		AverageSessionLength: payload.AverageSessionLength,
	}, nil
}

// GetAvailability implements [ResourceClient].
func (c *httpAPIClient) GetAvailability(ctx context.Context, therapistID int) ([]models.TimeSlot, error) {
	resp, err := c.sessionRequest(ctx).Get(fmt.Sprintf("/therapists/%d/availability", therapistID))
	if err != nil {
		return nil, fmt.Errorf("get availability request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var slots []models.TimeSlot
	if err = decodeJSON(resp, &slots); err != nil {
		return nil, err
	}

	return slots, nil
}

// RequestAppointment implements [ResourceClient].
func (c *httpAPIClient) RequestAppointment(ctx context.Context, req models.AppointmentRequest) (models.SubmissionResponse, error) {
	resp, err := c.sessionRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/appointments/request")
	if err != nil {
		return models.SubmissionResponse{}, fmt.Errorf("request appointment: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SubmissionResponse{}, err
	}

	var result models.SubmissionResponse
	if err = decodeJSON(resp, &result); err != nil {
		return models.SubmissionResponse{}, err
	}

	return result, nil
}

// SendMessage implements [ResourceClient].
func (c *httpAPIClient) SendMessage(ctx context.Context, req models.MessageRequest) (models.SubmissionResponse, error) {
	resp, err := c.sessionRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/messages/send")
	if err != nil {
		return models.SubmissionResponse{}, fmt.Errorf("send message: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SubmissionResponse{}, err
	}

	var result models.SubmissionResponse
	if err = decodeJSON(resp, &result); err != nil {
		return models.SubmissionResponse{}, err
	}

	return result, nil
}

// RateTherapist implements [ResourceClient].
func (c *httpAPIClient) RateTherapist(ctx context.Context, therapistID int, req models.RatingRequest) error {
	resp, err := c.sessionRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(fmt.Sprintf("/therapists/%d/rate", therapistID))
	if err != nil {
		return fmt.Errorf("rate therapist: %w: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// ListAppointments implements [ResourceClient].
func (c *httpAPIClient) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	resp, err := c.sessionRequest(ctx).Get("/user/appointments")
	if err != nil {
		return nil, fmt.Errorf("list appointments request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Appointment
	if err = decodeJSON(resp, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// ListAnnotations implements [ResourceClient]. It talks to the detection
// service, which shares the session cookie scope only when it runs on the
// same host; the cookie stored for the detection host is attached when
// present.
func (c *httpAPIClient) ListAnnotations(ctx context.Context) ([]models.AnnotationItem, string, error) {
	if c.detection == nil {
		return nil, "", errDetectionNotConfigured
	}

	req := c.detection.R().SetContext(ctx)
	if value, ok := c.sessions.Get(c.detectionHost); ok {
		req.SetCookie(&http.Cookie{Name: models.SessionCookieName, Value: value})
	}

	resp, err := req.Get("/")
	if err != nil {
		return nil, "", fmt.Errorf("list annotations request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}

	var result models.AnnotationResponse
	if err = decodeJSON(resp, &result); err != nil {
		return nil, "", err
	}

	return result.Annotations, result.Message, nil
}

// sessionRequest builds a request against the API server with the stored
// session cookie attached, when one is held for the API host.
func (c *httpAPIClient) sessionRequest(ctx context.Context) *resty.Request {
	req := c.api.R().SetContext(ctx)
	if value, ok := c.sessions.Get(c.apiHost); ok {
		req.SetCookie(&http.Cookie{Name: models.SessionCookieName, Value: value})
	}
	return req
}

// decodeStatus decodes a `{status}` body into the two-state session
// enumeration, rejecting unrecognised literals as a malformed response.
func decodeStatus(resp *resty.Response) (models.SessionStatus, error) {
	var body models.StatusResponse
	if err := decodeJSON(resp, &body); err != nil {
		return models.SessionInvalid, err
	}

	status, err := models.ParseSessionStatus(body.Status)
	if err != nil {
		return models.SessionInvalid, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return status, nil
}

func decodeJSON(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func findSessionCookie(cookies []*http.Cookie) *http.Cookie {
	for _, c := range cookies {
		if c.Name == models.SessionCookieName {
			return c
		}
	}
	return nil
}
