package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/annapetrenko/mealkeeper/internal/client/session"
)

// DefaultTimeout bounds every request; after it the call fails and is treated
// like any other transport failure.
const DefaultTimeout = 15 * time.Second

// SessionExpiredHandler is invoked when a 401 response is intercepted. It is
// the hard-reset path: implementations abandon current view state and
// reinitialize at the login entry point, which is deliberately different from
// a guard-mediated navigation.
type SessionExpiredHandler func()

// HTTPClient implements Client over plain HTTP/JSON.
//
// The underlying http.Client carries no cookie jar, so no credentials are
// forwarded implicitly; the only credential on the wire is the bearer token
// injected by the auth interceptor.
type HTTPClient struct {
	baseURL          string
	http             *http.Client
	tokens           *session.TokenStore
	onSessionExpired SessionExpiredHandler

	reqInterceptors  []RequestInterceptor
	respInterceptors []ResponseInterceptor
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithSessionExpiredHandler sets the hard-reset hook for intercepted 401s.
func WithSessionExpiredHandler(h SessionExpiredHandler) Option {
	return func(c *HTTPClient) { c.onSessionExpired = h }
}

// NewHTTPClient builds a client bound to baseURL and the given token store.
// The standard interceptor pipeline (bearer injection, 401 teardown) is
// installed in order; additional interceptors run after it.
func NewHTTPClient(baseURL string, tokens *session.TokenStore, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.reqInterceptors = append(c.reqInterceptors, c.authInterceptor)
	c.respInterceptors = append(c.respInterceptors, c.unauthorizedInterceptor)
	return c
}

// do performs one round-trip: marshal body, run request interceptors, send,
// run response interceptors, map the status, decode into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if err := applyRequestInterceptors(req, c.reqInterceptors); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := applyResponseInterceptors(resp, c.respInterceptors); err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapError converts a non-2xx response into *Error, extracting the backend's
// {message} body when one is present.
func (c *HTTPClient) mapError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}

func (c *HTTPClient) CreateSession(ctx context.Context, creds Credentials) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/session", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*UserProfile, error) {
	var out UserProfile
	if err := c.do(ctx, http.MethodPost, "/api/v1/users/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetCurrentUser(ctx context.Context) (*UserProfile, error) {
	var out UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetMyDependents(ctx context.Context) ([]Dependent, error) {
	var out []Dependent
	if err := c.do(ctx, http.MethodGet, "/api/v1/dependents/my", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateDependent(ctx context.Context, req CreateDependentRequest) (*Dependent, error) {
	var out Dependent
	if err := c.do(ctx, http.MethodPost, "/api/v1/dependents/create", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetDependentPlanByDate(ctx context.Context, dependentID int64, date string) (*Plan, error) {
	var out Plan
	path := fmt.Sprintf("/api/v1/dependents/%d/plan/date/%s", dependentID, date)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetPlanByDate(ctx context.Context, date string) (*Plan, error) {
	var out Plan
	if err := c.do(ctx, http.MethodGet, "/api/v1/meals/date/"+date, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SearchRecipes(ctx context.Context, query string) ([]Recipe, error) {
	var out []Recipe
	q := url.Values{"query": {query}}
	if err := c.do(ctx, http.MethodGet, "/api/v1/meals/search", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetRecipeDetails(ctx context.Context, recipeID int64) (*Recipe, error) {
	var out Recipe
	path := fmt.Sprintf("/api/v1/recipes/%d", recipeID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ReplaceMeal(ctx context.Context, mealID int64, req MealReplaceRequest) (*Meal, error) {
	var out Meal
	path := fmt.Sprintf("/api/v1/meals/%d/replace", mealID)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateMealDetails(ctx context.Context, mealID int64, req MealDetailsUpdate) (*Meal, error) {
	var out Meal
	path := fmt.Sprintf("/api/v1/meals/%d/details", mealID)
	if err := c.do(ctx, http.MethodPatch, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateMealStatus(ctx context.Context, mealID int64, req MealStatusUpdate) (*Meal, error) {
	var out Meal
	path := fmt.Sprintf("/api/v1/meals/%d", mealID)
	if err := c.do(ctx, http.MethodPatch, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateMedicationDetails(ctx context.Context, medID int64, req MedicationDetailsUpdate) (*Medication, error) {
	var out Medication
	path := fmt.Sprintf("/api/v1/medications/%d", medID)
	if err := c.do(ctx, http.MethodPatch, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateMedicationStatus(ctx context.Context, medID int64, req MedicationStatusUpdate) (*Medication, error) {
	var out Medication
	path := fmt.Sprintf("/api/v1/medications/%d/medication", medID)
	if err := c.do(ctx, http.MethodPatch, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetMyNotifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := c.do(ctx, http.MethodGet, "/api/v1/notifications/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetHealthForm(ctx context.Context, userID int64) (*HealthForm, error) {
	var out HealthForm
	path := fmt.Sprintf("/api/v1/health-form/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SaveHealthForm(ctx context.Context, userID int64, form HealthForm) (*HealthForm, error) {
	var out HealthForm
	path := fmt.Sprintf("/api/v1/health-form/%d", userID)
	if err := c.do(ctx, http.MethodPut, path, nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ Client = (*HTTPClient)(nil)
