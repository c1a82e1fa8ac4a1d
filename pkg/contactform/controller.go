// Package contactform is a small client for the contact endpoint. It
// models the same submission lifecycle the site's form UI uses, so CLI
// tools and integration checks can drive the form like a browser would.
package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"sync"
	"time"
)

// Status is the submission lifecycle state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

var (
	// ErrSubmitInFlight is returned when Submit is called while a
	// previous submission is still running.
	ErrSubmitInFlight = errors.New("contactform: submission already in flight")

	// ErrAlreadySubmitted is returned when Submit is called after a
	// successful submission. Reset starts a fresh form.
	ErrAlreadySubmitted = errors.New("contactform: form already submitted")
)

// genericFailure is shown when the server could not be reached at all,
// mirroring the form's connectivity fallback message.
const genericFailure = "Error al procesar el formulario. Por favor intenta nuevamente."

// State is a snapshot of the controller.
type State struct {
	Status Status

	// Message is the server's user-facing message: the acceptance text
	// after StatusSucceeded, the error text after StatusFailed.
	Message string
}

// Controller drives one contact form against the API.
type Controller struct {
	endpoint string
	client   *http.Client

	mu     sync.Mutex
	state  State
	fields map[string]string
}

// New creates a Controller posting to endpoint, e.g.
// "https://byfernandatovar.com/api/v1/contact".
func New(endpoint string) *Controller {
	return &Controller{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
		state:    State{Status: StatusIdle},
		fields:   make(map[string]string),
	}
}

// SetField records a form value. Editing after a failed attempt clears
// the failure so the form returns to an editable idle state. Fields are
// silently ignored while a submission is in flight.
func (f *Controller) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Status == StatusSubmitting {
		return
	}
	f.fields[name] = value
	if f.state.Status == StatusFailed {
		f.state = State{Status: StatusIdle}
	}
}

// Field returns a previously set form value.
func (f *Controller) Field(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[name]
}

// State returns the current snapshot.
func (f *Controller) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Reset returns the controller to an empty idle form.
func (f *Controller) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Status == StatusSubmitting {
		return
	}
	f.fields = make(map[string]string)
	f.state = State{Status: StatusIdle}
}

// Submit posts the current fields as a multipart form and resolves the
// new state from the response. Only one submission may run at a time.
func (f *Controller) Submit(ctx context.Context) (State, error) {
	f.mu.Lock()
	switch f.state.Status {
	case StatusSubmitting:
		state := f.state
		f.mu.Unlock()
		return state, ErrSubmitInFlight
	case StatusSucceeded:
		state := f.state
		f.mu.Unlock()
		return state, ErrAlreadySubmitted
	}
	f.state = State{Status: StatusSubmitting}
	fields := make(map[string]string, len(f.fields))
	for k, v := range f.fields {
		fields[k] = v
	}
	f.mu.Unlock()

	state, err := f.post(ctx, fields)

	f.mu.Lock()
	f.state = state
	f.mu.Unlock()
	return state, err
}

func (f *Controller) post(ctx context.Context, fields map[string]string) (State, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return State{Status: StatusFailed, Message: genericFailure},
				fmt.Errorf("contactform: encode form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return State{Status: StatusFailed, Message: genericFailure},
			fmt.Errorf("contactform: encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, &buf)
	if err != nil {
		return State{Status: StatusFailed, Message: genericFailure},
			fmt.Errorf("contactform: create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := f.client.Do(req)
	if err != nil {
		return State{Status: StatusFailed, Message: genericFailure},
			fmt.Errorf("contactform: post form: %w", err)
	}
	defer res.Body.Close()

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return State{Status: StatusFailed, Message: genericFailure},
			fmt.Errorf("contactform: decode response: %w", err)
	}

	if res.StatusCode == http.StatusOK && body.Success {
		return State{Status: StatusSucceeded, Message: body.Message}, nil
	}

	msg := body.Error
	if msg == "" {
		msg = genericFailure
	}
	return State{Status: StatusFailed, Message: msg}, nil
}
