package contactform

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestSubmit_Succeeded(t *testing.T) {
	var gotBride string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		gotBride = r.FormValue("brideFullName")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Mensaje enviado correctamente",
		})
	}))
	defer ts.Close()

	f := New(ts.URL)
	f.SetField("brideFullName", "Ana García")
	f.SetField("email", "ana@example.com")

	state, err := f.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if state.Status != StatusSucceeded {
		t.Errorf("status = %q, want succeeded", state.Status)
	}
	if state.Message != "Mensaje enviado correctamente" {
		t.Errorf("message = %q", state.Message)
	}
	if gotBride != "Ana García" {
		t.Errorf("server got brideFullName = %q", gotBride)
	}
}

func TestSubmit_ServerRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Faltan campos requeridos"})
	}))
	defer ts.Close()

	f := New(ts.URL)
	state, err := f.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if state.Status != StatusFailed {
		t.Errorf("status = %q, want failed", state.Status)
	}
	if state.Message != "Faltan campos requeridos" {
		t.Errorf("message = %q, want server error text", state.Message)
	}
}

func TestSubmit_ConnectivityFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ts.Close() // connection refused from here on

	f := New(ts.URL)
	state, err := f.Submit(context.Background())
	if err == nil {
		t.Fatal("Submit() error = nil, want transport error")
	}
	if state.Status != StatusFailed {
		t.Errorf("status = %q, want failed", state.Status)
	}
	if state.Message != genericFailure {
		t.Errorf("message = %q, want generic failure text", state.Message)
	}
}

func TestSubmit_ReentryGuard(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok"})
	}))
	defer ts.Close()

	f := New(ts.URL)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.Submit(context.Background())
	}()

	// wait for the first submission to take the in-flight slot
	for f.State().Status != StatusSubmitting {
		time.Sleep(time.Millisecond)
	}

	if _, err := f.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("second Submit() error = %v, want ErrSubmitInFlight", err)
	}

	close(release)
	wg.Wait()

	if got := f.State().Status; got != StatusSucceeded {
		t.Errorf("final status = %q, want succeeded", got)
	}
}

func TestSubmit_TerminalAfterSuccess(t *testing.T) {
	f := New("http://127.0.0.1:0")
	f.state = State{Status: StatusSucceeded, Message: "Mensaje enviado correctamente"}

	state, err := f.Submit(context.Background())
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("Submit() error = %v, want ErrAlreadySubmitted", err)
	}
	if state.Status != StatusSucceeded {
		t.Errorf("status = %q, want succeeded preserved", state.Status)
	}

	// Reset makes the form submittable again.
	f.Reset()
	if got := f.State().Status; got != StatusIdle {
		t.Errorf("status after Reset = %q, want idle", got)
	}
}

func TestSetField_ClearsFailure(t *testing.T) {
	f := New("http://127.0.0.1:0")
	f.state = State{Status: StatusFailed, Message: "Email inválido"}

	f.SetField("email", "ana@example.com")

	state := f.State()
	if state.Status != StatusIdle {
		t.Errorf("status = %q, want idle after edit", state.Status)
	}
	if state.Message != "" {
		t.Errorf("message = %q, want cleared", state.Message)
	}
	if f.Field("email") != "ana@example.com" {
		t.Error("edited value lost")
	}
}

func TestReset(t *testing.T) {
	f := New("http://127.0.0.1:0")
	f.SetField("brideFullName", "Ana")
	f.state = State{Status: StatusSucceeded, Message: "ok"}

	f.Reset()

	if got := f.State(); got.Status != StatusIdle || got.Message != "" {
		t.Errorf("state after Reset = %+v, want empty idle", got)
	}
	if f.Field("brideFullName") != "" {
		t.Error("fields survived Reset")
	}
}
