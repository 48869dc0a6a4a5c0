package notifier

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func enabledConfig(baseURL string) Config {
	return Config{
		Enabled:    true,
		AccountSID: "AC123",
		AuthToken:  "token",
		FromNumber: "+15550001111",
		ToNumber:   "+15550002222",
		BaseURL:    baseURL,
		Timeout:    5 * time.Second,
	}
}

func TestNewSMSNotifierDisabled(t *testing.T) {
	if n := NewSMSNotifier(Config{Enabled: false}); n != nil {
		t.Fatal("disabled config should yield a nil notifier")
	}
}

func TestNewSMSNotifierIncompleteCredentials(t *testing.T) {
	config := enabledConfig("http://localhost")
	config.AuthToken = ""
	if n := NewSMSNotifier(config); n != nil {
		t.Fatal("incomplete credentials should yield a nil notifier")
	}
}

func TestSend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2010-04-01/Accounts/AC123/Messages.json" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "AC123" || pass != "token" {
			t.Fatalf("unexpected basic auth %q/%q", user, pass)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if r.PostForm.Get("From") != "+15550001111" || r.PostForm.Get("To") != "+15550002222" {
			t.Fatalf("unexpected numbers %v", r.PostForm)
		}
		if !strings.Contains(r.PostForm.Get("Body"), "High-Confidence") {
			t.Fatalf("unexpected body %q", r.PostForm.Get("Body"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM987","status":"queued"}`))
	}))
	defer server.Close()

	notifier := NewSMSNotifier(enabledConfig(server.URL))
	if notifier == nil {
		t.Fatal("expected a notifier")
	}
	if err := notifier.Send("signaltrader: High-Confidence UP for tBTCF0:USTF0. Amt: 0.0015, Lev: 15. Status: Succeeded."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSendTwilioError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"The 'To' number is not a valid phone number.","status":400}`))
	}))
	defer server.Close()

	notifier := NewSMSNotifier(enabledConfig(server.URL))
	err := notifier.Send("test")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "not a valid phone number") {
		t.Fatalf("error should carry the twilio message, got %v", err)
	}
}

func TestSendEmptyBody(t *testing.T) {
	notifier := NewSMSNotifier(enabledConfig("http://localhost:1"))
	if err := notifier.Send(""); err == nil {
		t.Fatal("expected error for empty body")
	}
}
