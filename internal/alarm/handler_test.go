package alarm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type fakeStore struct {
	payload []byte
	err     error
	calls   int
}

func (f *fakeStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	f.calls++
	return f.payload, f.err
}

type recordingMessenger struct {
	token, channel, text string
	err                  error
	calls                int
}

func (r *recordingMessenger) Post(ctx context.Context, token, channel, text string) error {
	r.calls++
	r.token, r.channel, r.text = token, channel, text
	return r.err
}

func validConfig() Config {
	return Config{
		ServiceName:  "payments",
		ServiceURL:   "https://pay.example.com",
		SecretName:   "slack/payments",
		SecretRegion: "eu-west-1",
	}
}

func validSecret() []byte {
	return []byte(`{"SLACK_API_TOKEN":"xoxb-1","SLACK_CHANNEL_ID":"C42"}`)
}

func TestNotify_AlarmReadsDown(t *testing.T) {
	m := &recordingMessenger{}
	h := NewHandler(validConfig(), &fakeStore{payload: validSecret()}, m, nil)

	if err := h.Notify(context.Background(), StateAlarm); err != nil {
		t.Fatalf("notify err: %v", err)
	}
	if m.calls != 1 {
		t.Fatalf("want exactly one message, got %d", m.calls)
	}
	if !strings.Contains(m.text, "is DOWN") {
		t.Fatalf("text should say DOWN: %q", m.text)
	}
	if m.token != "xoxb-1" || m.channel != "C42" {
		t.Fatalf("credential not applied: token=%q channel=%q", m.token, m.channel)
	}
}

func TestNotify_OKReadsUp(t *testing.T) {
	m := &recordingMessenger{}
	h := NewHandler(validConfig(), &fakeStore{payload: validSecret()}, m, nil)

	if err := h.Notify(context.Background(), StateOK); err != nil {
		t.Fatalf("notify err: %v", err)
	}
	if !strings.Contains(m.text, "payments at https://pay.example.com is UP") {
		t.Fatalf("text wrong: %q", m.text)
	}
}

func TestNotify_UnknownStateReadsUp(t *testing.T) {
	m := &recordingMessenger{}
	h := NewHandler(validConfig(), &fakeStore{payload: validSecret()}, m, nil)

	if err := h.Notify(context.Background(), ParseState("INSUFFICIENT_DATA")); err != nil {
		t.Fatalf("notify err: %v", err)
	}
	if !strings.Contains(m.text, "is UP") {
		t.Fatalf("unmapped states default to UP: %q", m.text)
	}
}

func TestNotify_MissingSecretRefFails(t *testing.T) {
	store := &fakeStore{payload: validSecret()}
	m := &recordingMessenger{}
	cfg := validConfig()
	cfg.SecretName = ""

	err := NewHandler(cfg, store, m, nil).Notify(context.Background(), StateAlarm)
	if err == nil {
		t.Fatalf("want configuration error")
	}
	if store.calls != 0 || m.calls != 0 {
		t.Fatalf("nothing should run after a config error: fetch=%d post=%d", store.calls, m.calls)
	}
}

func TestNotify_SecretFetchErrorSkipsPost(t *testing.T) {
	m := &recordingMessenger{}
	h := NewHandler(validConfig(), &fakeStore{err: errors.New("access denied")}, m, nil)

	err := h.Notify(context.Background(), StateAlarm)
	if err == nil || !strings.Contains(err.Error(), "access denied") {
		t.Fatalf("want fetch error surfaced, got %v", err)
	}
	if m.calls != 0 {
		t.Fatalf("no message should be attempted after a fetch failure")
	}
}

func TestNotify_IncompleteCredentialFails(t *testing.T) {
	m := &recordingMessenger{}
	h := NewHandler(validConfig(), &fakeStore{payload: []byte(`{"SLACK_API_TOKEN":"only"}`)}, m, nil)

	if err := h.Notify(context.Background(), StateAlarm); err == nil {
		t.Fatalf("want credential error")
	}
	if m.calls != 0 {
		t.Fatalf("no message with a bad credential")
	}
}

func TestNotify_PostErrorSurfaces(t *testing.T) {
	m := &recordingMessenger{err: errors.New("channel_not_found")}
	h := NewHandler(validConfig(), &fakeStore{payload: validSecret()}, m, nil)

	err := h.Notify(context.Background(), StateAlarm)
	if err == nil || !strings.Contains(err.Error(), "channel_not_found") {
		t.Fatalf("want post error surfaced, got %v", err)
	}
}

func TestStateFromDetail(t *testing.T) {
	detail := json.RawMessage(`{"alarmName":"payments-health","state":{"value":"ALARM","reason":"threshold crossed"}}`)
	state, err := StateFromDetail(detail)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if state != StateAlarm {
		t.Fatalf("want StateAlarm, got %v", state)
	}

	if _, err := StateFromDetail(json.RawMessage(`not json`)); err == nil {
		t.Fatalf("want decode error")
	}
}
