package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultAPIURL = "https://slack.com/api/chat.postMessage"

// Slack posts messages through the chat.postMessage Web API.
type Slack struct {
	APIURL string // overridable for tests
	Client *http.Client
}

func NewSlack() *Slack {
	return &Slack{
		APIURL: defaultAPIURL,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

type postMessagePayload struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type postMessageResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Post sends one message. The Web API reports failures both ways: an
// HTTP error status, or a 200 whose body carries ok=false plus an error
// code. Both become errors here.
func (s *Slack) Post(ctx context.Context, token, channel, text string) error {
	body, err := json.Marshal(postMessagePayload{Channel: channel, Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.APIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("slack: status %d: %s", resp.StatusCode, raw)
	}

	var r postMessageResponse
	if err := json.Unmarshal(raw, &r); err != nil {
		return fmt.Errorf("slack: decode response: %w", err)
	}
	if !r.OK {
		return fmt.Errorf("slack: %s", r.Error)
	}
	return nil
}
