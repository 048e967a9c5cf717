package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Store fetches a named secret payload.
type Store interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// SlackCredential is the JSON payload of the Slack secret.
type SlackCredential struct {
	APIToken  string `json:"SLACK_API_TOKEN"`
	ChannelID string `json:"SLACK_CHANNEL_ID"`
}

var errIncompleteCredential = errors.New("slack secret missing SLACK_API_TOKEN or SLACK_CHANNEL_ID")

// SlackCredentialFrom decodes a secret payload into a credential and
// rejects payloads with either field missing.
func SlackCredentialFrom(payload []byte) (SlackCredential, error) {
	var c SlackCredential
	if err := json.Unmarshal(payload, &c); err != nil {
		return SlackCredential{}, fmt.Errorf("decode slack secret: %w", err)
	}
	if c.APIToken == "" || c.ChannelID == "" {
		return SlackCredential{}, errIncompleteCredential
	}
	return c, nil
}
