package alarm

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hamed0406/servicemonitor/internal/notify"
	"github.com/hamed0406/servicemonitor/internal/secrets"
)

// Config is the notifier's configuration, injected explicitly so the
// handler never reads ambient process state.
type Config struct {
	ServiceName  string
	ServiceURL   string
	SecretName   string
	SecretRegion string
}

func (c Config) validate() error {
	if c.SecretName == "" || c.SecretRegion == "" {
		return errors.New("slack secret name and region must be set")
	}
	return nil
}

// Handler relays an alarm state change to a chat channel. It sends at
// most one message per invocation and fails loudly on any error; the
// invoking platform owns retries.
type Handler struct {
	Config    Config
	Secrets   secrets.Store
	Messenger notify.Messenger
	Logger    *zap.Logger
}

func NewHandler(cfg Config, store secrets.Store, m notify.Messenger, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Config: cfg, Secrets: store, Messenger: m, Logger: logger}
}

// Notify fetches the Slack credential and posts the service's status.
func (h *Handler) Notify(ctx context.Context, state State) error {
	if err := h.Config.validate(); err != nil {
		return err
	}

	payload, err := h.Secrets.Fetch(ctx, h.Config.SecretName)
	if err != nil {
		return fmt.Errorf("fetch slack secret: %w", err)
	}
	cred, err := secrets.SlackCredentialFrom(payload)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("%s at %s is %s", h.Config.ServiceName, h.Config.ServiceURL, state.Status())
	h.Logger.Info("alarm_notify",
		zap.String("state", state.String()),
		zap.String("text", text),
	)

	if err := h.Messenger.Post(ctx, cred.APIToken, cred.ChannelID, text); err != nil {
		return fmt.Errorf("post slack message: %w", err)
	}
	return nil
}
