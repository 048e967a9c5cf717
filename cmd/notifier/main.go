package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/hamed0406/servicemonitor/internal/alarm"
	"github.com/hamed0406/servicemonitor/internal/config"
	"github.com/hamed0406/servicemonitor/internal/logging"
	"github.com/hamed0406/servicemonitor/internal/notify"
	"github.com/hamed0406/servicemonitor/internal/secrets"
)

func main() {
	logger := logging.NewLambdaLogger()
	defer logger.Sync()

	cfg := config.NotifierFromEnv()
	store, err := secrets.NewManager(cfg.SecretRegion)
	if err != nil {
		logger.Fatal("secretsmanager_init", zap.Error(err))
	}

	h := alarm.NewHandler(alarm.Config{
		ServiceName:  cfg.ServiceName,
		ServiceURL:   cfg.ServiceURL,
		SecretName:   cfg.SecretName,
		SecretRegion: cfg.SecretRegion,
	}, store, notify.Multi{notify.NewSlack()}, logger)

	lambda.Start(func(ctx context.Context, ev events.CloudWatchEvent) error {
		state, err := alarm.StateFromDetail(ev.Detail)
		if err != nil {
			return err
		}
		return h.Notify(ctx, state)
	})
}
