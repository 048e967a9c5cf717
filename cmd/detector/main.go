package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/hamed0406/servicemonitor/internal/logging"
	"github.com/hamed0406/servicemonitor/internal/metrics"
	"github.com/hamed0406/servicemonitor/internal/probe"
)

func main() {
	logger := logging.NewLambdaLogger()
	defer logger.Sync()

	// Region comes from the Lambda environment.
	cw, err := metrics.NewCloudWatch("")
	if err != nil {
		logger.Fatal("cloudwatch_init", zap.Error(err))
	}
	prober := probe.NewProber(cw, 0, logger)

	lambda.Start(func(ctx context.Context, req probe.Request) error {
		_, err := prober.Run(ctx, req)
		return err
	})
}
