package metrics

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
)

// CloudWatch publishes count metrics through PutMetricData.
type CloudWatch struct {
	SVC cloudwatchiface.CloudWatchAPI
}

// NewCloudWatch builds a publisher on a fresh session. An empty region
// leaves the region to the SDK environment (AWS_REGION etc.).
func NewCloudWatch(region string) (*CloudWatch, error) {
	cfg := aws.NewConfig()
	if region != "" {
		cfg = cfg.WithRegion(region)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return &CloudWatch{SVC: cloudwatch.New(sess)}, nil
}

func (c *CloudWatch) Publish(ctx context.Context, namespace, name string, value float64) error {
	_, err := c.SVC.PutMetricDataWithContext(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(namespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(name),
				Value:      aws.Float64(value),
				Unit:       aws.String(cloudwatch.StandardUnitCount),
			},
		},
	})
	return err
}
