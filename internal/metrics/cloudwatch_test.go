package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCloudWatchSVC struct {
	cloudwatchiface.CloudWatchAPI
	mock.Mock
}

func (m *mockCloudWatchSVC) PutMetricDataWithContext(ctx aws.Context, in *cloudwatch.PutMetricDataInput, opts ...request.Option) (*cloudwatch.PutMetricDataOutput, error) {
	args := m.Called(in)
	return args.Get(0).(*cloudwatch.PutMetricDataOutput), args.Error(1)
}

func TestCloudWatchPublish_BuildsCountDatum(t *testing.T) {
	svc := new(mockCloudWatchSVC)
	svc.On("PutMetricDataWithContext", mock.MatchedBy(func(in *cloudwatch.PutMetricDataInput) bool {
		if aws.StringValue(in.Namespace) != "ServiceMonitor" || len(in.MetricData) != 1 {
			return false
		}
		d := in.MetricData[0]
		return aws.StringValue(d.MetricName) == "HealthCheck" &&
			aws.Float64Value(d.Value) == 1 &&
			aws.StringValue(d.Unit) == cloudwatch.StandardUnitCount
	})).Return(&cloudwatch.PutMetricDataOutput{}, nil).Once()

	cw := &CloudWatch{SVC: svc}
	err := cw.Publish(context.Background(), "ServiceMonitor", "HealthCheck", 1)
	assert.NoError(t, err)
	svc.AssertExpectations(t)
}

func TestCloudWatchPublish_ErrorPropagates(t *testing.T) {
	svc := new(mockCloudWatchSVC)
	svc.On("PutMetricDataWithContext", mock.Anything).
		Return(&cloudwatch.PutMetricDataOutput{}, errors.New("Throttling")).Once()

	cw := &CloudWatch{SVC: svc}
	err := cw.Publish(context.Background(), "NS", "M", 0)
	assert.ErrorContains(t, err, "Throttling")
	svc.AssertExpectations(t)
}

func TestMemory_RecordsPoints(t *testing.T) {
	m := NewMemory()
	_ = m.Publish(context.Background(), "NS", "M", 1)
	_ = m.Publish(context.Background(), "NS", "M", 0)

	pts := m.Points()
	assert.Len(t, pts, 2)
	assert.Equal(t, Point{Namespace: "NS", Name: "M", Value: 1}, pts[0])
}
