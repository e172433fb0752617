package metrics

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	namespace         = "Pitchkit/API"
	cloudwatchTimeout = 5 * time.Second
)

// Client wraps CloudWatch client for custom metrics
type Client struct {
	client      *cloudwatch.Client
	environment string
}

// NewClient creates a CloudWatch metrics client. It is a no-op unless enabled
// is set and the environment is production.
func NewClient(ctx context.Context, environment string, enabled bool) (*Client, error) {
	if !enabled || environment != "production" {
		log.Printf("CloudWatch Metrics: DISABLED (environment: %s)", environment)
		return &Client{environment: environment}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("Failed to load AWS config for CloudWatch: %v", err)
		return &Client{environment: environment}, nil
	}

	log.Printf("CloudWatch Metrics: ENABLED (namespace: %s)", namespace)
	return &Client{client: cloudwatch.NewFromConfig(cfg), environment: environment}, nil
}

// Enabled reports whether metrics are pushed to CloudWatch
func (m *Client) Enabled() bool {
	return m != nil && m.client != nil
}

// RecordAPIRequest counts a request against its route; 5xx responses count as errors
func (m *Client) RecordAPIRequest(endpoint string, statusCode int, duration time.Duration) {
	name := "APIRequests"
	if statusCode >= http.StatusInternalServerError {
		name = "APIErrors"
	}
	m.put(m.dimensions("Endpoint", endpoint),
		datum(name, 1, types.StandardUnitCount),
		datum("APILatency", float64(duration.Milliseconds()), types.StandardUnitMilliseconds),
	)
}

// RecordConversions records how many inputs a request converted and rejected
func (m *Client) RecordConversions(kind string, converted, rejected int) {
	data := []types.MetricDatum{datum("Conversions", float64(converted), types.StandardUnitCount)}
	if rejected > 0 {
		data = append(data, datum("ConversionsRejected", float64(rejected), types.StandardUnitCount))
	}
	m.put(m.dimensions("Kind", kind), data...)
}

func (m *Client) dimensions(name, value string) []types.Dimension {
	return []types.Dimension{
		{Name: aws.String(name), Value: aws.String(value)},
		{Name: aws.String("Environment"), Value: aws.String(m.environment)},
	}
}

func datum(name string, value float64, unit types.StandardUnit) types.MetricDatum {
	return types.MetricDatum{MetricName: aws.String(name), Value: aws.Float64(value), Unit: unit}
}

// put sends data in one PutMetricData call off the request path
func (m *Client) put(dimensions []types.Dimension, data ...types.MetricDatum) {
	if !m.Enabled() {
		return
	}

	now := time.Now()
	for i := range data {
		data[i].Dimensions = dimensions
		data[i].Timestamp = aws.Time(now)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cloudwatchTimeout)
		defer cancel()

		_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(namespace),
			MetricData: data,
		})
		if err != nil {
			log.Printf("Failed to record %d CloudWatch metrics: %v", len(data), err)
		}
	}()
}
