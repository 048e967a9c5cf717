package probe

// Request describes one health probe: the target URL, the metric its
// outcome is published to, and optional response assertions. Field tags
// match the trigger record sent by the scheduler.
type Request struct {
	URL                string            `json:"url" yaml:"url"`
	MetricName         string            `json:"metric_name" yaml:"metric_name"`
	MetricNamespace    string            `json:"metric_namespace" yaml:"metric_namespace"`
	PublishOnSuccess   bool              `json:"publish_on_success" yaml:"publish_on_success"`
	ExpectedHeaders    map[string]string `json:"expected_header_value,omitempty" yaml:"expected_header_value,omitempty"`
	ExpectedJSONFields map[string]any    `json:"expected_json_key_value,omitempty" yaml:"expected_json_key_value,omitempty"`
}

// Outcome is the result of a single probe. Value is 0 (healthy) or 1
// (unhealthy); Published says whether a data point actually went to the
// metrics sink (a quiet success publishes nothing).
type Outcome struct {
	Value      int    `json:"value"`
	Namespace  string `json:"namespace"`
	MetricName string `json:"metric_name"`
	Published  bool   `json:"published"`
	Reason     string `json:"reason,omitempty"`
}

// Healthy reports whether the probe passed all checks.
func (o Outcome) Healthy() bool { return o.Value == healthy }
