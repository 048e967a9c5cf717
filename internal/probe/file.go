package probe

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a probe request from a YAML file. Used by the one-shot
// CLI and by the local background runner.
func LoadFile(path string) (Request, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Request{}, err
	}
	var req Request
	if err := yaml.Unmarshal(raw, &req); err != nil {
		return Request{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if req.URL == "" {
		return Request{}, fmt.Errorf("%s: url is required", path)
	}
	if req.MetricName == "" || req.MetricNamespace == "" {
		return Request{}, fmt.Errorf("%s: metric_name and metric_namespace are required", path)
	}
	return req, nil
}
