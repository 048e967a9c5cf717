package probe

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "probe.yaml")
	def := `url: https://example.com/health
metric_name: HealthCheck
metric_namespace: ServiceMonitor
publish_on_success: true
expected_json_key_value:
  status: ok
expected_header_value:
  X-Env: prod
`
	if err := os.WriteFile(path, []byte(def), 0o644); err != nil {
		t.Fatal(err)
	}

	req, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if req.URL != "https://example.com/health" || !req.PublishOnSuccess {
		t.Fatalf("parsed wrong: %+v", req)
	}
	if req.ExpectedJSONFields["status"] != "ok" {
		t.Fatalf("json fields wrong: %+v", req.ExpectedJSONFields)
	}
	if req.ExpectedHeaders["X-Env"] != "prod" {
		t.Fatalf("headers wrong: %+v", req.ExpectedHeaders)
	}
}

func TestLoadFile_MissingURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "probe.yaml")
	if err := os.WriteFile(path, []byte("metric_name: X\nmetric_namespace: Y\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error for missing url")
	}
}
