// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	name := strings.TrimSpace(os.Getenv("SERVICE_NAME"))
	url := strings.TrimSpace(os.Getenv("SERVICE_URL"))
	secretName := strings.TrimSpace(os.Getenv("SLACK_SECRET_NAME"))
	secretRegion := strings.TrimSpace(os.Getenv("SLACK_SECRET_REGION"))
	awsRegion := strings.TrimSpace(os.Getenv("AWS_REGION"))

	if secretName == "" {
		fail("SLACK_SECRET_NAME is empty (notifier will fail every invocation).")
	}
	if secretRegion == "" {
		fail("SLACK_SECRET_REGION is empty (notifier will fail every invocation).")
	}

	if name == "" {
		warn("SERVICE_NAME is empty — Slack messages will read ' at <url> is DOWN'.")
	} else {
		ok("SERVICE_NAME=" + name)
	}
	if url == "" {
		warn("SERVICE_URL is empty — Slack messages will not name the endpoint.")
	} else if !strings.Contains(url, "://") {
		warn("SERVICE_URL has no scheme; the probe needs a full URL like https://example.com")
	} else {
		ok("SERVICE_URL=" + url)
	}

	if awsRegion == "" {
		warn("AWS_REGION empty — fine on Lambda, but local runs need it for CloudWatch.")
	} else {
		ok("AWS_REGION=" + awsRegion)
	}

	ok("preflight passed")
}
