package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hamed0406/servicemonitor/internal/metrics"
	"github.com/hamed0406/servicemonitor/internal/probe"
)

func main() {
	probeFile := flag.String("probe", "probe.yaml", "path to a YAML probe definition")
	dryRun := flag.Bool("dry-run", false, "record the metric in memory instead of CloudWatch")
	region := flag.String("region", "", "CloudWatch region (default: SDK environment)")
	timeout := flag.Duration("timeout", 10*time.Second, "probe HTTP timeout")
	flag.Parse()

	req, err := probe.LoadFile(*probeFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	var pub metrics.Publisher
	if *dryRun {
		pub = metrics.NewMemory()
	} else {
		cw, err := metrics.NewCloudWatch(*region)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		pub = cw
	}

	out, err := probe.NewProber(pub, *timeout, nil).Run(context.Background(), req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if out.Healthy() {
		fmt.Printf("%s is healthy\n", req.URL)
	} else {
		fmt.Printf("%s is unhealthy: %s\n", req.URL, out.Reason)
	}
	if out.Published {
		fmt.Printf("published %d to %s/%s\n", out.Value, out.Namespace, out.MetricName)
	} else {
		fmt.Println("nothing published (healthy, and publish_on_success is off)")
	}
}
