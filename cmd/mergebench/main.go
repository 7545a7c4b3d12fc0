// Command mergebench exercises the vect package's out-of-order merge
// kernel over synthetic columnar data and reports merge throughput,
// standing in for the host runtime during development.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
)

func main() {
	configPath := flag.String("config", "", "bench.json run definition (optional)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mergebench: %s\n", err)
		os.Exit(1)
	}

	var notify func(run, mergedRows int)
	if cfg.WatchAddr != "" {
		pb := newProgressBroadcaster()
		go func() {
			if err := pb.serve(cfg.WatchAddr); err != nil {
				fmt.Fprintf(os.Stderr, "mergebench: watch server: %s\n", err)
			}
		}()
		notify = func(run, mergedRows int) {
			pb.runCompleted(run, cfg.Runs, mergedRows)
		}
	}

	rep := runBenchmarkNotify(cfg, notify)
	fmt.Fprintf(os.Stdout, "data rows:       %s\n", humanize.Comma(int64(cfg.DataRows)))
	fmt.Fprintf(os.Stdout, "ooo rows:        %s\n", humanize.Comma(int64(cfg.OOORows)))
	fmt.Fprintf(os.Stdout, "runs:            %d\n", cfg.Runs)
	fmt.Fprintf(os.Stdout, "merged rows:     %s\n", humanize.Comma(int64(rep.mergedRows)))
	fmt.Fprintf(os.Stdout, "total elapsed:   %s\n", rep.totalElapsed)
	fmt.Fprintf(os.Stdout, "throughput:      %s rows/sec\n", humanize.Comma(int64(rep.rowsPerSecond())))
}
