package main

import (
	"math/rand"
	"time"

	"github.com/vectdb/oomerge/vect"
)

// report summarizes one config's timed runs.
type report struct {
	cfg          config
	mergedRows   int
	totalElapsed time.Duration
}

func (r report) rowsPerSecond() float64 {
	if r.totalElapsed <= 0 {
		return 0
	}
	return float64(r.mergedRows) * float64(r.cfg.Runs) / r.totalElapsed.Seconds()
}

// runBenchmark builds a synthetic sorted data partition plus a batch of
// out-of-order rows, then times sort+merge over cfg.Runs repetitions.
func runBenchmark(cfg config) report {
	return runBenchmarkNotify(cfg, nil)
}

// runBenchmarkNotify is runBenchmark, additionally invoking onRun (if
// non-nil) after each completed repetition with its 1-based run index
// and merged row count.
func runBenchmarkNotify(cfg config, onRun func(run, mergedRows int)) report {
	r := rand.New(rand.NewSource(1))

	dataTs := make([]int64, cfg.DataRows)
	var ts int64
	for i := range dataTs {
		ts += 1 + r.Int63n(100)
		dataTs[i] = ts
	}
	dataIndex := make([]vect.Index, cfg.DataRows)
	for i, v := range dataTs {
		dataIndex[i] = vect.Index{Ts: uint64(v), I: vect.DataRef(uint64(i))}
	}

	oooRaw := make([]int64, cfg.OOORows)
	for i := range oooRaw {
		oooRaw[i] = dataTs[r.Intn(len(dataTs))] + int64(r.Intn(200)-100)
	}

	rep := report{cfg: cfg}
	for run := 0; run < cfg.Runs; run++ {
		oooIndex := make([]vect.Index, cfg.OOORows)
		vect.MakeTimestampIndex(oooRaw, 0, cfg.OOORows-1, oooIndex)

		start := time.Now()
		if cfg.SortThreshold > 0 {
			vect.SortWithThreshold(oooIndex, cfg.SortThreshold)
		} else {
			vect.Sort(oooIndex)
		}

		set := vect.NewMergeInputSet([][]vect.Index{dataIndex, oooIndex})
		merged := vect.Merge(set)
		rep.totalElapsed += time.Since(start)
		rep.mergedRows = len(merged)
		vect.FreeMergedIndex(merged)
		if onRun != nil {
			onRun(run+1, rep.mergedRows)
		}
	}
	return rep
}
