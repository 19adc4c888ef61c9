package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"
	"time"

	"FastqStats/pkg/fastqStats"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// flag
var (
	outputPrefix = flag.String(
		"o",
		"fastqStats",
		"output prefix of comparison .png/.html/.xlsx, written only for 2 or more fastq",
	)
	debug = flag.Bool(
		"debug",
		false,
		"debug",
	)
	cpuProfile = flag.String(
		"cpu",
		"log.cpuProfile",
		"cpu profile, only with -debug",
	)
)

func main() {
	t0 := time.Now()
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] <fastq>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		log.Fatal("fastq required!")
	}

	var stopProfile = func() {}
	if *debug {
		stopProfile = startCPUProfile(*cpuProfile)
	}

	if err := run(flag.Args(), *outputPrefix); err != nil {
		// log.Fatalf skips deferred calls
		stopProfile()
		log.Fatalf("summarize with error:[%v]", err)
	}

	stopProfile()
	slog.Info("Done", "time", time.Since(t0))
}

// startCPUProfile returns the func that flushes and closes the profile
func startCPUProfile(path string) func() {
	var LogCPUProfile = osUtil.Create(path)
	simpleUtil.CheckErr(pprof.StartCPUProfile(LogCPUProfile))
	return func() {
		pprof.StopCPUProfile()
		simpleUtil.CheckErr(LogCPUProfile.Close())
	}
}

// run summarizes every existing fastq in order, the first failing one aborts the run
// before any comparison output is written
func run(fqList []string, prefix string) error {
	var summaries []*fastqStats.FileSummary
	for _, fq := range fqList {
		if !fastqStats.CheckFile(os.Stdout, fq) {
			continue
		}
		summary, err := fastqStats.SummarizeFile(fq)
		if err != nil {
			return err
		}
		summary.WriteStats(os.Stdout)
		slog.Info("Summary", "file", fq, "reads", summary.ReadCount, "meanLength", summary.MeanLength, "meanGC", summary.MeanGC)
		summaries = append(summaries, summary)
	}

	if len(summaries) > 1 {
		if err := fastqStats.PlotComparison(summaries, prefix+".png"); err != nil {
			return err
		}
		fastqStats.PlotComparisonHTML(summaries, prefix+".html")
		fastqStats.WriteComparisonXlsx(summaries, prefix+".xlsx")
		slog.Info("Comparison", "files", len(summaries), "prefix", prefix)
	}
	return nil
}
