package fastqStats

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// ReadStats streams in line by line into fresh RunningStats.
// Lines have no length limit, a last line without newline is still read.
func ReadStats(in io.Reader) (*RunningStats, error) {
	var (
		stats  = NewRunningStats()
		state  = ExpectHeaderOrSequence
		kind   LineKind
		reader = bufio.NewReaderSize(in, 1024*1024)
		n      = 0
	)
	for {
		var raw, readErr = reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("line %d: %w", n+1, readErr)
		}
		if readErr == io.EOF && raw == "" {
			break
		}
		n++
		var line = strings.TrimSpace(raw)
		kind, state = Classify(line, state)
		if err := stats.Observe(kind, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if readErr == io.EOF {
			break
		}
	}
	return stats, nil
}

// Summarize reads one fastq and finalizes its statistics under name
func Summarize(in io.Reader, name string) (*FileSummary, error) {
	var stats, err = ReadStats(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	summary, err := stats.Finalize(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return summary, nil
}

// SummarizeFile opens path and summarizes it, path must exist
func SummarizeFile(path string) (*FileSummary, error) {
	var file = osUtil.Open(path)
	defer simpleUtil.DeferClose(file)
	return Summarize(file, path)
}

// CheckFile reports whether path exists, writing a notice to out either way
func CheckFile(out *os.File, path string) bool {
	if _, err := os.Stat(path); err != nil {
		fmtUtil.Fprintf(out, "The file %s does not exist, skipped !\n", path)
		return false
	}
	fmtUtil.Fprintf(out, "The file %s is going to be analysed...\n", path)
	return true
}
