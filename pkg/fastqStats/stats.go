package fastqStats

import (
	"errors"
	"math"
)

var (
	// ErrEmptyFile is returned by Finalize when no header line was seen
	ErrEmptyFile = errors.New("no reads found, empty or malformed fastq")
	// ErrZeroLengthSequence is returned by Observe for an empty sequence line
	ErrZeroLengthSequence = errors.New("zero length sequence line")
)

// RunningStats accumulates one file in a single pass
type RunningStats struct {
	ReadCount     int
	TotalLength   int
	GCWeightedSum float64 // sum of per-read GC percentages

	DoubletCounts map[string]int
	// first-seen order of DoubletCounts keys
	DoubletOrder []string
}

func NewRunningStats() *RunningStats {
	return &RunningStats{
		DoubletCounts: make(map[string]int),
	}
}

// Observe updates the running totals with one classified line.
// Only Header and Sequence lines change anything.
func (stats *RunningStats) Observe(kind LineKind, content string) error {
	switch kind {
	case Header:
		stats.ReadCount++
	case Sequence:
		// lengths and the doublet count characters, not bytes
		var (
			length = 0
			gc     = 0
			cut    = len(content)
		)
		for i, c := range content {
			if length == 2 {
				cut = i
			}
			length++
			if c == 'G' || c == 'C' {
				gc++
			}
		}
		if length == 0 {
			return ErrZeroLengthSequence
		}
		stats.TotalLength += length
		stats.GCWeightedSum += float64(gc) / float64(length) * 100

		// reads shorter than 2 bases keep their 1 base key
		var doublet = content[:cut]
		if _, ok := stats.DoubletCounts[doublet]; !ok {
			stats.DoubletOrder = append(stats.DoubletOrder, doublet)
		}
		stats.DoubletCounts[doublet]++
	}
	return nil
}

// FileSummary is the finalized statistics of one fastq
type FileSummary struct {
	Name             string
	ReadCount        int
	MeanLength       float64
	MeanGC           float64
	DoubletFrequency map[string]float64
	DoubletOrder     []string
}

// Finalize derives means and doublet frequencies, stats must not be observed afterwards
func (stats *RunningStats) Finalize(name string) (*FileSummary, error) {
	if stats.ReadCount == 0 {
		return nil, ErrEmptyFile
	}
	var (
		n       = float64(stats.ReadCount)
		summary = &FileSummary{
			Name:             name,
			ReadCount:        stats.ReadCount,
			MeanLength:       Round2(float64(stats.TotalLength) / n),
			MeanGC:           Round2(stats.GCWeightedSum / n),
			DoubletFrequency: make(map[string]float64, len(stats.DoubletCounts)),
			DoubletOrder:     append([]string(nil), stats.DoubletOrder...),
		}
	)
	for k, v := range stats.DoubletCounts {
		summary.DoubletFrequency[k] = float64(v) / n
	}
	return summary, nil
}

// Round2 rounds half away from zero to 2 decimal places
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
