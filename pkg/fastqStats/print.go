package fastqStats

import (
	"os"
	"sort"
	"strconv"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
)

// WriteStats prints reads, mean length, mean GC and the doublet frequencies in first-seen order
func (summary *FileSummary) WriteStats(file *os.File) {
	fmtUtil.Fprintf(file, "There are %d reads in the sample.\n", summary.ReadCount)
	fmtUtil.Fprintf(file, "The mean length of the reads is %.2f bases.\n", summary.MeanLength)
	fmtUtil.Fprintf(file, "The mean GC percentage is %.2f%%\n", summary.MeanGC)
	fmtUtil.Fprintln(file, "Doublet frequency for the first two bases of each read :")
	for _, k := range summary.DoubletOrder {
		fmtUtil.Fprintf(file, "%s -> %s\n", k, FormatFrequency(summary.DoubletFrequency[k]))
	}
}

// FormatFrequency writes f as a plain decimal without rounding
func FormatFrequency(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type Doublet struct {
	Key   string
	Value float64
}

type DoubletList []Doublet

func (l DoubletList) Len() int {
	return len(l)
}

// Less orders by Value, equal values fall back to reverse Key so RankDoublets lists ties alphabetically
func (l DoubletList) Less(i, j int) bool {
	if l[i].Value == l[j].Value {
		return l[i].Key > l[j].Key
	}
	return l[i].Value < l[j].Value
}

func (l DoubletList) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
}

// RankDoublets sorts data by descending frequency
func RankDoublets(data map[string]float64) DoubletList {
	var l = make(DoubletList, 0, len(data))
	for k, v := range data {
		l = append(l, Doublet{k, v})
	}
	sort.Sort(sort.Reverse(l))
	return l
}
