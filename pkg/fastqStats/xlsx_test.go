package fastqStats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestNewComparisonXlsx(t *testing.T) {
	var xlsx = NewComparisonXlsx(threeSummaries)
	defer xlsx.Close()

	var summaryCells = []struct {
		col, row int
		want     string
	}{
		{1, 1, "File"},
		{1, 2, "data/a.fq"},
		{2, 2, "10"},
		{1, 3, "data/b.fq"},
		{2, 3, "20"},
		{1, 4, "c.fq"},
		{1, 5, "Mean"},
		{1, 6, "SD"},
	}
	for _, c := range summaryCells {
		if got := getCellValue(xlsx, SummarySheet, c.col, c.row); got != c.want {
			t.Errorf("%s(%d,%d) = %q; want %q", SummarySheet, c.col, c.row, got, c.want)
		}
	}

	// b.fq has a tie, ranked alphabetically
	var doubletCells = []struct {
		col, row int
		want     string
	}{
		{3, 1, "Doublet"},
		{3, 2, "AA"},
		{1, 3, "data/b.fq"},
		{2, 3, "1"},
		{3, 3, "CA"},
		{2, 4, "2"},
		{3, 4, "GG"},
		{3, 5, "TT"},
	}
	for _, c := range doubletCells {
		if got := getCellValue(xlsx, DoubletSheet, c.col, c.row); got != c.want {
			t.Errorf("%s(%d,%d) = %q; want %q", DoubletSheet, c.col, c.row, got, c.want)
		}
	}
}

func TestMeanStdDev(t *testing.T) {
	var mean, sd = MeanStdDev(threeSummaries[:1])
	var expected = []float64{10, 150, 41.25}
	for i := range expected {
		if mean[i] != expected[i] {
			t.Errorf("mean[%d] = %v; want %v", i, mean[i], expected[i])
		}
		if sd[i] != 0 {
			t.Errorf("sd[%d] = %v; single file should be 0", i, sd[i])
		}
	}

	mean, _ = MeanStdDev(threeSummaries[:2])
	if mean[0] != 15 {
		t.Errorf("mean reads = %v; want 15", mean[0])
	}
}

func TestWriteComparisonXlsx(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "compare.xlsx")
	WriteComparisonXlsx(threeSummaries, path)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected %s, but got: %v", path, err)
	}

	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer xlsx.Close()
	if got := xlsx.GetSheetList(); len(got) != 2 || got[0] != SummarySheet || got[1] != DoubletSheet {
		t.Errorf("sheets = %v; want [%s %s]", got, SummarySheet, DoubletSheet)
	}
}
