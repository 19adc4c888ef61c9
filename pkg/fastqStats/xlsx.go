package fastqStats

import (
	math2 "github.com/liserjrqlxue/goUtil/math"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Summary"
	DoubletSheet = "Doublet"
)

var (
	TitleSummary = []any{"File", "Reads", "MeanLength", "MeanGC(%)"}
	TitleDoublet = []any{"File", "Rank", "Doublet", "Frequency"}
)

func SetRow(xlsx *excelize.File, sheet string, col, row int, value []any) {
	simpleUtil.CheckErr(
		xlsx.SetSheetRow(
			sheet,
			simpleUtil.HandleError(excelize.CoordinatesToCellName(col, row)),
			&value,
		),
	)
}

func getCellValue(xlsx *excelize.File, sheet string, col, row int) string {
	return simpleUtil.HandleError(
		xlsx.GetCellValue(
			sheet,
			simpleUtil.HandleError(excelize.CoordinatesToCellName(col, row)),
		),
	)
}

// MeanStdDev of each comparison panel across files, a single file has SD 0
func MeanStdDev(summaries []*FileSummary) (mean, sd []float64) {
	for _, panel := range ComparisonPanels(summaries) {
		var m, s = math2.MeanStdDev(panel.Values)
		if len(panel.Values) == 1 {
			s = 0
		}
		mean = append(mean, Round2(m))
		sd = append(sd, Round2(s))
	}
	return
}

// NewComparisonXlsx fills a Summary sheet with one row per file plus Mean and SD,
// and a Doublet sheet with every file's doublets ranked by frequency
func NewComparisonXlsx(summaries []*FileSummary) *excelize.File {
	var xlsx = excelize.NewFile()
	simpleUtil.CheckErr(xlsx.SetSheetName("Sheet1", SummarySheet))
	simpleUtil.HandleError(xlsx.NewSheet(DoubletSheet))

	SetRow(xlsx, SummarySheet, 1, 1, TitleSummary)
	var row = 2
	for _, s := range summaries {
		SetRow(xlsx, SummarySheet, 1, row, []any{s.Name, s.ReadCount, s.MeanLength, s.MeanGC})
		row++
	}
	if len(summaries) > 0 {
		var mean, sd = MeanStdDev(summaries)
		SetRow(xlsx, SummarySheet, 1, row, []any{"Mean", mean[0], mean[1], mean[2]})
		SetRow(xlsx, SummarySheet, 1, row+1, []any{"SD", sd[0], sd[1], sd[2]})
	}

	SetRow(xlsx, DoubletSheet, 1, 1, TitleDoublet)
	row = 2
	for _, s := range summaries {
		for i, d := range RankDoublets(s.DoubletFrequency) {
			SetRow(xlsx, DoubletSheet, 1, row, []any{s.Name, i + 1, d.Key, d.Value})
			row++
		}
	}
	return xlsx
}

// WriteComparisonXlsx saves NewComparisonXlsx to path
func WriteComparisonXlsx(summaries []*FileSummary, path string) {
	var xlsx = NewComparisonXlsx(summaries)
	defer simpleUtil.DeferClose(xlsx)
	simpleUtil.CheckErr(xlsx.SaveAs(path))
}
