package fastqStats

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Panel is one bar chart of the comparison figure
type Panel struct {
	Title  string
	Values []float64
	Format string
}

// ComparisonPanels returns total reads, mean read length and mean GC, one value per summary
func ComparisonPanels(summaries []*FileSummary) []Panel {
	var panels = []Panel{
		{Title: "Total number of reads", Format: "%.0f"},
		{Title: "Mean read length", Format: "%.2f"},
		{Title: "Mean GC proportion", Format: "%.2f"},
	}
	for _, s := range summaries {
		panels[0].Values = append(panels[0].Values, float64(s.ReadCount))
		panels[1].Values = append(panels[1].Values, s.MeanLength)
		panels[2].Values = append(panels[2].Values, s.MeanGC)
	}
	return panels
}

// FileNames labels the bars by base name
func FileNames(summaries []*FileSummary) []string {
	var names = make([]string, len(summaries))
	for i, s := range summaries {
		names[i] = filepath.Base(s.Name)
	}
	return names
}

// NewBarPlot builds one panel with rotated file names and a value above each bar
func NewBarPlot(panel Panel, names []string, color int) (*plot.Plot, error) {
	var p = plot.New()
	p.Title.Text = panel.Title

	bars, err := plotter.NewBarChart(plotter.Values(panel.Values), vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(color)
	p.Add(bars)

	var xys = make(plotter.XYs, len(panel.Values))
	var labels = make([]string, len(panel.Values))
	for i, v := range panel.Values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		labels[i] = fmt.Sprintf(panel.Format, v)
	}
	values, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range values.TextStyle {
		values.TextStyle[i].XAlign = draw.XCenter
		values.TextStyle[i].YAlign = draw.YBottom
	}
	p.Add(values)

	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.Font.Size = vg.Points(7)
	// leave room for the value label of the highest bar
	p.Y.Min = 0
	p.Y.Max *= 1.1
	return p, nil
}

// PlotComparison saves the three panels side by side to a png
func PlotComparison(summaries []*FileSummary, path string) error {
	var (
		names  = FileNames(summaries)
		panels = ComparisonPanels(summaries)
		row    = make([]*plot.Plot, len(panels))
	)
	for i, panel := range panels {
		p, err := NewBarPlot(panel, names, i)
		if err != nil {
			return fmt.Errorf("plot %s: %w", panel.Title, err)
		}
		row[i] = p
	}

	var (
		width  = vg.Length(max(5*len(summaries), 10)) * vg.Inch
		height = 6 * vg.Inch
		img    = vgimg.New(width, height)
		dc     = draw.New(img)
		tiles  = draw.Tiles{
			Rows:      1,
			Cols:      len(panels),
			PadX:      vg.Millimeter * 5,
			PadTop:    vg.Millimeter * 2,
			PadBottom: vg.Millimeter * 2,
			PadLeft:   vg.Millimeter * 2,
			PadRight:  vg.Millimeter * 2,
		}
		canvases = plot.Align([][]*plot.Plot{row}, tiles, dc)
	)
	for i, p := range row {
		p.Draw(canvases[0][i])
	}

	var output = osUtil.Create(path)
	defer simpleUtil.DeferClose(output)
	_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(output)
	return err
}

func generateBarItems(values []float64) []opts.BarData {
	var items = make([]opts.BarData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.BarData{Value: Round2(v)})
	}
	return items
}

// PlotComparisonHTML renders the same panels as an echarts page
func PlotComparisonHTML(summaries []*FileSummary, path string) {
	var (
		names  = FileNames(summaries)
		page   = components.NewPage()
		output = osUtil.Create(path)
	)
	defer simpleUtil.DeferClose(output)

	page.PageTitle = "FASTQ comparison"
	page.SetLayout(components.PageFlexLayout)
	for _, panel := range ComparisonPanels(summaries) {
		var bar = charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
			charts.WithTitleOpts(opts.Title{Title: panel.Title}),
			charts.WithXAxisOpts(opts.XAxis{
				AxisLabel: &opts.AxisLabel{Show: true, Interval: "0", Rotate: 45},
			}),
		)
		bar.SetXAxis(names).
			AddSeries(panel.Title, generateBarItems(panel.Values)).
			SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: true, Position: "top"}))
		page.AddCharts(bar)
	}
	simpleUtil.CheckErr(page.Render(output))
}
