package report

import (
	"bytes"
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"cpu-scheduler-sim/internal/responses"
)

var ErrNoResults = errors.New("no results to chart")

// RenderChart draws the average waiting, turnaround and response time of
// each algorithm as grouped bars and returns the PNG bytes.
func RenderChart(results []responses.ScheduleResponse) ([]byte, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	p := plot.New()
	p.Title.Text = "Average times by algorithm"
	p.Y.Label.Text = "time units"
	p.Legend.Top = true

	names := make([]string, len(results))
	waiting := make(plotter.Values, len(results))
	turnaround := make(plotter.Values, len(results))
	response := make(plotter.Values, len(results))
	for i, res := range results {
		names[i] = res.Algorithm
		waiting[i] = res.AverageWaitingTime
		turnaround[i] = res.AverageTurnAroundTime
		response[i] = res.AverageResponseTime
	}

	width := vg.Points(18)
	series := []struct {
		label  string
		values plotter.Values
	}{
		{"Waiting", waiting},
		{"Turnaround", turnaround},
		{"Response", response},
	}
	for i, s := range series {
		bars, err := plotter.NewBarChart(s.values, width)
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(i-1) * width
		p.Add(bars)
		p.Legend.Add(s.label, bars)
	}
	p.NominalX(names...)

	writer, err := p.WriterTo(5*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
