package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/util"
)

func formatTime(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// PrintAverages outputs the "[Average Times]" block of one algorithm.
func PrintAverages(w io.Writer, res responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, heading("\n[Average Times] %s", res.Algorithm))
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk([][]string{
		{"Average Waiting Time", formatTime(res.AverageWaitingTime)},
		{"Average Turnaround Time", formatTime(res.AverageTurnAroundTime)},
		{"Average Response Time", formatTime(res.AverageResponseTime)},
	})
	table.Render()
}

// PrintDetails outputs one row per completed process, in completion order.
func PrintDetails(w io.Writer, res responses.ScheduleResponse) {
	var (
		rows       = make([][]string, 0, len(res.Details))
		waiting    = make([]int, 0, len(res.Details))
		turnaround = make([]int, 0, len(res.Details))
		response   = make([]int, 0, len(res.Details))
	)
	for _, d := range res.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.Rounds),
		})
		waiting = append(waiting, d.WaitingTime)
		turnaround = append(turnaround, d.TurnAroundTime)
		response = append(response, d.ResponseTime)
	}
	aveWait, aveTurnaround, aveResponse := util.CalculateAverages(waiting, turnaround, response)

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"ID", "Burst", "Arrival", "Wait", "Response", "Turnaround", "Exit", "Rounds"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", aveWait),
		fmt.Sprintf("Average\n%.2f", aveResponse),
		fmt.Sprintf("Average\n%.2f", aveTurnaround),
		fmt.Sprintf("Throughput\n%.2f/t", res.CpuThroughput),
		""})
	table.Render()
}

// PrintComparison outputs the averages and CPU metrics of every algorithm
// side by side.
func PrintComparison(w io.Writer, results []responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, heading("\n[Comparison]"))
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Algorithm", "Avg Waiting", "Avg Turnaround", "Avg Response", "Total", "Idle", "Utilization"})
	for _, res := range results {
		table.Append([]string{
			res.Algorithm,
			formatTime(res.AverageWaitingTime),
			formatTime(res.AverageTurnAroundTime),
			formatTime(res.AverageResponseTime),
			fmt.Sprint(res.TotalTime),
			fmt.Sprint(res.IdleTime),
			fmt.Sprintf("%.0f%%", res.CpuUtilization*100),
		})
	}
	table.Render()
}
