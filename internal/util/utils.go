package util

// CalculateAverage divides an integer total over count, returning 0 for an
// empty run.
func CalculateAverage(total int, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// CalculateAverages returns the averages of waiting, turnaround and
// response time contributions.
func CalculateAverages(waiting, turnaround, response []int) (averageWaitingTime, averageTurnAroundTime, averageResponseTime float64) {
	averageWaitingTime = CalculateAverage(sum(waiting), len(waiting))
	averageTurnAroundTime = CalculateAverage(sum(turnaround), len(turnaround))
	averageResponseTime = CalculateAverage(sum(response), len(response))
	return
}

func sum(values []int) int {
	var total int
	for _, v := range values {
		total += v
	}
	return total
}
