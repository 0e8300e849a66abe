package charts

import (
	"testing"
	"time"

	"github.com/aish1496/world-map-explorer/internal/dataset"
)

func TestHistoryTimeseries(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("labelled history is not a time series", func(t *testing.T) {
		points := []dataset.Point{{Label: "2018", Value: 1}, {Label: "2019", Value: 2}}
		if HasTimes(points) {
			t.Error("HasTimes() = true, want false")
		}
		if got := HistoryTimeseries("gdp", points, 80); got != "" {
			t.Errorf("HistoryTimeseries() = %q, want empty", got)
		}
	})

	t.Run("empty history", func(t *testing.T) {
		if HasTimes(nil) {
			t.Error("HasTimes(nil) = true, want false")
		}
	})

	t.Run("time stamped history renders", func(t *testing.T) {
		points := []dataset.Point{
			{Time: now.Add(-2 * time.Hour), Value: 42000},
			{Time: now.Add(-time.Hour), Value: 42500},
			{Time: now, Value: 43242},
		}
		if !HasTimes(points) {
			t.Fatal("HasTimes() = false, want true")
		}
		if got := HistoryTimeseries("gdp", points, 80); len(got) == 0 {
			t.Error("chart output is empty, want non-empty")
		}
	})

	t.Run("flat history does not panic", func(t *testing.T) {
		points := []dataset.Point{
			{Time: now.Add(-time.Hour), Value: 5},
			{Time: now, Value: 5},
		}
		if got := HistoryTimeseries("gdp", points, 40); len(got) == 0 {
			t.Error("chart output is empty, want non-empty")
		}
	})
}
