package charts

import (
	"strings"
	"testing"

	"github.com/aish1496/world-map-explorer/internal/colorscale"
)

func TestLegend(t *testing.T) {
	t.Run("labels every step", func(t *testing.T) {
		steps, err := colorscale.BuildLegend(0, 100, 5)
		if err != nil {
			t.Fatalf("BuildLegend() error = %v", err)
		}
		out := Legend("Internet Access (%)", steps)
		if !strings.Contains(out, "Internet Access (%)") {
			t.Errorf("Legend() output does not contain title")
		}
		for _, want := range []string{"0", "25", "50", "75", "100"} {
			if !strings.Contains(out, want) {
				t.Errorf("Legend() output does not contain label %s", want)
			}
		}
	})

	t.Run("no steps shows placeholder", func(t *testing.T) {
		out := Legend("GDP", nil)
		if !strings.Contains(out, NoDataText) {
			t.Errorf("Legend() = %q, want placeholder", out)
		}
	})

	t.Run("long labels are cut to the swatch width", func(t *testing.T) {
		steps, err := colorscale.BuildLegend(0, 1e12, 2)
		if err != nil {
			t.Fatalf("BuildLegend() error = %v", err)
		}
		out := Legend("", steps)
		if strings.Contains(out, "1000000000000") {
			t.Errorf("Legend() output contains untruncated label")
		}
	})
}
