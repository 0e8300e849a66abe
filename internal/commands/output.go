package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aish1496/world-map-explorer/internal/colorscale"
	"github.com/aish1496/world-map-explorer/internal/dataset"
	"gopkg.in/yaml.v2"
)

// Output formats accepted by the printing commands.
const (
	OutputGraph = "graph"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

func formatLegend(ind dataset.Indicator, r colorscale.Range, steps []colorscale.LegendStep, err error) map[string]any {
	data := make([]map[string]any, 0, len(steps))
	for _, step := range steps {
		data = append(data, map[string]any{
			"value": step.Value,
			"label": step.Label(),
			"color": step.Color.String(),
			"hex":   step.Color.Hex(),
		})
	}

	result := map[string]any{
		"indicator": ind.ID,
		"unit":      ind.Unit,
		"steps":     data,
		"error":     nil,
	}
	if err != nil {
		result["error"] = err.Error()
		return result
	}
	result["min"] = r.Min
	result["max"] = r.Max
	return result
}

func formatColors(ds dataset.Dataset, ind dataset.Indicator, colors map[string]colorscale.Color, r colorscale.Range, err error) map[string]any {
	data := make([]map[string]any, 0, len(ds.Entities))
	for _, e := range ds.Entities {
		c := colors[e.ID]
		var value any
		if v := e.Value(ind.ID); v.Valid {
			value = v.Float64
		}
		data = append(data, map[string]any{
			"id":    e.ID,
			"name":  e.Name,
			"value": value,
			"color": c.String(),
			"hex":   c.Hex(),
		})
	}

	result := map[string]any{
		"indicator": ind.ID,
		"unit":      ind.Unit,
		"entities":  data,
		"error":     nil,
	}
	if err != nil {
		result["error"] = err.Error()
		return result
	}
	result["min"] = r.Min
	result["max"] = r.Max
	return result
}

// writeStructured writes v as indented JSON or as YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case OutputJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case OutputYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshalling to YAML: %w", err)
		}
		_, err = fmt.Fprint(w, string(b))
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
