package commands

import (
	"errors"
	"testing"

	"github.com/aish1496/world-map-explorer/internal/colorscale"
	"github.com/aish1496/world-map-explorer/internal/dataset"
)

func TestResolveIndicator(t *testing.T) {
	ds := dataset.Default()

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{"by id", "gdp", "gdp", false},
		{"by position", "1", "population", false},
		{"last position", "4", "internetAccess", false},
		{"position zero", "0", "", true},
		{"position past the end", "5", "", true},
		{"unknown id", "literacy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveIndicator(ds, tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveIndicator(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if got.ID != tt.want {
				t.Errorf("resolveIndicator(%q) = %q, want %q", tt.ref, got.ID, tt.want)
			}
		})
	}
}

func TestNewContext(t *testing.T) {
	t.Run("too few steps", func(t *testing.T) {
		cli := CLI{Steps: 1, Hue: 220}
		_, _, err := cli.NewContext()

		var stepErr *colorscale.InvalidStepCountError
		if !errors.As(err, &stepErr) {
			t.Fatalf("error = %v, want InvalidStepCountError", err)
		}
		if stepErr.Steps != 1 {
			t.Errorf("Steps = %d, want 1", stepErr.Steps)
		}
	})

	t.Run("built-in dataset", func(t *testing.T) {
		cli := CLI{Steps: 5, Hue: 220}
		ctx, closeFn, err := cli.NewContext()
		if err != nil {
			t.Fatalf("NewContext() error = %v", err)
		}
		defer closeFn()

		if ctx.Source != nil {
			t.Error("Source should be nil without a Prometheus URL")
		}
		if len(ctx.Base.Entities) != len(dataset.Default().Entities) {
			t.Errorf("entities = %d, want the built-in dataset", len(ctx.Base.Entities))
		}
		ds, err := ctx.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(ds.Indicators) == 0 {
			t.Error("Load() should return the base dataset")
		}
	})

	t.Run("prometheus source", func(t *testing.T) {
		cli := CLI{Steps: 5, Hue: 220, PrometheusURL: "http://localhost:9090", EntityLabel: "country"}
		ctx, closeFn, err := cli.NewContext()
		if err != nil {
			t.Fatalf("NewContext() error = %v", err)
		}
		defer closeFn()

		if ctx.Source == nil {
			t.Fatal("Source should be configured")
		}
		if ctx.Source.EntityLabel != "country" {
			t.Errorf("EntityLabel = %q, want country", ctx.Source.EntityLabel)
		}
	})

	t.Run("missing dataset file", func(t *testing.T) {
		cli := CLI{Steps: 5, Dataset: "does-not-exist.yaml"}
		if _, _, err := cli.NewContext(); err == nil {
			t.Error("NewContext() should fail for a missing dataset")
		}
	})
}
