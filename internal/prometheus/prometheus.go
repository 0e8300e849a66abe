// Package prometheus loads indicator values from a Prometheus server.
package prometheus

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/prometheus/prometheus/promql/parser"
)

type prometheusClient struct {
	v1api v1.API
}

// Client is the subset of the Prometheus HTTP API the explorer needs.
type Client interface {
	Query(query string, timeout time.Duration) (v1.Warnings, model.Vector, error)
	QueryRange(query string, start, end time.Time, step time.Duration, timeout time.Duration) (model.Matrix, v1.Warnings, error)
}

func NewClient(url string) (Client, error) {
	client, err := api.NewClient(api.Config{
		Address: url,
	})
	if err != nil {
		return nil, fmt.Errorf("creating prometheus client: %w", err)
	}
	return &prometheusClient{v1api: v1.NewAPI(client)}, nil
}

func (c *prometheusClient) Query(query string, timeout time.Duration) (v1.Warnings, model.Vector, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	result, warnings, err := c.v1api.Query(ctx, query, time.Now(), v1.WithTimeout(timeout))
	if err != nil {
		return warnings, nil, err
	}
	vector, ok := result.(model.Vector)
	if !ok {
		return warnings, nil, unexpectedResult(result, model.ValVector)
	}
	return warnings, vector, nil
}

func (c *prometheusClient) QueryRange(query string, start, end time.Time, step time.Duration, timeout time.Duration) (model.Matrix, v1.Warnings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	result, warnings, err := c.v1api.QueryRange(ctx, query, v1.Range{
		Start: start,
		End:   end,
		Step:  step,
	}, v1.WithTimeout(timeout))
	if err != nil {
		return nil, warnings, err
	}
	matrix, ok := result.(model.Matrix)
	if !ok {
		return nil, warnings, unexpectedResult(result, model.ValMatrix)
	}
	return matrix, warnings, nil
}

func unexpectedResult(result model.Value, want model.ValueType) error {
	if result == nil {
		return fmt.Errorf("empty result, want %s", want)
	}
	return fmt.Errorf("unexpected result type: %s, want %s", result.Type(), want)
}

// FormatQuery pretty-prints query, returning it unchanged if it does not parse.
func FormatQuery(query string) string {
	ast, err := parser.ParseExpr(query)
	if err != nil {
		return query
	}
	return ast.Pretty(0)
}

// ValidateQuery reports PromQL syntax errors.
func ValidateQuery(query string) error {
	if _, err := parser.ParseExpr(query); err != nil {
		return fmt.Errorf("invalid query %q: %w", query, err)
	}
	return nil
}
