package prometheus

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/aish1496/world-map-explorer/internal/dataset"
	"github.com/prometheus/common/model"
)

// DefaultEntityLabel is the sample label that names the entity a value belongs to.
const DefaultEntityLabel = "country"

// Source fills a dataset's indicator values from Prometheus. Indicators
// without a query keep the values from the base dataset.
type Source struct {
	Client       Client
	EntityLabel  string
	Timeout      time.Duration
	HistoryRange time.Duration
	HistoryStep  time.Duration
	Logger       *slog.Logger
	Now          func() time.Time
}

// Load returns a copy of base with every queried indicator replaced by the
// latest sample per entity.
func (s Source) Load(base dataset.Dataset) (dataset.Dataset, error) {
	log := s.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	label := model.LabelName(s.EntityLabel)
	if label == "" {
		label = DefaultEntityLabel
	}

	ds := clone(base)
	index := make(map[string]int, len(ds.Entities))
	for i, e := range ds.Entities {
		index[e.ID] = i
	}
	entity := func(id string) *dataset.Entity {
		i, ok := index[id]
		if !ok {
			ds.Entities = append(ds.Entities, dataset.Entity{ID: id, Name: id, Values: map[string]*float64{}})
			i = len(ds.Entities) - 1
			index[id] = i
		}
		return &ds.Entities[i]
	}

	for _, ind := range ds.Indicators {
		if ind.Query == "" {
			continue
		}
		for i := range ds.Entities {
			delete(ds.Entities[i].Values, ind.ID)
		}

		start := time.Now()
		warnings, vector, err := s.Client.Query(ind.Query, s.Timeout)
		if err != nil {
			return dataset.Dataset{}, fmt.Errorf("querying indicator %q: %w", ind.ID, err)
		}
		for _, w := range warnings {
			log.Warn("prometheus warning", "indicator", ind.ID, "warning", w)
		}
		log.Debug("indicator loaded", "indicator", ind.ID, "samples", len(vector), "duration", time.Since(start))

		for _, sample := range vector {
			id := string(sample.Metric[label])
			if id == "" {
				log.Warn("sample without entity label", "indicator", ind.ID, "label", label, "metric", sample.Metric.String())
				continue
			}
			v := float64(sample.Value)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < 0 {
				log.Warn("skipping negative sample", "indicator", ind.ID, "entity", id, "value", v)
				continue
			}
			e := entity(id)
			if _, dup := e.Values[ind.ID]; dup {
				log.Debug("duplicate sample, keeping last", "indicator", ind.ID, "entity", id)
			}
			e.Values[ind.ID] = &v
		}
	}

	if err := s.loadHistory(&ds, label, entity, log); err != nil {
		return dataset.Dataset{}, err
	}
	return ds, nil
}

func (s Source) loadHistory(ds *dataset.Dataset, label model.LabelName, entity func(string) *dataset.Entity, log *slog.Logger) error {
	ind, ok := ds.Indicator(ds.HistoryIndicator)
	if !ok || ind.Query == "" || s.HistoryRange <= 0 {
		return nil
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	step := s.HistoryStep
	if step <= 0 {
		step = s.HistoryRange / 24
	}

	end := now()
	matrix, warnings, err := s.Client.QueryRange(ind.Query, end.Add(-s.HistoryRange), end, step, s.Timeout)
	if err != nil {
		return fmt.Errorf("querying history for %q: %w", ind.ID, err)
	}
	for _, w := range warnings {
		log.Warn("prometheus warning", "indicator", ind.ID, "warning", w)
	}

	for i := range ds.Entities {
		ds.Entities[i].History = nil
	}
	for _, stream := range matrix {
		id := string(stream.Metric[label])
		if id == "" {
			continue
		}
		e := entity(id)
		points := make([]dataset.Point, 0, len(stream.Values))
		for _, pair := range stream.Values {
			t := pair.Timestamp.Time()
			points = append(points, dataset.Point{
				Label: t.Format("Jan 02 15:04"),
				Time:  t,
				Value: float64(pair.Value),
			})
		}
		e.History = points
	}
	return nil
}

func clone(base dataset.Dataset) dataset.Dataset {
	ds := base
	ds.Indicators = append([]dataset.Indicator(nil), base.Indicators...)
	ds.Entities = make([]dataset.Entity, len(base.Entities))
	for i, e := range base.Entities {
		values := make(map[string]*float64, len(e.Values))
		for k, v := range e.Values {
			values[k] = v
		}
		e.Values = values
		e.History = append([]dataset.Point(nil), e.History...)
		ds.Entities[i] = e
	}
	return ds
}
