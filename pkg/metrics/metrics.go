package metrics

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// MetricSet is a group of metrics written together, ordered by entity name.
type MetricSet map[string]Metric

func (s MetricSet) Add(ms ...Metric) {
	for _, m := range ms {
		s[m.entityName()] = m
	}
}

func (s MetricSet) Write(w io.Writer) error {
	for _, k := range sortedKeys(s) {
		if err := s[k].outputMetric(w); err != nil {
			return err
		}
	}
	return nil
}

func NewGauge(name, help string) Metric {
	return &metricEntity{
		metricName: name,
		help:       help,
		values:     make(map[string]metricValueItem),
		metricType: "gauge",
	}
}

type Metric interface {
	entityName() string
	outputMetric(w io.Writer) error
	Set(labels Labels, value RoundFloat64)
}

type metricEntity struct {
	metricType string
	metricName string
	help       string
	values     map[string]metricValueItem
	mu         sync.Mutex
}

var noneLabels = make(Labels)

func (m *metricEntity) entityName() string {
	return m.metricType + "_" + m.metricName
}

func (m *metricEntity) Set(labels Labels, value RoundFloat64) {
	if labels == nil {
		labels = noneLabels
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[labels.String()] = metricValueItem{
		labels: labels,
		value:  value,
	}
}

func (m *metricEntity) outputMetric(w io.Writer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.values) == 0 {
		// No values, no output
		return nil
	}

	if _, err := fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s %s\n", m.metricName, m.help, m.metricName, m.metricType); err != nil {
		return err
	}
	for _, k := range sortedKeys(m.values) {
		if err := m.values[k].writeValue(m.metricName, w); err != nil {
			return err
		}
	}

	return nil
}

// metricValueItem is a single labelled sample.
type metricValueItem struct {
	labels Labels
	value  fmt.Stringer
}

func (m metricValueItem) writeValue(name string, w io.Writer) error {
	_, err := io.WriteString(w, name+m.labels.String()+" "+m.value.String()+"\n")
	return err
}

// Labels is a set of labels for a metric
type Labels map[string]string

func (l Labels) String() string {
	if len(l) == 0 {
		return ""
	}

	kvs := make([]string, 0, len(l))
	for _, k := range sortedKeys(l) {
		kvs = append(kvs, fmt.Sprintf("%s=%s", k, strconv.Quote(l[k])))
	}
	return "{" + strings.Join(kvs, ",") + "}"
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
