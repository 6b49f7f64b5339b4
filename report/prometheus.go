package report

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/opprof/format"
	"github.com/arloliu/opprof/internal/options"
)

type prometheusConfig struct {
	namespace string
	subsystem string
}

// PrometheusOption configures a PrometheusExporter.
type PrometheusOption = options.Option[*prometheusConfig]

// WithNamespace sets the metric namespace (default "opprof").
func WithNamespace(ns string) PrometheusOption {
	return options.NoError(func(cfg *prometheusConfig) {
		cfg.namespace = ns
	})
}

// WithSubsystem sets the metric subsystem (default empty).
func WithSubsystem(subsystem string) PrometheusOption {
	return options.NoError(func(cfg *prometheusConfig) {
		cfg.subsystem = subsystem
	})
}

// PrometheusExporter publishes a report as gauges:
//
//	<ns>_series_value{session,series,size,kind}  measured value (durations in seconds)
//	<ns>_group_member{session,group,series}      1 for every group membership
//
// Every Render replaces the previously published values.
type PrometheusExporter struct {
	values  *prometheus.GaugeVec
	members *prometheus.GaugeVec
}

var _ Renderer = (*PrometheusExporter)(nil)

// NewPrometheusExporter creates the gauges and registers them with reg. If the
// gauges were already registered by another exporter, the existing collectors are
// reused.
func NewPrometheusExporter(reg prometheus.Registerer, opts ...PrometheusOption) (*PrometheusExporter, error) {
	cfg := &prometheusConfig{namespace: "opprof"}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	values := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: cfg.namespace,
		Subsystem: cfg.subsystem,
		Name:      "series_value",
		Help:      "Measured value of a profiled series at an input size.",
	}, []string{"session", "series", "size", "kind"})

	members := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: cfg.namespace,
		Subsystem: cfg.subsystem,
		Name:      "group_member",
		Help:      "Set to 1 for every series listed by a comparison group.",
	}, []string{"session", "group", "series"})

	var err error
	if values, err = registerGaugeVec(reg, values); err != nil {
		return nil, err
	}
	if members, err = registerGaugeVec(reg, members); err != nil {
		return nil, err
	}

	return &PrometheusExporter{values: values, members: members}, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec) (*prometheus.GaugeVec, error) {
	err := reg.Register(vec)
	if err == nil {
		return vec, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
			return existing, nil
		}
	}

	return nil, err
}

// Render publishes rep.
func (e *PrometheusExporter) Render(rep *Report) error {
	e.values.Reset()
	e.members.Reset()

	for _, s := range rep.Series {
		for _, pt := range s.Points {
			v := float64(pt.Value)
			if pt.Kind == format.KindDuration {
				v = pt.Duration().Seconds()
			}
			e.values.WithLabelValues(rep.Session, s.Name, strconv.Itoa(pt.Size), pt.Kind.String()).Set(v)
		}
	}

	for _, g := range rep.Groups {
		for _, name := range g.Series {
			e.members.WithLabelValues(rep.Session, g.Name, name).Set(1)
		}
	}

	return nil
}
