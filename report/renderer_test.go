package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/opprof/format"
	"github.com/arloliu/opprof/group"
	"github.com/arloliu/opprof/series"
)

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(&buf).Render(sampleReport()))

	out := buf.String()
	require.Contains(t, out, "=== Session demo (generation 3) ===")
	require.Contains(t, out, "--- power (group) ---")
	require.Contains(t, out, "--- dup ---")

	lines := strings.Split(out, "\n")
	require.Contains(t, lines, "size  slow_pow  fast_pow")
	require.Contains(t, lines, "1     1         -")
	require.Contains(t, lines, "4     4         2")
	require.Contains(t, lines, "100   4950")
}

func TestTextRenderer_Durations(t *testing.T) {
	all := []series.Series{{Name: "fact", Points: []series.Point{
		{Size: 1000, Value: int64(1500 * time.Microsecond), Kind: format.KindDuration},
	}}}
	rep := Build(Meta{Session: "t"}, all, nil)

	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(&buf, WithDurationUnit(time.Millisecond)).Render(rep))
	require.Contains(t, buf.String(), "2ms")

	buf.Reset()
	require.NoError(t, NewTextRenderer(&buf).Render(rep))
	require.Contains(t, buf.String(), "1.5ms")
}

func TestTextRenderer_Empty(t *testing.T) {
	var buf bytes.Buffer
	rep := Build(Meta{Session: "empty", Generation: 1}, nil, []group.Group{{Name: "g", Series: []string{"nothing"}}})

	require.NoError(t, NewTextRenderer(&buf).Render(rep))
	require.Contains(t, buf.String(), "--- g (group) ---\n(no data)")

	buf.Reset()
	require.NoError(t, NewTextRenderer(&buf).Render(Build(Meta{Session: "empty"}, nil, nil)))
	require.Contains(t, buf.String(), "(no series recorded)")
}

func TestCSVRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVRenderer(&buf).Render(sampleReport()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "session,generation,series,size,kind,value", lines[0])
	require.Len(t, lines, 7)
	require.Equal(t, "demo,3,slow_pow,1,count,1", lines[1])
	require.Equal(t, "demo,3,dup,100,count,4950", lines[6])
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer(&buf).Render(sampleReport()))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "demo", decoded.Session)
	require.Equal(t, "run-1", decoded.RunID)
	require.Equal(t, sampleReport().Series, decoded.Series)
	require.Contains(t, buf.String(), `"kind": "count"`)
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLRenderer(&buf).Render(sampleReport()))

	out := buf.String()
	require.Contains(t, out, "session: demo")
	require.Contains(t, out, "kind: count")

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, sampleReport().Groups, decoded.Groups)
	require.Equal(t, uint64(3), decoded.Generation)
}

func TestPrometheusExporter(t *testing.T) {
	reg := prometheus.NewRegistry()
	exp, err := NewPrometheusExporter(reg, WithNamespace("bench"))
	require.NoError(t, err)

	require.NoError(t, exp.Render(sampleReport()))

	require.Equal(t, 6, testutil.CollectAndCount(exp.values))
	require.Equal(t, 2, testutil.CollectAndCount(exp.members))
	require.InDelta(t, 4950.0, testutil.ToFloat64(exp.values.WithLabelValues("demo", "dup", "100", "count")), 1e-9)

	// a second exporter on the same registry reuses the collectors
	again, err := NewPrometheusExporter(reg, WithNamespace("bench"))
	require.NoError(t, err)
	require.Same(t, exp.values, again.values)

	// rendering replaces earlier values
	require.NoError(t, again.Render(Build(Meta{Session: "next"}, nil, nil)))
	require.Equal(t, 0, testutil.CollectAndCount(exp.values))
}

func TestPrometheusExporter_Durations(t *testing.T) {
	reg := prometheus.NewRegistry()
	exp, err := NewPrometheusExporter(reg)
	require.NoError(t, err)

	all := []series.Series{{Name: "fact", Points: []series.Point{
		{Size: 10, Value: int64(250 * time.Millisecond), Kind: format.KindDuration},
	}}}
	require.NoError(t, exp.Render(Build(Meta{Session: "s"}, all, nil)))
	require.InDelta(t, 0.25, testutil.ToFloat64(exp.values.WithLabelValues("s", "fact", "10", "duration")), 1e-9)
}

func TestMulti(t *testing.T) {
	var calls []string
	first := RendererFunc(func(*Report) error { calls = append(calls, "first"); return nil })
	failing := RendererFunc(func(*Report) error { calls = append(calls, "failing"); return errors.New("boom") })
	never := RendererFunc(func(*Report) error { calls = append(calls, "never"); return nil })

	err := Multi(first, failing, never).Render(sampleReport())
	require.EqualError(t, err, "boom")
	require.Equal(t, []string{"first", "failing"}, calls)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderers_WriteError(t *testing.T) {
	require.Error(t, NewTextRenderer(failingWriter{}).Render(sampleReport()))
	require.Error(t, NewCSVRenderer(failingWriter{}).Render(sampleReport()))
	require.Error(t, NewJSONRenderer(failingWriter{}).Render(sampleReport()))
}
