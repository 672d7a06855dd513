package render

import (
	"errors"
	"fmt"
	"io"
	"sort"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// Decode reads a Prometheus text exposition and returns its samples sorted by
// name. Histograms and summaries contribute their _sum and _count.
func Decode(r io.Reader) ([]Sample, error) {
	dec := expfmt.NewDecoder(r, expfmt.NewFormat(expfmt.TypeTextPlain))

	var samples []Sample
	for {
		var mf dto.MetricFamily
		if err := dec.Decode(&mf); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode metrics: %w", err)
		}
		samples = append(samples, familySamples(&mf)...)
	}

	// families come back in map order
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Name < samples[j].Name
	})
	return samples, nil
}

func familySamples(mf *dto.MetricFamily) []Sample {
	name := mf.GetName()
	var out []Sample

	for _, m := range mf.GetMetric() {
		labels := labelMap(m.GetLabel())

		switch mf.GetType() {
		case dto.MetricType_COUNTER:
			out = append(out, Sample{Name: name, Labels: labels, Value: m.GetCounter().GetValue()})
		case dto.MetricType_GAUGE:
			out = append(out, Sample{Name: name, Labels: labels, Value: m.GetGauge().GetValue()})
		case dto.MetricType_UNTYPED:
			out = append(out, Sample{Name: name, Labels: labels, Value: m.GetUntyped().GetValue()})
		case dto.MetricType_SUMMARY:
			out = append(out,
				Sample{Name: name + "_sum", Labels: labels, Value: m.GetSummary().GetSampleSum()},
				Sample{Name: name + "_count", Labels: labels, Value: float64(m.GetSummary().GetSampleCount())},
			)
		case dto.MetricType_HISTOGRAM, dto.MetricType_GAUGE_HISTOGRAM:
			out = append(out,
				Sample{Name: name + "_sum", Labels: labels, Value: m.GetHistogram().GetSampleSum()},
				Sample{Name: name + "_count", Labels: labels, Value: float64(m.GetHistogram().GetSampleCount())},
			)
		}
	}

	return out
}

func labelMap(pairs []*dto.LabelPair) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	labels := make(map[string]string, len(pairs))
	for _, lp := range pairs {
		labels[lp.GetName()] = lp.GetValue()
	}
	return labels
}

// LabelString renders labels as {a="1",b="2"} with sorted keys.
func LabelString(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b := []byte{'{'}
	for i, k := range keys {
		if i > 0 {
			b = append(b, ',')
		}
		b = fmt.Appendf(b, "%s=%q", k, labels[k])
	}
	return string(append(b, '}'))
}
