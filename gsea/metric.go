package gsea

import (
	"math"
	"sort"
)

// Metric selects the per-feature statistic used to rank a Dataset against a
// Template. The kernel itself is agnostic to which metric is used (spec.md
// §6); these are the concrete metrics named in spec.md §2's data flow
// description ("signal-to-noise, t-test, ratio, log-ratio, difference").
type Metric int

const (
	// SignalToNoise is (mean1-mean2)/(std1+std2), with stds floored to avoid
	// division blowups on near-constant rows.
	SignalToNoise Metric = iota
	// TTest is (mean1-mean2)/sqrt(std1^2/n1 + std2^2/n2), the unpooled
	// standard error of the difference.
	TTest
	// Ratio is mean1/mean2.
	Ratio
	// Log2Ratio is log2(mean1/mean2).
	Log2Ratio
	// Difference is mean1-mean2.
	Difference
	// Pearson is the Pearson correlation of a row against a continuous
	// template.
	Pearson
)

// SortMode controls whether a scored ranked list is ordered by signed score
// or by absolute score.
type SortMode int

const (
	// SortBySignedScore orders by the raw signed score.
	SortBySignedScore SortMode = iota
	// SortByAbsoluteScore orders by |score|, largest first.
	SortByAbsoluteScore
)

// MetricParams configures metric computation. WeightExponent (p in spec.md
// §3's hitPoints formula) defaults to 1 when zero-valued; an exponent of
// exactly 0 cannot be expressed, since zero always means 1.
type MetricParams struct {
	// WeightExponent is the KS weighting exponent p. Zero means "use the
	// default of 1", matching DefaultMetricParams.
	WeightExponent float64
	// MinStd floors per-class standard deviations for SignalToNoise. TTest
	// uses it as the standard error only when the computed one is zero, and
	// Ratio/Log2Ratio use it in place of a zero class-1 mean.
	MinStd float64
}

// DefaultMetricParams is the spec's documented default: weighting exponent
// 1, a small standard-deviation floor.
var DefaultMetricParams = MetricParams{WeightExponent: 1, MinStd: 0.2}

func (p MetricParams) weightExponent() float64 {
	if p.WeightExponent == 0 {
		return 1
	}
	return p.WeightExponent
}

// Dataset is a row-major numeric matrix: one row per feature, one column per
// sample.
type Dataset struct {
	FeatureNames []Feature
	SampleNames  []string
	Data         [][]float64 // Data[row][col]
}

// NumFeatures returns the dataset's row count.
func (d *Dataset) NumFeatures() int { return len(d.FeatureNames) }

// NumSamples returns the dataset's column count.
func (d *Dataset) NumSamples() int { return len(d.SampleNames) }

// Template is a class-label vector over a Dataset's samples: either discrete
// (Classes, a 0/1 membership per sample for two-class metrics) or continuous
// (ContinuousValues, for Pearson). Strata optionally groups samples (e.g. by
// batch) for BalanceWithinClassRandomizer; it is ignored otherwise.
type Template struct {
	Classes          []int // 0 or 1 per sample; nil if continuous
	ContinuousValues []float64
	Strata           []int
}

func (t *Template) isContinuous() bool { return t.ContinuousValues != nil }

func (t *Template) sampleCount() int {
	if t.isContinuous() {
		return len(t.ContinuousValues)
	}
	return len(t.Classes)
}

// ScoreDataset produces a RankedList of length dataset.NumFeatures() from
// dataset and template under metric, sorted per sort/order. It is the
// kernel's sole Dataset Metric Scoring contract (spec.md §4.4): deterministic
// given identical inputs, and the only requirement the kernel places on it.
func ScoreDataset(metric Metric, sortMode SortMode, order Order, params MetricParams, dataset *Dataset, template *Template) (*RankedList, error) {
	if dataset == nil || template == nil {
		return nil, errInvalidArgument("gsea: ScoreDataset: nil dataset or template")
	}
	if template.isContinuous() {
		if len(template.ContinuousValues) != dataset.NumSamples() {
			return nil, errInvalidArgument("gsea: ScoreDataset: template length %d does not match dataset sample count %d", len(template.ContinuousValues), dataset.NumSamples())
		}
	} else {
		if len(template.Classes) != dataset.NumSamples() {
			return nil, errInvalidArgument("gsea: ScoreDataset: template length %d does not match dataset sample count %d", len(template.Classes), dataset.NumSamples())
		}
	}

	scores := make([]float64, dataset.NumFeatures())
	for i, row := range dataset.Data {
		s, err := scoreRow(metric, params, row, template)
		if err != nil {
			return nil, err
		}
		scores[i] = s
	}

	names := make([]Feature, len(dataset.FeatureNames))
	copy(names, dataset.FeatureNames)
	sortRows(names, scores, sortMode, order)

	return NewRankedList(names, scores, order)
}

func scoreRow(metric Metric, params MetricParams, row []float64, template *Template) (float64, error) {
	if metric == Pearson {
		return pearson(row, template.ContinuousValues), nil
	}
	g1, g2 := splitByClass(row, template.Classes)
	if len(g1) == 0 || len(g2) == 0 {
		return 0, errInvalidArgument("gsea: ScoreDataset: template must have both classes represented")
	}
	m1, m2 := mean(g1), mean(g2)
	switch metric {
	case SignalToNoise:
		s1, s2 := math.Max(stddev(g1, m1), params.MinStd), math.Max(stddev(g2, m2), params.MinStd)
		return (m1 - m2) / (s1 + s2), nil
	case TTest:
		s1, s2 := stddev(g1, m1), stddev(g2, m2)
		n1, n2 := float64(len(g1)), float64(len(g2))
		se := math.Sqrt(s1*s1/n1 + s2*s2/n2)
		if se == 0 {
			se = params.MinStd
		}
		return (m1 - m2) / se, nil
	case Ratio:
		if m2 == 0 {
			m2 = params.MinStd
		}
		return m1 / m2, nil
	case Log2Ratio:
		if m2 == 0 {
			m2 = params.MinStd
		}
		return math.Log2(m1 / m2), nil
	case Difference:
		return m1 - m2, nil
	default:
		return 0, errInvalidArgument("gsea: ScoreDataset: unknown metric %v", metric)
	}
}

func splitByClass(row []float64, classes []int) (g1, g2 []float64) {
	for i, c := range classes {
		if c == 0 {
			g1 = append(g1, row[i])
		} else {
			g2 = append(g2, row[i])
		}
	}
	return g1, g2
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stddev(xs []float64, m float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	ss := 0.0
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return 0
	}
	mx, my := mean(xs), mean(ys)
	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx, dy := xs[i]-mx, ys[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0
	}
	return sxy / math.Sqrt(sxx*syy)
}

func sortRows(names []Feature, scores []float64, mode SortMode, order Order) {
	idx := make([]int, len(names))
	for i := range idx {
		idx[i] = i
	}
	less := func(i, j int) bool {
		a, b := scores[idx[i]], scores[idx[j]]
		if mode == SortByAbsoluteScore {
			a, b = math.Abs(a), math.Abs(b)
		}
		if order == Descending {
			return a > b
		}
		return a < b
	}
	sort.SliceStable(idx, less)

	sortedNames := make([]Feature, len(names))
	sortedScores := make([]float64, len(scores))
	for i, j := range idx {
		sortedNames[i] = names[j]
		sortedScores[i] = scores[j]
	}
	copy(names, sortedNames)
	copy(scores, sortedScores)
}
