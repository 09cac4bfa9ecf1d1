package aggregate

import (
	"sort"

	"github.com/statelens/statelens/app/dataset"
	"github.com/statelens/statelens/app/leaning"
	"github.com/statelens/statelens/app/states"
)

// DefaultSourceMinCount excludes statistically thin sources from
// rank-sensitive displays.
const DefaultSourceMinCount = 2

// StateAggregate is the per-state view for geographic rendering. Every row
// carries full weight: an article mentioning N states counts once in each of
// the N state aggregates.
type StateAggregate struct {
	State       string  `json:"state"`
	Code        string  `json:"code"` // 2-letter code, empty when unmapped; consumers must handle it
	MeanLeaning float64 `json:"mean_leaning"`
	// NormalizedMean rescales the mean from [-10, 10] to [-1, 1], the scale
	// map consumers render with. This is the single normalization point for
	// the whole system.
	NormalizedMean float64 `json:"normalized_mean"`
	Count          int     `json:"count"`
}

// SourceAggregate is the per-publisher view.
type SourceAggregate struct {
	Source      string  `json:"source"`
	MeanLeaning float64 `json:"mean_leaning"`
	Count       int     `json:"count"`
}

type bucket struct {
	sum   float64
	count int
}

// ByState groups the rows by state and computes the mean leaning and row
// count per state, sorted by state name.
func ByState(rows []dataset.Row) []StateAggregate {
	buckets := make(map[string]*bucket)
	for _, row := range rows {
		b, ok := buckets[row.State]
		if !ok {
			b = &bucket{}
			buckets[row.State] = b
		}
		b.sum += row.PoliticalLeaning
		b.count++
	}

	result := make([]StateAggregate, 0, len(buckets))
	for state, b := range buckets {
		mean := b.sum / float64(b.count)
		code, _ := states.Abbreviation(state)
		result = append(result, StateAggregate{
			State:          state,
			Code:           code,
			MeanLeaning:    mean,
			NormalizedMean: normalize(mean),
			Count:          b.count,
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].State < result[j].State })
	return result
}

// BySource groups the rows by source, excluding sources with fewer than
// minCount rows. A non-positive minCount selects the default.
func BySource(rows []dataset.Row, minCount int) []SourceAggregate {
	if minCount <= 0 {
		minCount = DefaultSourceMinCount
	}

	buckets := make(map[string]*bucket)
	for _, row := range rows {
		b, ok := buckets[row.Source]
		if !ok {
			b = &bucket{}
			buckets[row.Source] = b
		}
		b.sum += row.PoliticalLeaning
		b.count++
	}

	result := make([]SourceAggregate, 0, len(buckets))
	for source, b := range buckets {
		if b.count < minCount {
			continue
		}
		result = append(result, SourceAggregate{
			Source:      source,
			MeanLeaning: b.sum / float64(b.count),
			Count:       b.count,
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Source < result[j].Source })
	return result
}

func normalize(mean float64) float64 {
	n := mean / leaning.ScaleBound
	if n > 1 {
		return 1
	}
	if n < -1 {
		return -1
	}
	return n
}
