package report

import (
	"fmt"
	"math"

	"github.com/pulseboard/feedback-api/schema"
)

var ErrMissingField = fmt.Errorf("aggregate metrics field missing")

// Round2 rounds to two decimal places with round-half-to-even semantics.
func Round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

// FormatMetrics shapes aggregate metrics for display: the five averages are
// rounded to two decimal places, total_feedback passes through untouched.
// A nil average means the aggregation did not produce that field, which is
// reported as an error instead of guessing a value.
func FormatMetrics(metrics *schema.AggregateMetrics) (*schema.DisplayMetrics, error) {
	if metrics == nil {
		return nil, fmt.Errorf("%w: metrics", ErrMissingField)
	}

	fields := map[string]*float64{
		"avg_usability":     metrics.AvgUsability,
		"avg_performance":   metrics.AvgPerformance,
		"avg_ui":            metrics.AvgUI,
		"avg_documentation": metrics.AvgDocumentation,
		"avg_sentiment":     metrics.AvgSentiment,
	}
	for name, value := range fields {
		if value == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}

	return &schema.DisplayMetrics{
		AvgUsability:     Round2(*metrics.AvgUsability),
		AvgPerformance:   Round2(*metrics.AvgPerformance),
		AvgUI:            Round2(*metrics.AvgUI),
		AvgDocumentation: Round2(*metrics.AvgDocumentation),
		AvgSentiment:     Round2(*metrics.AvgSentiment),
		TotalFeedback:    metrics.TotalFeedback,
	}, nil
}
