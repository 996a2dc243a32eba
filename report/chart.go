package report

import (
	"fmt"

	"github.com/pulseboard/feedback-api/schema"
)

// ChartPoint is one point of a line chart series. The renderer consumes
// these as-is; no chart is drawn on this side of the boundary.
type ChartPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// RadarSeries carries the four rating categories for the radar chart.
// Values stay unrounded; rounding is a display-metric concern.
type RadarSeries struct {
	Categories []string  `json:"categories"`
	Values     []float64 `json:"values"`
}

var radarCategories = []string{"Usability", "Performance", "UI", "Documentation"}

// TrendSeries turns daily trend points into a sentiment-over-time series.
func TrendSeries(points []schema.TrendPoint) []ChartPoint {
	series := make([]ChartPoint, 0, len(points))
	for _, point := range points {
		series = append(series, ChartPoint{
			X: point.Day,
			Y: point.AvgSentiment,
		})
	}

	return series
}

// RatingsRadar shapes the four rating averages for the radar chart.
func RatingsRadar(metrics *schema.AggregateMetrics) (RadarSeries, error) {
	if metrics == nil {
		return RadarSeries{}, fmt.Errorf("%w: metrics", ErrMissingField)
	}

	values := []*float64{
		metrics.AvgUsability,
		metrics.AvgPerformance,
		metrics.AvgUI,
		metrics.AvgDocumentation,
	}

	series := RadarSeries{
		Categories: radarCategories,
		Values:     make([]float64, 0, len(values)),
	}
	for idx, value := range values {
		if value == nil {
			return RadarSeries{}, fmt.Errorf("%w: %s", ErrMissingField, radarCategories[idx])
		}
		series.Values = append(series.Values, *value)
	}

	return series, nil
}
