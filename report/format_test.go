package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulseboard/feedback-api/schema"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestRound2(t *testing.T) {
	// ties round to the even neighbor
	assert.Equal(t, 7.12, Round2(7.125))
	assert.Equal(t, 7.38, Round2(7.375))
	assert.Equal(t, 7.0, Round2(7.005))
	assert.Equal(t, 2.33, Round2(7.0/3.0))
	assert.Equal(t, -0.33, Round2(-1.0/3.0))
	assert.Equal(t, 0.0, Round2(0))
}

func TestFormatMetrics(t *testing.T) {
	metrics := &schema.AggregateMetrics{
		AvgUsability:     floatPtr(7.125),
		AvgPerformance:   floatPtr(6.0),
		AvgUI:            floatPtr(22.0 / 3.0),
		AvgDocumentation: floatPtr(5.375),
		AvgSentiment:     floatPtr(1.0 / 3.0),
		TotalFeedback:    3,
	}

	display, err := FormatMetrics(metrics)
	assert.NoError(t, err)
	assert.Equal(t, 7.12, display.AvgUsability)
	assert.Equal(t, 6.0, display.AvgPerformance)
	assert.Equal(t, 7.33, display.AvgUI)
	assert.Equal(t, 5.38, display.AvgDocumentation)
	assert.Equal(t, 0.33, display.AvgSentiment)
	assert.Equal(t, int64(3), display.TotalFeedback)
}

func TestFormatMetricsMissingField(t *testing.T) {
	metrics := &schema.AggregateMetrics{
		AvgUsability:     floatPtr(7.0),
		AvgPerformance:   floatPtr(6.0),
		AvgUI:            floatPtr(8.0),
		AvgDocumentation: floatPtr(5.0),
		TotalFeedback:    1,
	}

	display, err := FormatMetrics(metrics)
	assert.Nil(t, display)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "avg_sentiment")
}

func TestFormatMetricsNil(t *testing.T) {
	display, err := FormatMetrics(nil)
	assert.Nil(t, display)
	assert.ErrorIs(t, err, ErrMissingField)
}
