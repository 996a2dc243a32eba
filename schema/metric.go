package schema

// AggregateMetrics is the result of a single $group pass over the whole
// feedback collection. It is recomputed on every dashboard render and never
// persisted. The averages are pointers so a missing field coming back from
// the aggregation can be told apart from a legitimate zero.
type AggregateMetrics struct {
	AvgUsability     *float64 `json:"avg_usability" bson:"avg_usability"`
	AvgPerformance   *float64 `json:"avg_performance" bson:"avg_performance"`
	AvgUI            *float64 `json:"avg_ui" bson:"avg_ui"`
	AvgDocumentation *float64 `json:"avg_documentation" bson:"avg_documentation"`
	AvgSentiment     *float64 `json:"avg_sentiment" bson:"avg_sentiment"`
	TotalFeedback    int64    `json:"total_feedback" bson:"total_feedback"`
}

// DisplayMetrics is AggregateMetrics shaped for the dashboard: five averages
// rounded to two decimal places, count passed through untouched.
type DisplayMetrics struct {
	AvgUsability     float64 `json:"avg_usability"`
	AvgPerformance   float64 `json:"avg_performance"`
	AvgUI            float64 `json:"avg_ui"`
	AvgDocumentation float64 `json:"avg_documentation"`
	AvgSentiment     float64 `json:"avg_sentiment"`
	TotalFeedback    int64   `json:"total_feedback"`
}

// TrendPoint is one calendar-day bucket of the feedback collection.
// Day keys are derived from created_at in UTC, formatted YYYY-MM-DD.
type TrendPoint struct {
	Day          string  `json:"day" bson:"_id"`
	Count        int64   `json:"count" bson:"count"`
	AvgSentiment float64 `json:"avg_sentiment" bson:"avg_sentiment"`
}
