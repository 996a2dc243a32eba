package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulseboard/feedback-api/report"
)

const recentFeedbackCount = 5

// dashboard assembles everything the admin view renders: display metrics,
// the daily sentiment trend series, the ratings radar and the most recent
// submissions. An empty collection is a valid state, answered with a
// no-data payload rather than an error.
func (s *Server) dashboard(c *gin.Context) {
	metrics, err := s.mongoStore.GetFeedbackMetrics()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if metrics == nil {
		c.JSON(http.StatusOK, gin.H{
			"metrics": nil,
			"message": localizedMessage(c, "dashboard.no_data", "No feedback data available yet."),
		})
		return
	}

	display, err := report.FormatMetrics(metrics)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	radar, err := report.RatingsRadar(metrics)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	points, err := s.mongoStore.GetFeedbackTrend()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	recent, err := s.mongoStore.ListRecentFeedback(recentFeedbackCount)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"metrics": display,
		"trend":   report.TrendSeries(points),
		"radar":   radar,
		"recent":  recent,
	})
}
