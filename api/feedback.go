package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/pulseboard/feedback-api/schema"
)

// createFeedback handles a form submission: validate, score the text, merge
// ratings with the sentiment triple, persist. The scorer never fails a
// submission; at worst the stored sentiment is the neutral fallback.
func (s *Server) createFeedback(c *gin.Context) {
	var params struct {
		UserRole            string `json:"user_role" binding:"required"`
		ExperienceLevel     string `json:"experience_level" binding:"required"`
		FeedbackText        string `json:"feedback_text"`
		UsabilityRating     int    `json:"usability_rating" binding:"required,gte=1,lte=10"`
		PerformanceRating   int    `json:"performance_rating" binding:"required,gte=1,lte=10"`
		UIRating            int    `json:"ui_rating" binding:"required,gte=1,lte=10"`
		DocumentationRating int    `json:"documentation_rating" binding:"required,gte=1,lte=10"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !schema.IsValidUserRole(params.UserRole) || !schema.IsValidExperienceLevel(params.ExperienceLevel) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if strings.TrimSpace(params.FeedbackText) == "" {
		abortWithEncoding(c, http.StatusBadRequest, localized(c, errorEmptyFeedback, "feedback.empty_text"))
		return
	}

	result := s.analyzer.Analyze(c.Request.Context(), params.FeedbackText)
	if result.InferenceFailed {
		log.WithFields(log.Fields{
			"prefix": "api",
			"label":  result.Label,
		}).Warn("storing fallback sentiment for submission")
	}

	id, err := s.mongoStore.CreateFeedback(schema.Feedback{
		UserRole:            params.UserRole,
		ExperienceLevel:     params.ExperienceLevel,
		FeedbackText:        params.FeedbackText,
		UsabilityRating:     params.UsabilityRating,
		PerformanceRating:   params.PerformanceRating,
		UIRating:            params.UIRating,
		DocumentationRating: params.DocumentationRating,
		SentimentLabel:      result.Label,
		SentimentScore:      result.Score,
		SentimentConfidence: result.Confidence,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"message": localizedMessage(c, "feedback.thanks", "Thank you for your valuable feedback!"),
	})
}

// listFeedback returns every stored submission in insertion order.
func (s *Server) listFeedback(c *gin.Context) {
	feedbacks, err := s.mongoStore.ListFeedback()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedbacks": feedbacks})
}
