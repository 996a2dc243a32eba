package api

import (
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/pulseboard/feedback-api/utils"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer     = errorResponse{1000, "internal server error"}
	errorInvalidParameters  = errorResponse{1001, "invalid parameters"}
	errorAuthRequired       = errorResponse{1100, "authentication required"}
	errorInvalidCredentials = errorResponse{1101, "invalid credentials"}
	errorEmptyFeedback      = errorResponse{1200, "feedback text must not be empty"}
)

func abortWithEncoding(c *gin.Context, code int, resp errorResponse, errors ...error) {
	for _, err := range errors {
		log.WithFields(log.Fields{
			"prefix": "api",
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err,
		}).Error("request aborted")
		c.Error(err)
	}

	c.AbortWithStatusJSON(code, gin.H{"error": resp})
}

// localized replaces the canned message of an error response with its
// translation for the requester's Accept-Language. Unknown message ids fall
// back to the canned message.
func localized(c *gin.Context, resp errorResponse, messageID string) errorResponse {
	localizer := utils.NewLocalizer(c.GetHeader("Accept-Language"))
	message, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return resp
	}

	resp.Message = message
	return resp
}

// localizedMessage resolves a message id for the requester's language,
// falling back to the canned English message when the id can not be
// resolved. The id itself is internal and never shown to users.
func localizedMessage(c *gin.Context, messageID, fallback string) string {
	localizer := utils.NewLocalizer(c.GetHeader("Accept-Language"))
	message, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return fallback
	}

	return message
}
