package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// animationAssets maps asset names to their hosted lottie documents.
var animationAssets = map[string]string{
	"feedback": "https://assets2.lottiefiles.com/packages/lf20_jcikwtux.json",
	"success":  "https://assets9.lottiefiles.com/packages/lf20_lk80fpsm.json",
}

// fetchAnimation proxies a decorative animation asset. The asset is purely
// cosmetic: when the fetch fails the response carries a null animation and
// the form renders without it.
func (s *Server) fetchAnimation(c *gin.Context) {
	url, ok := animationAssets[c.Query("name")]
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	c.JSON(http.StatusOK, gin.H{"animation": s.assets.Fetch(url)})
}
