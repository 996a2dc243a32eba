package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pulseboard/feedback-api/external/lottie"
	"github.com/pulseboard/feedback-api/schema"
	"github.com/pulseboard/feedback-api/sentiment"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// classifierFunc adapts a function to the sentiment.Classifier interface.
type classifierFunc func(ctx context.Context, text string) (sentiment.Classification, error)

func (f classifierFunc) Classify(ctx context.Context, text string) (sentiment.Classification, error) {
	return f(ctx, text)
}

var positiveClassifier = classifierFunc(func(_ context.Context, _ string) (sentiment.Classification, error) {
	return sentiment.Classification{Label: "POSITIVE", Confidence: 0.98}, nil
})

var testLabelScores = map[string]float64{
	"POSITIVE": 1.0,
	"NEGATIVE": -1.0,
	"NEUTRAL":  0.0,
}

// stubStore implements store.MongoStore in memory for handler tests.
type stubStore struct {
	feedbacks []schema.Feedback
	trend     []schema.TrendPoint
	listErr   error
}

func (s *stubStore) CreateFeedback(feedback schema.Feedback) (string, error) {
	feedback.ID = primitive.NewObjectID()
	feedback.CreatedAt = time.Now().UTC()
	s.feedbacks = append(s.feedbacks, feedback)
	return feedback.ID.Hex(), nil
}

func (s *stubStore) ListFeedback() ([]schema.Feedback, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.feedbacks, nil
}

func (s *stubStore) ListRecentFeedback(limit int64) ([]schema.Feedback, error) {
	recent := make([]schema.Feedback, 0, limit)
	for idx := len(s.feedbacks) - 1; idx >= 0 && int64(len(recent)) < limit; idx-- {
		recent = append(recent, s.feedbacks[idx])
	}
	return recent, nil
}

func (s *stubStore) GetFeedbackMetrics() (*schema.AggregateMetrics, error) {
	count := len(s.feedbacks)
	if count == 0 {
		return nil, nil
	}

	var usability, performance, ui, documentation, sentimentSum float64
	for _, f := range s.feedbacks {
		usability += float64(f.UsabilityRating)
		performance += float64(f.PerformanceRating)
		ui += float64(f.UIRating)
		documentation += float64(f.DocumentationRating)
		sentimentSum += f.SentimentScore
	}

	avg := func(sum float64) *float64 {
		v := sum / float64(count)
		return &v
	}

	return &schema.AggregateMetrics{
		AvgUsability:     avg(usability),
		AvgPerformance:   avg(performance),
		AvgUI:            avg(ui),
		AvgDocumentation: avg(documentation),
		AvgSentiment:     avg(sentimentSum),
		TotalFeedback:    int64(count),
	}, nil
}

func (s *stubStore) GetFeedbackTrend() ([]schema.TrendPoint, error) {
	return s.trend, nil
}

func (s *stubStore) EnsureAdminAccount(_ string) error {
	return nil
}

func (s *stubStore) VerifyAccount(username, password string) (bool, error) {
	return username == "admin" && password == "admin", nil
}

func (s *stubStore) Ping() error {
	return nil
}

func newTestServer(classifier sentiment.Classifier) (*Server, *stubStore, *gin.Engine) {
	mongoStore := &stubStore{}
	analyzer := sentiment.NewAnalyzer(classifier, testLabelScores, "NEUTRAL")
	server := NewServer(mongoStore, analyzer, lottie.New(time.Second), false)
	return server, mongoStore, server.setupRouter()
}

func performJSON(router *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginAsAdmin(t *testing.T, router *gin.Engine) *http.Cookie {
	w := performJSON(router, "POST", "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "admin",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}

	t.Fatal("login did not set a session cookie")
	return nil
}

func TestLogin(t *testing.T) {
	_, _, router := newTestServer(positiveClassifier)

	cookie := loginAsAdmin(t, router)
	assert.NotEmpty(t, cookie.Value)
}

func TestLoginWrongPassword(t *testing.T) {
	_, _, router := newTestServer(positiveClassifier)

	w := performJSON(router, "POST", "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginUnknownUser(t *testing.T) {
	_, _, router := newTestServer(positiveClassifier)

	w := performJSON(router, "POST", "/api/auth/login", map[string]string{
		"username": "nouser",
		"password": "x",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	_, _, router := newTestServer(positiveClassifier)

	cookie := loginAsAdmin(t, router)

	w := performJSON(router, "GET", "/api/dashboard", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, "POST", "/api/auth/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	// the session is gone after logout
	w = performJSON(router, "GET", "/api/dashboard", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIndependentSessions(t *testing.T) {
	_, _, router := newTestServer(positiveClassifier)

	first := loginAsAdmin(t, router)
	second := loginAsAdmin(t, router)
	assert.NotEqual(t, first.Value, second.Value)

	w := performJSON(router, "POST", "/api/auth/logout", nil, first)
	assert.Equal(t, http.StatusOK, w.Code)

	// logging out one session leaves the other untouched
	w = performJSON(router, "GET", "/api/dashboard", nil, second)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthz(t *testing.T) {
	_, _, router := newTestServer(positiveClassifier)

	w := performJSON(router, "GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFetchAnimationUnknownName(t *testing.T) {
	_, _, router := newTestServer(positiveClassifier)

	w := performJSON(router, "GET", "/api/assets/animation?name=unknown", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
