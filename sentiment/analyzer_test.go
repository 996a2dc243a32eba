package sentiment_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pulseboard/feedback-api/mocks"
	"github.com/pulseboard/feedback-api/sentiment"
)

var testLabelScores = map[string]float64{
	"POSITIVE": 1.0,
	"NEGATIVE": -1.0,
	"NEUTRAL":  0.0,
}

func TestAnalyzePositive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Classify(gomock.Any(), "Great tool!").
		Return(sentiment.Classification{Label: "POSITIVE", Confidence: 0.97}, nil)

	analyzer := sentiment.NewAnalyzer(classifier, testLabelScores, "NEUTRAL")
	result := analyzer.Analyze(context.Background(), "Great tool!")

	assert.Equal(t, "POSITIVE", result.Label)
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, 0.97, result.Confidence)
	assert.False(t, result.InferenceFailed)
}

func TestAnalyzeNegative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Any()).
		Return(sentiment.Classification{Label: "NEGATIVE", Confidence: 0.88}, nil)

	analyzer := sentiment.NewAnalyzer(classifier, testLabelScores, "NEUTRAL")
	result := analyzer.Analyze(context.Background(), "it keeps crashing")

	assert.Equal(t, -1.0, result.Score)
	assert.False(t, result.InferenceFailed)
}

func TestAnalyzeUnrecognizedLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Any()).
		Return(sentiment.Classification{Label: "LABEL_2", Confidence: 0.75}, nil)

	analyzer := sentiment.NewAnalyzer(classifier, testLabelScores, "NEUTRAL")
	result := analyzer.Analyze(context.Background(), "meh")

	// labels outside the mapping table score as neutral, not as an error
	assert.Equal(t, "LABEL_2", result.Label)
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 0.75, result.Confidence)
	assert.False(t, result.InferenceFailed)
}

func TestAnalyzeClassifierFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Any()).
		Return(sentiment.Classification{}, fmt.Errorf("model unavailable"))

	analyzer := sentiment.NewAnalyzer(classifier, testLabelScores, "NEUTRAL")
	result := analyzer.Analyze(context.Background(), "anything")

	assert.Equal(t, sentiment.Result{
		Label:           "NEUTRAL",
		Score:           0.0,
		Confidence:      1.0,
		InferenceFailed: true,
	}, result)
}

func TestAnalyzeAlternateVocabulary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Any()).
		Return(sentiment.Classification{Label: "NEG", Confidence: 0.9}, nil)

	// a second deployment in this lineage used POS/NEG/NEU
	analyzer := sentiment.NewAnalyzer(classifier, map[string]float64{
		"POS": 1.0,
		"NEG": -1.0,
		"NEU": 0.0,
	}, "NEU")
	result := analyzer.Analyze(context.Background(), "not great")

	assert.Equal(t, -1.0, result.Score)
}

func TestAnalyzeTruncatesLongInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mocks.NewMockClassifier(ctrl)
	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Len(2000)).
		Return(sentiment.Classification{Label: "POSITIVE", Confidence: 0.8}, nil)

	analyzer := sentiment.NewAnalyzer(classifier, testLabelScores, "NEUTRAL")
	result := analyzer.Analyze(context.Background(), strings.Repeat("a", 5000))

	assert.Equal(t, 1.0, result.Score)
}
