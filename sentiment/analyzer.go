package sentiment

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// maxInputRunes caps the text handed to the classifier. The hosted model
// rejects inputs beyond its token window, so overlong feedback is truncated
// instead of failing the whole submission.
const maxInputRunes = 2000

// DefaultNeutralLabel is used when the deployment config does not name one.
const DefaultNeutralLabel = "NEUTRAL"

// Classification is what the external classifier returns: its own label
// vocabulary plus a confidence in [0,1].
type Classification struct {
	Label      string
	Confidence float64
}

// Classifier is the boundary to the pretrained text-classification model.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}

// Result is a scored piece of text. Score is a discretized polarity in
// {-1, 0, 1}, not the classifier confidence. InferenceFailed marks results
// fabricated by the fallback path so downstream consumers can tell real
// sentiment from the neutral stand-in.
type Result struct {
	Label           string  `json:"label"`
	Score           float64 `json:"score"`
	Confidence      float64 `json:"confidence"`
	InferenceFailed bool    `json:"-"`
}

// Analyzer maps free text to a sentiment Result. The label-to-score table is
// deployment configuration, not code: different model versions in this
// lineage ship incompatible vocabularies (POSITIVE/NEGATIVE/NEUTRAL vs
// POS/NEG/NEU).
type Analyzer struct {
	classifier   Classifier
	labelScores  map[string]float64
	neutralLabel string
}

func NewAnalyzer(classifier Classifier, labelScores map[string]float64, neutralLabel string) *Analyzer {
	if neutralLabel == "" {
		neutralLabel = DefaultNeutralLabel
	}

	return &Analyzer{
		classifier:   classifier,
		labelScores:  labelScores,
		neutralLabel: neutralLabel,
	}
}

// Analyze scores one piece of text. It never returns an error: any failure
// at the classifier boundary degrades to a neutral result so a submission
// can always be stored.
func (a *Analyzer) Analyze(ctx context.Context, text string) Result {
	if runes := []rune(text); len(runes) > maxInputRunes {
		text = string(runes[:maxInputRunes])
	}

	classification, err := a.classifier.Classify(ctx, text)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": "sentiment",
			"error":  err,
		}).Warn("classifier failed, falling back to neutral")

		return Result{
			Label:           a.neutralLabel,
			Score:           0.0,
			Confidence:      1.0,
			InferenceFailed: true,
		}
	}

	// unrecognized labels score as neutral rather than erroring
	score := a.labelScores[classification.Label]

	return Result{
		Label:      classification.Label,
		Score:      score,
		Confidence: classification.Confidence,
	}
}
