package inference

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/pulseboard/feedback-api/sentiment"
)

// Client calls a hosted text-classification model. The endpoint speaks the
// inference-API convention: POST {"inputs": text} and a nested candidate
// list [[{"label": ..., "score": ...}, ...]] back.
type Client struct {
	client *resty.Client
}

type candidate struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func New(endpoint, token string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	if token != "" {
		client.SetAuthToken(token)
	}

	return &Client{client: client}
}

// Classify submits one piece of text and returns the top-confidence label.
func (c *Client) Classify(ctx context.Context, text string) (sentiment.Classification, error) {
	var candidates [][]candidate

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"inputs": text}).
		SetResult(&candidates).
		Post("")
	if err != nil {
		return sentiment.Classification{}, err
	}

	if resp.IsError() {
		log.WithFields(log.Fields{
			"prefix": "inference",
			"status": resp.StatusCode(),
			"resp":   resp.String(),
		}).Error("error response from inference api")
		return sentiment.Classification{}, fmt.Errorf("inference api returned status %d", resp.StatusCode())
	}

	if len(candidates) == 0 || len(candidates[0]) == 0 {
		return sentiment.Classification{}, fmt.Errorf("inference api returned no candidates")
	}

	top := candidates[0][0]
	for _, c := range candidates[0][1:] {
		if c.Score > top.Score {
			top = c
		}
	}

	return sentiment.Classification{
		Label:      top.Label,
		Confidence: top.Score,
	}, nil
}
