package lottie

import (
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

// Client fetches decorative animation assets. The animations are purely
// cosmetic, so every failure mode degrades to a nil document instead of an
// error the caller would have to handle.
type Client struct {
	client *resty.Client
}

func New(timeout time.Duration) *Client {
	return &Client{
		client: resty.New().SetTimeout(timeout),
	}
}

// Fetch returns the animation document at url, or nil when the asset can not
// be fetched or is not valid JSON.
func (c *Client) Fetch(url string) json.RawMessage {
	resp, err := c.client.R().Get(url)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": "lottie",
			"url":    url,
			"error":  err,
		}).Debug("fail to fetch animation asset")
		return nil
	}

	if resp.IsError() {
		return nil
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil
	}

	return json.RawMessage(body)
}
