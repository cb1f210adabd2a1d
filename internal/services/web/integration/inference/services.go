package inference

import (
	"fmt"
	"net/http"
	"time"
)

// Model names used for logs, spans and health reporting.
const (
	ModelHeart = "heart"
	ModelBrain = "brain"
	ModelLung  = "lung"
)

// ServicesConfig holds the three model base URLs.
type ServicesConfig struct {
	HeartURL   string
	BrainURL   string
	LungURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Services bundles one client per model.
type Services struct {
	Heart *Client
	Brain *Client
	Lung  *Client
}

// NewServices builds all model clients.
func NewServices(cfg ServicesConfig) (Services, error) {
	build := func(name string, baseURL string) (*Client, error) {
		client, err := New(Config{Name: name, BaseURL: baseURL, Timeout: cfg.Timeout, HTTPClient: cfg.HTTPClient})
		if err != nil {
			return nil, fmt.Errorf("configure %s model client: %w", name, err)
		}
		return client, nil
	}
	heart, err := build(ModelHeart, cfg.HeartURL)
	if err != nil {
		return Services{}, err
	}
	brain, err := build(ModelBrain, cfg.BrainURL)
	if err != nil {
		return Services{}, err
	}
	lung, err := build(ModelLung, cfg.LungURL)
	if err != nil {
		return Services{}, err
	}
	return Services{Heart: heart, Brain: brain, Lung: lung}, nil
}
