// Package media wraps the media-posting platform's two-step publish API:
// create a media container, then publish it.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"com.hawanagroup.socialbridge/internal/boot"
	"com.hawanagroup.socialbridge/internal/model"
)

const publishTimeout = 10 * time.Second

type service struct {
	config *boot.Config
	client *http.Client
	now    func() time.Time
}

func New(config *boot.Config) *service {
	return &service{
		config: config,
		client: &http.Client{Timeout: publishTimeout},
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) PublishMedia(ctx context.Context, params *model.PublishMediaParams, sector model.Sector) (*model.MediaResult, error) {
	if s.config.Media.Token == "" {
		result := &model.MediaResult{
			MediaID:     model.CreateID(),
			Sector:      sector,
			Status:      "published",
			PublishedAt: s.now(),
		}
		log.Infof("media sample mode: media %s [%s]", result.MediaID, sector)
		return result, nil
	}

	container, err := s.call(ctx, "media", url.Values{
		"image_url": {params.ImageURL},
		"caption":   {params.Caption},
	})
	if err != nil {
		return nil, fmt.Errorf("creating media container: %w", err)
	}

	published, err := s.call(ctx, "media_publish", url.Values{
		"creation_id": {container},
	})
	if err != nil {
		return nil, fmt.Errorf("publishing media container: %w", err)
	}

	return &model.MediaResult{
		MediaID:     published,
		Sector:      sector,
		Status:      "published",
		PublishedAt: s.now(),
	}, nil
}

func (s *service) call(ctx context.Context, edge string, form url.Values) (string, error) {
	form.Set("access_token", s.config.Media.Token)

	endpoint := fmt.Sprintf("%s/%s/%s", s.config.Media.APIBase, s.config.Media.AccountID, edge)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling media API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("media API returned %d: %s", resp.StatusCode, detail)
	}

	body := struct {
		ID string `json:"id"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	return body.ID, nil
}
