// Package social wraps the social-posting platform's page feed API.
package social

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

const postTimeout = 10 * time.Second

type service struct {
	config *boot.Config
	client *http.Client
	now    func() time.Time
}

func New(config *boot.Config) *service {
	return &service{
		config: config,
		client: &http.Client{Timeout: postTimeout},
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) CreatePost(ctx context.Context, params *model.CreatePostParams, sector model.Sector) (*model.PostResult, error) {
	if s.config.Social.Token == "" {
		result := &model.PostResult{
			PostID:      fmt.Sprintf("%s_%s", s.config.Social.PageID, model.CreateID()),
			Sector:      sector,
			Status:      "published",
			PublishedAt: s.now(),
		}
		log.Infof("social sample mode: post %s [%s]", result.PostID, sector)
		return result, nil
	}

	form := url.Values{}
	form.Set("message", params.Message)
	if params.LinkURL != "" {
		form.Set("link", params.LinkURL)
	}
	form.Set("access_token", s.config.Social.Token)

	endpoint := fmt.Sprintf("%s/%s/feed", s.config.Social.APIBase, s.config.Social.PageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building post request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling social API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("social API returned %d: %s", resp.StatusCode, detail)
	}

	body := struct {
		ID string `json:"id"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding post response: %w", err)
	}

	return &model.PostResult{
		PostID:      body.ID,
		Sector:      sector,
		Status:      "published",
		PublishedAt: s.now(),
	}, nil
}
