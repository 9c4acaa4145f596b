// Package conversion forwards conversion events to the tracking
// platform's server-side events API.
package conversion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/gommon/log"

	"com.hawanagroup.socialbridge/internal/boot"
	"com.hawanagroup.socialbridge/internal/model"
)

const trackTimeout = 10 * time.Second

type event struct {
	EventName    string     `json:"event_name"`
	EventTime    int64      `json:"event_time"`
	ActionSource string     `json:"action_source"`
	CustomData   customData `json:"custom_data,omitempty"`
}

type customData struct {
	Value    float64 `json:"value,omitempty"`
	Currency string  `json:"currency,omitempty"`
	Sector   string  `json:"sector,omitempty"`
}

type service struct {
	config *boot.Config
	client *http.Client
	now    func() time.Time
}

func New(config *boot.Config) *service {
	return &service{
		config: config,
		client: &http.Client{Timeout: trackTimeout},
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) TrackEvent(ctx context.Context, params *model.TrackEventParams, sector model.Sector) (*model.EventResult, error) {
	if s.config.Pixel.Token == "" {
		result := &model.EventResult{
			EventsReceived: 1,
			TraceID:        model.CreateID(),
			Sector:         sector,
		}
		log.Infof("conversion sample mode: event %q trace %s [%s]", params.EventName, result.TraceID, sector)
		return result, nil
	}

	payload, err := json.Marshal(map[string]interface{}{
		"data": []event{{
			EventName:    params.EventName,
			EventTime:    s.now().Unix(),
			ActionSource: "chat",
			CustomData: customData{
				Value:    params.Value,
				Currency: params.Currency,
				Sector:   string(sector),
			},
		}},
		"access_token": s.config.Pixel.Token,
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling event payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/events", s.config.Pixel.APIBase, s.config.Pixel.PixelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building event request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling conversions API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("conversions API returned %d: %s", resp.StatusCode, detail)
	}

	body := struct {
		EventsReceived int    `json:"events_received"`
		TraceID        string `json:"fbtrace_id"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding event response: %w", err)
	}

	return &model.EventResult{
		EventsReceived: body.EventsReceived,
		TraceID:        body.TraceID,
		Sector:         sector,
	}, nil
}
