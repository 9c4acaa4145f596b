// Package messaging is the outbound send primitive for the messaging
// platform. With no API token configured it runs in sample mode and
// fabricates provider message identifiers instead of calling out.
package messaging

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

const sendTimeout = 10 * time.Second

type sendRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

type service struct {
	config *boot.Config
	client *http.Client
}

func New(config *boot.Config) *service {
	return &service{
		config: config,
		client: &http.Client{Timeout: sendTimeout},
	}
}

// Send delivers a text message and returns the provider message ID.
func (s *service) Send(ctx context.Context, recipientID, body string, sector model.Sector) (string, error) {
	if s.config.Messaging.Token == "" {
		id := "wamid." + model.CreateID()
		log.Infof("messaging sample mode: %s to %s [%s]", id, recipientID, sector)
		return id, nil
	}

	payload, err := json.Marshal(sendRequest{
		MessagingProduct: "whatsapp",
		To:               recipientID,
		Type:             "text",
		Text:             textBody{Body: body},
	})
	if err != nil {
		return "", fmt.Errorf("marshalling send request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", s.config.Messaging.APIBase, s.config.Messaging.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.Messaging.Token)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling messaging API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("messaging API returned %d: %s", resp.StatusCode, detail)
	}

	result := sendResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding send response: %w", err)
	}
	if len(result.Messages) == 0 {
		return "", fmt.Errorf("messaging API returned no message id")
	}

	return result.Messages[0].ID, nil
}
