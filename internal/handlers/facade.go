package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"com.hawanagroup.socialbridge/internal/model"
)

type MessageSender interface {
	Send(ctx context.Context, recipientID, body string, sector model.Sector) (string, error)
}

type PostPublisher interface {
	CreatePost(ctx context.Context, params *model.CreatePostParams, sector model.Sector) (*model.PostResult, error)
}

type MediaPublisher interface {
	PublishMedia(ctx context.Context, params *model.PublishMediaParams, sector model.Sector) (*model.MediaResult, error)
}

type EventTracker interface {
	TrackEvent(ctx context.Context, params *model.TrackEventParams, sector model.Sector) (*model.EventResult, error)
}

type AnalyticsProvider interface {
	Snapshot(sector model.Sector) *model.AnalyticsSnapshot
}

type Recorder interface {
	Record(record *model.InteractionRecord) error
}

type InteractionReader interface {
	RecentBySender(senderID string, limit int) ([]model.InteractionRecord, error)
}

// SendMessage pushes an operator-initiated message through the messaging
// platform and records the outbound interaction.
func SendMessage(sender MessageSender, recorder Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.SendMessageParams{}
		if err := c.Bind(params); err != nil {
			return err
		}
		if params.To == "" || params.Body == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "to and body are required")
		}
		sector, err := model.ParseSector(params.Sector)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown sector")
		}

		messageID, err := sender.Send(c.Request().Context(), params.To, params.Body, sector)
		if err != nil {
			return err
		}

		if err := recorder.Record(&model.InteractionRecord{
			SenderID:  params.To,
			Sector:    sector,
			Direction: model.DirectionOutbound,
			Body:      params.Body,
			Timestamp: time.Now().UTC(),
		}); err != nil {
			log.Errorf("recording outbound interaction: %+v", err)
		}

		return c.JSON(http.StatusOK, &model.SendMessageResult{
			MessageID: messageID,
			To:        params.To,
			Sector:    sector,
			Status:    "sent",
		})
	}
}

func CreatePost(publisher PostPublisher) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.CreatePostParams{}
		if err := c.Bind(params); err != nil {
			return err
		}
		if params.Message == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "message is required")
		}
		sector, err := model.ParseSector(params.Sector)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown sector")
		}

		result, err := publisher.CreatePost(c.Request().Context(), params, sector)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, result)
	}
}

func PublishMedia(publisher MediaPublisher) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.PublishMediaParams{}
		if err := c.Bind(params); err != nil {
			return err
		}
		if params.ImageURL == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "imageUrl is required")
		}
		sector, err := model.ParseSector(params.Sector)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown sector")
		}

		result, err := publisher.PublishMedia(c.Request().Context(), params, sector)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, result)
	}
}

func TrackConversion(tracker EventTracker) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.TrackEventParams{}
		if err := c.Bind(params); err != nil {
			return err
		}
		if params.EventName == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "eventName is required")
		}
		sector, err := model.ParseSector(params.Sector)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown sector")
		}

		result, err := tracker.TrackEvent(c.Request().Context(), params, sector)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, result)
	}
}

func GetAnalytics(provider AnalyticsProvider) echo.HandlerFunc {
	return func(c echo.Context) error {
		sector, err := model.ParseSector(c.Param("sector"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown sector")
		}
		return c.JSON(http.StatusOK, provider.Snapshot(sector))
	}
}

func GetInteractions(reader InteractionReader) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := 20
		if raw := c.QueryParam("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
			}
			limit = parsed
		}

		records, err := reader.RecentBySender(c.Param("sender"), limit)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, records)
	}
}
