package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"com.hawanagroup.socialbridge/internal/boot"
	"com.hawanagroup.socialbridge/internal/model"
	"com.hawanagroup.socialbridge/internal/verify"
)

const signatureHeader = "X-Hub-Signature-256"

type Dispatcher interface {
	Handle(ctx context.Context, envelope *model.Envelope) error
}

// VerifyWebhook answers the provider's subscribe handshake. The challenge
// is echoed back only when the pre-shared token matches.
func VerifyWebhook(config *boot.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, ok := verify.Challenge(
			c.QueryParam("hub.mode"),
			c.QueryParam("hub.verify_token"),
			c.QueryParam("hub.challenge"),
			config.Webhooks.VerifyToken,
		)
		if !ok {
			return c.NoContent(http.StatusForbidden)
		}
		return c.String(http.StatusOK, body)
	}
}

// ReceiveMessaging takes a messaging webhook delivery. Providers retry on
// anything but a fast 2xx, so every outcome past the discriminator check
// acknowledges with 200 "OK" regardless of downstream processing.
func ReceiveMessaging(dispatcher Dispatcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		envelope := &model.Envelope{}
		if err := c.Bind(envelope); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed envelope")
		}

		if err := dispatcher.Handle(c.Request().Context(), envelope); err != nil {
			if errors.Is(err, model.ErrorUnknownObject) {
				return c.NoContent(http.StatusNotFound)
			}
			return fmt.Errorf("handling envelope: %w", err)
		}

		return c.String(http.StatusOK, "OK")
	}
}

// ReceiveEvents acknowledges deliveries from the social, media and pixel
// platforms after checking the payload signature against the app secret.
func ReceiveEvents(config *boot.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		body := c.Request().Body
		defer body.Close()

		raw, err := io.ReadAll(body)
		if err != nil {
			return fmt.Errorf("reading request body: %w", err)
		}

		if !verify.Signature(config.Webhooks.AppSecret, raw, c.Request().Header.Get(signatureHeader)) {
			return c.NoContent(http.StatusUnauthorized)
		}

		log.Infof("acknowledged %s webhook delivery (%d bytes)", c.Param("provider"), len(raw))
		return c.String(http.StatusOK, "OK")
	}
}
