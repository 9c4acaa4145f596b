package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"com.hawanagroup.socialbridge/internal/model"
)

type fakeMessageSender struct {
	sent []model.OutboundMessage
}

func (f *fakeMessageSender) Send(ctx context.Context, recipientID, body string, sector model.Sector) (string, error) {
	f.sent = append(f.sent, model.OutboundMessage{RecipientID: recipientID, Sector: sector, Body: body})
	return "wamid.facade", nil
}

type fakeFacadeRecorder struct {
	records []model.InteractionRecord
}

func (f *fakeFacadeRecorder) Record(record *model.InteractionRecord) error {
	f.records = append(f.records, *record)
	return nil
}

func TestSendMessage(t *testing.T) {
	assert := assert.New(t)
	server := echo.New()

	post := func(sender MessageSender, recorder Recorder, body string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := server.NewContext(req, rec)
		return rec, SendMessage(sender, recorder)(c)
	}

	t.Run("sends and records", func(t *testing.T) {
		sender := &fakeMessageSender{}
		recorder := &fakeFacadeRecorder{}
		rec, err := post(sender, recorder, `{"to":"15550000001","body":"your order is ready","sector":"hospitality"}`)
		assert.Nil(err)
		assert.Equal(http.StatusOK, rec.Code)

		result := model.SendMessageResult{}
		assert.Nil(json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal("wamid.facade", result.MessageID)
		assert.Equal(model.SectorHospitality, result.Sector)
		assert.Equal("sent", result.Status)

		assert.Len(sender.sent, 1)
		assert.Len(recorder.records, 1)
		assert.Equal(model.DirectionOutbound, recorder.records[0].Direction)
	})

	t.Run("unknown sector yields 400", func(t *testing.T) {
		sender := &fakeMessageSender{}
		_, err := post(sender, &fakeFacadeRecorder{}, `{"to":"15550000001","body":"hi","sector":"aerospace"}`)
		httpError, ok := err.(*echo.HTTPError)
		assert.True(ok)
		assert.Equal(http.StatusBadRequest, httpError.Code)
		assert.Empty(sender.sent)
	})

	t.Run("missing recipient yields 400", func(t *testing.T) {
		sender := &fakeMessageSender{}
		_, err := post(sender, &fakeFacadeRecorder{}, `{"body":"hi","sector":"education"}`)
		httpError, ok := err.(*echo.HTTPError)
		assert.True(ok)
		assert.Equal(http.StatusBadRequest, httpError.Code)
		assert.Empty(sender.sent)
	})
}

type fakePostPublisher struct{}

func (fakePostPublisher) CreatePost(ctx context.Context, params *model.CreatePostParams, sector model.Sector) (*model.PostResult, error) {
	return &model.PostResult{PostID: "98765_1", Sector: sector, Status: "published"}, nil
}

type fakeMediaPublisher struct{}

func (fakeMediaPublisher) PublishMedia(ctx context.Context, params *model.PublishMediaParams, sector model.Sector) (*model.MediaResult, error) {
	return &model.MediaResult{MediaID: "media-1", Sector: sector, Status: "published"}, nil
}

type fakeEventTracker struct{}

func (fakeEventTracker) TrackEvent(ctx context.Context, params *model.TrackEventParams, sector model.Sector) (*model.EventResult, error) {
	return &model.EventResult{EventsReceived: 1, TraceID: "trace-1", Sector: sector}, nil
}

func postJSON(server *echo.Echo, target, body string, handler echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, handler(server.NewContext(req, rec))
}

func TestCreatePost(t *testing.T) {
	assert := assert.New(t)
	server := echo.New()

	t.Run("tags the result with the requested sector", func(t *testing.T) {
		rec, err := postJSON(server, "/api/posts",
			`{"message":"Open day this Saturday","sector":"education"}`,
			CreatePost(fakePostPublisher{}))
		assert.Nil(err)
		assert.Equal(http.StatusOK, rec.Code)

		result := model.PostResult{}
		assert.Nil(json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal("98765_1", result.PostID)
		assert.Equal(model.SectorEducation, result.Sector)
	})

	t.Run("unknown sector yields 400", func(t *testing.T) {
		_, err := postJSON(server, "/api/posts",
			`{"message":"hello","sector":"aerospace"}`,
			CreatePost(fakePostPublisher{}))
		httpError, ok := err.(*echo.HTTPError)
		assert.True(ok)
		assert.Equal(http.StatusBadRequest, httpError.Code)
	})

	t.Run("missing message yields 400", func(t *testing.T) {
		_, err := postJSON(server, "/api/posts",
			`{"sector":"education"}`,
			CreatePost(fakePostPublisher{}))
		httpError, ok := err.(*echo.HTTPError)
		assert.True(ok)
		assert.Equal(http.StatusBadRequest, httpError.Code)
	})
}

func TestPublishMedia(t *testing.T) {
	assert := assert.New(t)
	server := echo.New()

	t.Run("tags the result with the requested sector", func(t *testing.T) {
		rec, err := postJSON(server, "/api/media",
			`{"imageUrl":"https://hawanagroup.example/menu.jpg","sector":"hospitality"}`,
			PublishMedia(fakeMediaPublisher{}))
		assert.Nil(err)
		assert.Equal(http.StatusOK, rec.Code)

		result := model.MediaResult{}
		assert.Nil(json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal("media-1", result.MediaID)
		assert.Equal(model.SectorHospitality, result.Sector)
	})

	t.Run("missing image yields 400", func(t *testing.T) {
		_, err := postJSON(server, "/api/media",
			`{"sector":"hospitality"}`,
			PublishMedia(fakeMediaPublisher{}))
		httpError, ok := err.(*echo.HTTPError)
		assert.True(ok)
		assert.Equal(http.StatusBadRequest, httpError.Code)
	})
}

func TestTrackConversion(t *testing.T) {
	assert := assert.New(t)
	server := echo.New()

	t.Run("tags the result with the requested sector", func(t *testing.T) {
		rec, err := postJSON(server, "/api/conversions",
			`{"eventName":"Purchase","value":120,"currency":"AED","sector":"investment"}`,
			TrackConversion(fakeEventTracker{}))
		assert.Nil(err)
		assert.Equal(http.StatusOK, rec.Code)

		result := model.EventResult{}
		assert.Nil(json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(1, result.EventsReceived)
		assert.Equal(model.SectorInvestment, result.Sector)
	})

	t.Run("missing event name yields 400", func(t *testing.T) {
		_, err := postJSON(server, "/api/conversions",
			`{"sector":"investment"}`,
			TrackConversion(fakeEventTracker{}))
		httpError, ok := err.(*echo.HTTPError)
		assert.True(ok)
		assert.Equal(http.StatusBadRequest, httpError.Code)
	})
}

type fakeAnalytics struct{}

func (fakeAnalytics) Snapshot(sector model.Sector) *model.AnalyticsSnapshot {
	return &model.AnalyticsSnapshot{Sector: sector, Followers: 42}
}

func TestGetAnalytics(t *testing.T) {
	assert := assert.New(t)
	server := echo.New()

	get := func(sector string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodGet, "/api/analytics/"+sector, nil)
		rec := httptest.NewRecorder()
		c := server.NewContext(req, rec)
		c.SetParamNames("sector")
		c.SetParamValues(sector)
		return rec, GetAnalytics(fakeAnalytics{})(c)
	}

	t.Run("known sector", func(t *testing.T) {
		rec, err := get("investment")
		assert.Nil(err)
		assert.Equal(http.StatusOK, rec.Code)

		snapshot := model.AnalyticsSnapshot{}
		assert.Nil(json.Unmarshal(rec.Body.Bytes(), &snapshot))
		assert.Equal(model.SectorInvestment, snapshot.Sector)
		assert.Equal(42, snapshot.Followers)
	})

	t.Run("unknown sector yields 400", func(t *testing.T) {
		_, err := get("aerospace")
		httpError, ok := err.(*echo.HTTPError)
		assert.True(ok)
		assert.Equal(http.StatusBadRequest, httpError.Code)
	})
}
