package v1_test

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	v1 "github.com/fairshare-aid/backend/internal/controllers/v1"
	"github.com/fairshare-aid/backend/internal/models"
	"github.com/fairshare-aid/backend/internal/notify"
	"github.com/fairshare-aid/backend/internal/router"
	"github.com/fairshare-aid/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) setQuantity(material v1.MaterialResponse, quantity int64) {
	r := test.Request(suite.T(), http.MethodPatch, material.Data.Links.Self, map[string]any{"currentQuantity": decimal.NewFromInt(quantity)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) getNotifications(query string) v1.NotificationListResponse {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/notifications?%s", query), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var notifications v1.NotificationListResponse
	test.DecodeResponse(suite.T(), &r, &notifications)
	return notifications
}

// TestNotificationsDeduplication verifies that no new notification is created
// for a material while an unread one of the same type exists.
func (suite *TestSuiteStandard) TestNotificationsDeduplication() {
	suite.createTestUser(v1.UserEditable{})
	material := suite.createTestMaterial(v1.MaterialEditable{Name: "Flour", CurrentQuantity: decimal.NewFromInt(100)})

	suite.setQuantity(material, 10)
	suite.setQuantity(material, 5)

	notifications := suite.getNotifications("")
	suite.Require().Len(notifications.Data, 1)
	assert.Equal(suite.T(), "Alert: Shortage in material Flour", notifications.Data[0].Message)
	assert.False(suite.T(), notifications.Data[0].Read)

	r := test.Request(suite.T(), http.MethodPost, notifications.Data[0].Links.Read, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var read v1.NotificationResponse
	test.DecodeResponse(suite.T(), &r, &read)
	assert.True(suite.T(), read.Data.Read)

	// Once read, a new alert is created
	suite.setQuantity(material, 8)
	assert.Len(suite.T(), suite.getNotifications("").Data, 2)

	// A surplus is a different type
	suite.setQuantity(material, 500)
	notifications = suite.getNotifications("")
	suite.Require().Len(notifications.Data, 3)
	assert.Equal(suite.T(), models.NotificationSurplus, notifications.Data[0].Type)
	assert.Equal(suite.T(), "Alert: Surplus in material Flour", notifications.Data[0].Message)
}

// TestNotificationsDisabled verifies that no notifications are created when
// automatic alerts are disabled.
func (suite *TestSuiteStandard) TestNotificationsDisabled() {
	suite.createTestUser(v1.UserEditable{})
	material := suite.createTestMaterial(v1.MaterialEditable{CurrentQuantity: decimal.NewFromInt(100)})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", `{ "automaticAlerts": false }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.setQuantity(material, 10)
	assert.Len(suite.T(), suite.getNotifications("").Data, 0)
}

// TestNotificationsGetFilter verifies the filters of the notification list.
func (suite *TestSuiteStandard) TestNotificationsGetFilter() {
	first := suite.createTestUser(v1.UserEditable{}).Data.ID
	second := suite.createTestUser(v1.UserEditable{}).Data.ID
	rice := suite.createTestMaterial(v1.MaterialEditable{CurrentQuantity: decimal.NewFromInt(100)})
	oil := suite.createTestMaterial(v1.MaterialEditable{CurrentQuantity: decimal.NewFromInt(100)})

	suite.setQuantity(rice, 10)
	suite.setQuantity(oil, 300)

	// Mark one notification as read
	unread := suite.getNotifications(fmt.Sprintf("user=%s&material=%s", first, rice.Data.ID))
	suite.Require().Len(unread.Data, 1)
	r := test.Request(suite.T(), http.MethodPost, unread.Data[0].Links.Read, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 4},
		{"Unread", "read=false", 3},
		{"Read", "read=true", 1},
		{"Type", "type=surplus", 2},
		{"Material", fmt.Sprintf("material=%s", oil.Data.ID), 2},
		{"User", fmt.Sprintf("user=%s", second), 2},
		{"User and unread", fmt.Sprintf("user=%s&read=false", first), 1},
		{"Limit", "limit=3", 3},
		{"Unknown user", fmt.Sprintf("user=%s", uuid.New()), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/notifications?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var notifications v1.NotificationListResponse
			test.DecodeResponse(t, &r, &notifications)
			assert.Len(t, notifications.Data, tt.len)
		})
	}

	for _, query := range []string{"read=maybe", "user=NotAUUID", "limit=many"} {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/notifications?%s", query), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestNotificationsReadFails() {
	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/notifications/%s/read", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.NotificationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "there is no notification matching your query", *response.Error)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/notifications/notaUUID/read", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestNotificationsStream verifies that new notifications are sent to
// subscribed users as Server-Sent Events.
func (suite *TestSuiteStandard) TestNotificationsStream() {
	user := suite.createTestUser(v1.UserEditable{})
	material := suite.createTestMaterial(v1.MaterialEditable{Name: "Oil", CurrentQuantity: decimal.NewFromInt(100)})

	baseURL, _ := url.Parse("http://example.com")
	r, teardown, err := router.Config(baseURL)
	suite.Require().Nil(err)
	defer teardown()
	router.AttachRoutes(r.Group("/"))

	server := httptest.NewServer(r)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/v1/notifications/stream", nil)
	req.Header.Set(v1.ActorHeader, user.Data.ID.String())

	resp, err := server.Client().Do(req)
	suite.Require().Nil(err)
	defer resp.Body.Close()

	suite.Require().Equal(http.StatusOK, resp.StatusCode)
	assert.Contains(suite.T(), resp.Header.Get("Content-Type"), "text/event-stream")
	suite.Require().Eventually(func() bool {
		return notify.DefaultHub.Subscribers(user.Data.ID) == 1
	}, 5*time.Second, 10*time.Millisecond)

	events := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		event := ""
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, "event:") {
				event = strings.TrimPrefix(line, "event:")
			}

			if strings.HasPrefix(line, "data:") && event == "notification" {
				events <- strings.TrimPrefix(line, "data:")
				return
			}
		}
		close(events)
	}()

	suite.setQuantity(material, 1000)

	select {
	case data, ok := <-events:
		suite.Require().True(ok, "stream closed before a notification was received")

		var notification v1.Notification
		suite.Require().Nil(json.Unmarshal([]byte(data), &notification))
		assert.Equal(suite.T(), user.Data.ID, notification.UserID)
		assert.Equal(suite.T(), models.NotificationSurplus, notification.Type)
		assert.Equal(suite.T(), "Alert: Surplus in material Oil", notification.Message)
	case <-time.After(5 * time.Second):
		suite.Fail("no notification received")
	}

	// Closing the stream removes the subscription
	cancel()
	assert.Eventually(suite.T(), func() bool {
		return notify.DefaultHub.Subscribers(user.Data.ID) == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func (suite *TestSuiteStandard) TestNotificationsStreamActor() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/notifications/stream", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/notifications/stream", "", actorHeader(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}
