package routes

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/LilVoxy/department_summary/ETL/models"
	"github.com/LilVoxy/department_summary/ETL/utils"
	"github.com/LilVoxy/department_summary/websocket"
	"github.com/gorilla/mux"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct{ users []models.User }

func (s *stubFetcher) Fetch(ctx context.Context) (*models.ExtractedData, error) {
	return &models.ExtractedData{Users: s.users}, nil
}

func TestStreamRouteUpgradesThroughMiddleware(t *testing.T) {
	logger := utils.NewNopLogger()
	streamer := websocket.NewStreamer(&stubFetcher{users: []models.User{
		{Age: 30, Gender: "male", Company: models.Company{Department: "Eng"}},
	}}, logger)

	router := mux.NewRouter()
	SetupRoutes(router, &stubProvider{}, streamer.HandleStream, logger)
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn, _, err := gorilla.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/users", nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var msg websocket.StreamMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, websocket.MessageTypeDepartment, msg.Type)
	assert.Equal(t, "Eng", msg.Department)

	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, websocket.MessageTypeComplete, msg.Type)
}
