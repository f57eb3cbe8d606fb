package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	bidding "gig-marketplace/internal/bidService"
	gig "gig-marketplace/internal/gigService"
	hire "gig-marketplace/internal/hireService"
	"gig-marketplace/internal/notify"
	"gig-marketplace/internal/repository"
	"gig-marketplace/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with the in-memory repository for
// integration testing and exposes the registry for websocket assertions.
func SetupTestRouter() (*gin.Engine, *notify.MemoryRegistry) {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	registry := notify.NewMemoryRegistry()
	dispatcher := notify.NewDispatcher(registry)

	gigService := gig.NewGigService(repo)
	bidService := bidding.NewBidService(repo)
	hireService := hire.NewHireService(repo, dispatcher)

	router := server.SetupRouter(gigService, bidService, hireService, registry)
	return router, registry
}

// ExecuteRequestAndParse executes an HTTP request on the given router as the
// given user and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, userID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Data extracts the data payload from a response envelope
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no object data payload: %v", resp)
	}
	return data
}
