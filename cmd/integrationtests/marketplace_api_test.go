package integrationtests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gig-marketplace/internal/notify"
	"gig-marketplace/services/marketplace/helpers"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// Full lifecycle: post a gig, collect bids, hire, verify final state and
// that a second hire attempt conflicts.
func TestHireFlow(t *testing.T) {
	router, _ := SetupTestRouter()

	// U1 posts a gig
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/gigs", "U1",
		helpers.CreateGigRequest{Title: "Landing page", Description: "One pager", Budget: 500})
	require.Equal(t, http.StatusCreated, w.Code)
	gigID := Data(t, resp)["gig_id"].(string)

	// U2 and U3 place bids
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", "U2",
		helpers.PlaceBidRequest{GigID: gigID, Amount: 450, Message: "One week"})
	require.Equal(t, http.StatusCreated, w.Code)
	winningBidID := Data(t, resp)["bid_id"].(string)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", "U3",
		helpers.PlaceBidRequest{GigID: gigID, Amount: 400, Message: "Three days"})
	require.Equal(t, http.StatusCreated, w.Code)
	losingBidID := Data(t, resp)["bid_id"].(string)

	// A duplicate bid by U2 conflicts
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", "U2",
		helpers.PlaceBidRequest{GigID: gigID, Amount: 440, Message: "Changed my mind"})
	require.Equal(t, http.StatusConflict, w.Code)

	// The owner cannot bid on their own gig
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", "U1",
		helpers.PlaceBidRequest{GigID: gigID, Amount: 1, Message: "mine"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Only the owner may view the bids
	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/gigs/"+gigID+"/bids", "U2", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/gigs/"+gigID+"/bids", "U1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"], 2)

	// Only the owner may hire
	_, w = ExecuteRequestAndParse(t, router, http.MethodPatch, "/bids/"+winningBidID+"/hire", "U3", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// U1 hires U2
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPatch, "/bids/"+winningBidID+"/hire", "U1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := Data(t, resp)
	gigData := data["gig"].(map[string]any)
	bidData := data["bid"].(map[string]any)
	require.Equal(t, "assigned", gigData["status"])
	require.Equal(t, "hired", bidData["status"])

	// The losing bid is rejected
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/users/me/bids", "U3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bids := resp["data"].([]any)
	require.Len(t, bids, 1)
	require.Equal(t, losingBidID, bids[0].(map[string]any)["bid_id"])
	require.Equal(t, "rejected", bids[0].(map[string]any)["status"])

	// Hiring the losing bid afterwards conflicts
	_, w = ExecuteRequestAndParse(t, router, http.MethodPatch, "/bids/"+losingBidID+"/hire", "U1", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// The gig no longer shows up as open
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/gigs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"])
}

// Requests without an identity header are rejected on protected routes
func TestAuthRequired(t *testing.T) {
	router, _ := SetupTestRouter()

	protected := []struct {
		method string
		url    string
	}{
		{http.MethodPost, "/gigs"},
		{http.MethodPost, "/bids"},
		{http.MethodPatch, "/bids/bid1/hire"},
		{http.MethodGet, "/users/me/gigs"},
		{http.MethodGet, "/users/me/bids"},
		{http.MethodGet, "/gigs/gig1/bids"},
	}

	for _, tc := range protected {
		_, w := ExecuteRequestAndParse(t, router, tc.method, tc.url, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.url)
	}

	// public routes stay reachable
	_, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/gigs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

// Hiring a nonexistent bid returns 404 and nothing changes
func TestHireUnknownBid(t *testing.T) {
	router, _ := SetupTestRouter()

	_, w := ExecuteRequestAndParse(t, router, http.MethodPatch, "/bids/no-such-bid/hire", "U1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// A freelancer connected over the websocket receives the hire notification
func TestHireNotificationOverWebSocket(t *testing.T) {
	router, registry := SetupTestRouter()

	srv := httptest.NewServer(router)
	defer srv.Close()

	// U1 posts a gig, U2 bids
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/gigs", "U1",
		helpers.CreateGigRequest{Title: "Logo design", Description: "A fresh logo", Budget: 150})
	require.Equal(t, http.StatusCreated, w.Code)
	gigID := Data(t, resp)["gig_id"].(string)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", "U2",
		helpers.PlaceBidRequest{GigID: gigID, Amount: 120, Message: "On it"})
	require.Equal(t, http.StatusCreated, w.Code)
	bidID := Data(t, resp)["bid_id"].(string)

	// U2 connects and registers
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"user_id": "U2"}))
	require.Eventually(t, func() bool {
		_, ok := registry.Lookup("U2")
		return ok
	}, 2*time.Second, 10*time.Millisecond, "registration should reach the registry")

	// U1 hires U2 over HTTP against the live server
	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/bids/"+bidID+"/hire", nil)
	require.NoError(t, err)
	req.Header.Set("X-User-ID", "U1")
	hireResp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer hireResp.Body.Close()
	require.Equal(t, http.StatusOK, hireResp.StatusCode)

	// The notification arrives on the registered connection
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event notify.Event
	require.NoError(t, conn.ReadJSON(&event))
	require.Equal(t, "success", event.Type)
	require.Equal(t, gigID, event.GigID)
	require.Contains(t, event.Message, "Logo design")
}
