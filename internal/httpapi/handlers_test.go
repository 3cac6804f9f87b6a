package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hollis-m/lobby-client/internal/battle"
	"github.com/hollis-m/lobby-client/internal/session"
	"github.com/hollis-m/lobby-client/pkg/types"
)

func TestHealthz(t *testing.T) {
	sess := session.New(zap.NewNop())
	srv := httptest.NewServer(SetupRoutes(NewStateCache(sess.Subscribe("diag"))))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStateServesLatestSnapshot(t *testing.T) {
	sess := session.New(zap.NewNop())
	cache := NewStateCache(sess.Subscribe("diag"))
	srv := httptest.NewServer(SetupRoutes(cache))
	defer srv.Close()

	sess.SetOnlineBattle(battle.FromJoin(types.LobbyPayload{ID: 5, Name: "Team Fight"}, nil, nil))

	require.Eventually(t, func() bool {
		return cache.Latest().Version == 1
	}, time.Second, 10*time.Millisecond)

	resp, err := http.Get(srv.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()

	var snap session.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	require.Equal(t, 1, snap.Version)
	require.NotNil(t, snap.OnlineBattle)
	require.Equal(t, 5, snap.OnlineBattle.ID)
}
