package nav

import (
	"testing"

	"go.uber.org/zap"

	"github.com/hollis-m/lobby-client/internal/session"
)

func TestEnteringCustomBattleViewCreatesOfflineBattle(t *testing.T) {
	sess := session.New(zap.NewNop())
	r := NewRouter(sess, zap.NewNop())

	r.Push(RouteSingleplayerCustom)

	b := sess.OfflineBattle()
	if b == nil || !b.Offline {
		t.Fatalf("offline battle not created on entering the view: %#v", b)
	}
}

func TestLeavingCustomBattleViewDestroysOfflineBattle(t *testing.T) {
	sess := session.New(zap.NewNop())
	r := NewRouter(sess, zap.NewNop())

	r.Push(RouteSingleplayerCustom)
	r.Push("/multiplayer/battle")

	if sess.OfflineBattle() != nil {
		t.Fatalf("offline battle survived leaving the view")
	}
}

func TestUnrelatedNavigationLeavesOfflineBattleAlone(t *testing.T) {
	sess := session.New(zap.NewNop())
	r := NewRouter(sess, zap.NewNop())

	r.Push("/home")
	r.Push("/multiplayer")

	if sess.OfflineBattle() != nil {
		t.Fatalf("offline battle created by unrelated navigation")
	}
}

func TestRepushingCurrentRouteIsANoOp(t *testing.T) {
	sess := session.New(zap.NewNop())
	r := NewRouter(sess, zap.NewNop())

	r.Push(RouteSingleplayerCustom)
	first := sess.OfflineBattle()
	r.Push(RouteSingleplayerCustom)

	if sess.OfflineBattle() != first {
		t.Fatalf("repushing the route replaced the offline battle")
	}
}
