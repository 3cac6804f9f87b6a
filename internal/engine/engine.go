// Package engine applies inbound server events to the session state.
// It holds no state of its own: every mutation lands in the user
// directory, the held battle, or the session slots. Handlers never
// fail hard; anomalies come back as rejected outcomes with at most
// one warning logged.
package engine

import (
	"errors"

	"go.uber.org/zap"

	"github.com/hollis-m/lobby-client/internal/alerts"
	"github.com/hollis-m/lobby-client/internal/battle"
	"github.com/hollis-m/lobby-client/internal/session"
)

var ErrUnsupportedEvent = errors.New("unsupported event")

// Navigator is the routing collaborator. A successful join pushes the
// battle route.
type Navigator interface {
	Push(route string)
}

const RouteMultiplayerBattle = "/multiplayer/battle"

// Outcome reports what a handler did with an event: applied, or
// rejected with a reason and no state mutation.
type Outcome struct {
	Applied bool
	Reason  string
}

func applied() Outcome               { return Outcome{Applied: true} }
func rejected(reason string) Outcome { return Outcome{Reason: reason} }

type Engine struct {
	session *session.Session
	alerts  alerts.Notifier
	nav     Navigator
	log     *zap.Logger
}

func New(sess *session.Session, notifier alerts.Notifier, nav Navigator, log *zap.Logger) *Engine {
	return &Engine{
		session: sess,
		alerts:  notifier,
		nav:     nav,
		log:     log,
	}
}

// Apply dispatches one event to its handler, run to completion before
// the next event. Must only be called from the dispatch goroutine.
func (e *Engine) Apply(ev Event) Outcome {
	switch ev := ev.(type) {
	case Connected:
		e.session.SetOfflineMode(false)
		return applied()

	case Disconnected:
		e.session.SetOfflineMode(true)
		return applied()

	case ServerRestart:
		e.session.SetOfflineMode(true)
		e.alerts.Notify(alerts.Alert{Severity: alerts.SeverityWarning, Content: "Server is restarting"})
		return applied()

	case ServerStop:
		e.alerts.Notify(alerts.Alert{Severity: alerts.SeverityWarning, Content: "Server is shutting down"})
		return applied()

	case UserClientList:
		// Identity first: a battle-status upsert on a user the
		// directory has never seen is a no-op, so the user entries
		// must land before the client entries for the same ids.
		for _, u := range ev.Users {
			e.session.Users.UpsertIdentity(u.ID, u)
		}
		for _, c := range ev.Clients {
			if !e.session.Users.UpsertBattleStatus(c.UserID, c) {
				e.log.Warn("roster snapshot client entry for unknown user", zap.Int("userid", c.UserID))
			}
		}
		e.session.Publish()
		return applied()

	case JoinApproved:
		b := battle.FromJoin(ev.Lobby, ev.Bots, ev.ModOptions)
		e.session.SetOnlineBattle(b)
		e.nav.Push(RouteMultiplayerBattle)
		return applied()

	case LobbyUpdated:
		b := e.session.OnlineBattle()
		if b == nil {
			e.log.Warn("not updating battle because no battle is held", zap.Int("lobby_id", ev.Lobby.ID))
			return rejected("no online battle held")
		}
		if err := b.ApplyPartialUpdate(ev.Lobby, ev.Bots, ev.ModOptions); err != nil {
			e.log.Warn("not updating battle because it is not the current battle",
				zap.Int("lobby_id", ev.Lobby.ID), zap.Int("held_id", b.ID))
			return rejected(err.Error())
		}
		e.session.Publish()
		return applied()

	case ModOptionsChanged:
		b := e.session.OnlineBattle()
		if b == nil {
			// Silent no-op when nothing is held.
			return rejected("no online battle held")
		}
		b.ApplyOptionChange(ev.NewOptions)
		e.session.Publish()
		return applied()

	case ClientStatusUpdated:
		if !e.session.Users.UpsertBattleStatus(ev.Client.UserID, ev.Client) {
			e.log.Warn("battle status update for unknown user", zap.Int("userid", ev.Client.UserID))
			return rejected("unknown user")
		}
		e.session.Publish()
		return applied()

	case UserJoinedLobby:
		_, userOK := e.session.GetUserByID(ev.JoinerID)
		_, battleOK := e.session.GetBattleByID(ev.LobbyID)
		if !userOK || !battleOK {
			return rejected("unresolved joiner or battle")
		}
		// TODO: append the joiner to the battle roster once the
		// add_user payload carries slot/team data.
		return applied()

	default:
		e.log.Warn("unsupported event", zap.Any("event", ev))
		return rejected(ErrUnsupportedEvent.Error())
	}
}
