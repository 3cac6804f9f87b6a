// Package nav is the routing collaborator. The engine only pushes
// routes; side effects of navigation (the offline battle lifecycle)
// live here.
package nav

import (
	"go.uber.org/zap"

	"github.com/hollis-m/lobby-client/internal/session"
)

const RouteSingleplayerCustom = "/singleplayer/custom"

// Router tracks the current route and ties the offline battle to the
// local custom-battle view: entering it creates the skirmish, leaving
// it destroys it.
type Router struct {
	session *session.Session
	current string
	log     *zap.Logger
}

func NewRouter(sess *session.Session, log *zap.Logger) *Router {
	return &Router{session: sess, log: log}
}

func (r *Router) Current() string { return r.current }

func (r *Router) Push(route string) {
	if route == r.current {
		return
	}
	from := r.current
	r.current = route
	r.log.Info("route changed", zap.String("from", from), zap.String("to", route))

	if route == RouteSingleplayerCustom {
		r.session.StartOfflineBattle()
	} else if from == RouteSingleplayerCustom {
		r.session.CloseOfflineBattle()
	}
}
