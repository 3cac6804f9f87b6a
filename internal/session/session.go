// Package session holds the process-wide client state: the user
// directory, the held online and offline battles, and the offline-mode
// flag. All mutation happens on the event-dispatch goroutine; readers
// elsewhere observe version-counted snapshot copies delivered over
// subscription channels.
package session

import (
	"go.uber.org/zap"

	"github.com/hollis-m/lobby-client/internal/battle"
	"github.com/hollis-m/lobby-client/internal/users"
)

// Snapshot is an immutable view of the session, safe to hand to other
// goroutines. Version increases by one per published mutation.
type Snapshot struct {
	Version       int            `json:"version"`
	OfflineMode   bool           `json:"offline_mode"`
	UserCount     int            `json:"user_count"`
	OnlineBattle  *battle.Battle `json:"online_battle,omitempty"`
	OfflineBattle *battle.Battle `json:"offline_battle,omitempty"`
}

type Session struct {
	Users *users.Directory

	onlineBattle  *battle.Battle
	offlineBattle *battle.Battle
	offlineMode   bool
	nextSkirmish  int

	version int
	subs    map[string]chan Snapshot
	log     *zap.Logger
}

func New(log *zap.Logger) *Session {
	return &Session{
		Users:        users.NewDirectory(),
		offlineMode:  true,
		nextSkirmish: -1,
		subs:         make(map[string]chan Snapshot),
		log:          log,
	}
}

func (s *Session) OnlineBattle() *battle.Battle  { return s.onlineBattle }
func (s *Session) OfflineBattle() *battle.Battle { return s.offlineBattle }
func (s *Session) OfflineMode() bool             { return s.offlineMode }
func (s *Session) Version() int                  { return s.version }

// GetUserByID resolves a user from the directory.
func (s *Session) GetUserByID(id int) (*users.User, bool) {
	return s.Users.Resolve(id)
}

// GetBattleByID resolves either held battle by id match.
func (s *Session) GetBattleByID(id int) (*battle.Battle, bool) {
	if s.onlineBattle != nil && s.onlineBattle.ID == id {
		return s.onlineBattle, true
	}
	if s.offlineBattle != nil && s.offlineBattle.ID == id {
		return s.offlineBattle, true
	}
	return nil, false
}

func (s *Session) SetOfflineMode(v bool) {
	s.offlineMode = v
	s.Publish()
}

// SetOnlineBattle installs the battle approved by the server. Passing
// nil clears the slot (leave/kick paths).
func (s *Session) SetOnlineBattle(b *battle.Battle) {
	s.onlineBattle = b
	s.Publish()
}

// StartOfflineBattle creates the local skirmish, replacing any
// previous one. Entering it does not require leaving the online
// battle; the two slots are independent.
func (s *Session) StartOfflineBattle() *battle.Battle {
	s.offlineBattle = battle.DefaultSkirmish(s.nextSkirmish)
	s.nextSkirmish--
	s.Publish()
	return s.offlineBattle
}

func (s *Session) CloseOfflineBattle() {
	s.offlineBattle = nil
	s.Publish()
}

// Subscribe registers an observer. The current snapshot is delivered
// immediately, then one per published mutation.
func (s *Session) Subscribe(id string) <-chan Snapshot {
	out := make(chan Snapshot, 8)
	s.subs[id] = out
	out <- s.snapshot()
	return out
}

func (s *Session) Unsubscribe(id string) {
	if ch, ok := s.subs[id]; ok {
		close(ch)
		delete(s.subs, id)
	}
}

// Publish bumps the version and broadcasts a fresh snapshot. Called
// by the synchronization engine after each applied event and by the
// mutators above.
func (s *Session) Publish() {
	s.version++
	snap := s.snapshot()
	for id, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// Subscriber is slow/full - drop them.
			s.log.Warn("dropping slow session subscriber", zap.String("subscriber", id))
			close(ch)
			delete(s.subs, id)
		}
	}
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		Version:       s.version,
		OfflineMode:   s.offlineMode,
		UserCount:     s.Users.Len(),
		OnlineBattle:  s.onlineBattle.Clone(),
		OfflineBattle: s.offlineBattle.Clone(),
	}
}
