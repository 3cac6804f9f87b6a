// Package users keeps the directory of every user seen this session.
package users

import (
	"github.com/hollis-m/lobby-client/pkg/types"
)

type SyncStatus int

const (
	SyncUnsynced SyncStatus = iota
	SyncSyncing
	SyncSynced
)

// BattleStatus is the live battle sub-record of a user. BattleID is
// nil while the user is not in any battle.
type BattleStatus struct {
	Away      bool
	BattleID  *int
	InBattle  bool
	Spectator bool
	Sync      SyncStatus
	TeamID    int
	PlayerID  int
	Color     string
	Ready     bool
}

// User is one known participant. Records are created lazily on first
// sighting and never destroyed for the life of the process.
type User struct {
	ID           int
	Name         string
	ClanID       *int
	Bot          bool
	Country      string
	Icons        map[string]string
	BattleStatus BattleStatus
}

// Directory maps user ids to their mutable records. It only grows;
// there is no delete. An absent id means "unknown user", which update
// paths treat as a no-op rather than an error.
type Directory struct {
	byID map[int]*User
}

func NewDirectory() *Directory {
	return &Directory{byID: make(map[int]*User)}
}

// Resolve looks up a user. It never creates one.
func (d *Directory) Resolve(id int) (*User, bool) {
	u, ok := d.byID[id]
	return u, ok
}

func (d *Directory) Len() int { return len(d.byID) }

// UpsertIdentity creates the record if absent and merges the supplied
// identity fields. Fields not present in the payload are left alone.
func (d *Directory) UpsertIdentity(id int, p types.UserPayload) *User {
	u, ok := d.byID[id]
	if !ok {
		u = &User{ID: id, Icons: map[string]string{}}
		d.byID[id] = u
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.ClanID != nil {
		clan := *p.ClanID
		u.ClanID = &clan
	}
	if p.Bot != nil {
		u.Bot = *p.Bot
	}
	if p.Country != nil {
		u.Country = *p.Country
	}
	if p.Icons != nil {
		u.Icons = make(map[string]string, len(p.Icons))
		for k, v := range p.Icons {
			u.Icons[k] = v
		}
	}
	return u
}

// UpsertBattleStatus merges the supplied status fields into an
// existing record. Battle-status events never create a user on their
// own; identity has to arrive first. Returns false if the user is
// unknown.
func (d *Directory) UpsertBattleStatus(id int, p types.ClientStatus) bool {
	u, ok := d.byID[id]
	if !ok {
		return false
	}
	st := &u.BattleStatus
	if p.Away != nil {
		st.Away = *p.Away
	}
	if p.LobbyID != nil {
		battleID := *p.LobbyID
		st.BattleID = &battleID
	}
	if p.InGame != nil {
		st.InBattle = *p.InGame
	}
	if p.Player != nil {
		st.Spectator = !*p.Player
	}
	if p.Sync != nil {
		if *p.Sync {
			st.Sync = SyncSynced
		} else {
			st.Sync = SyncUnsynced
		}
	}
	if p.TeamNumber != nil {
		st.TeamID = *p.TeamNumber
	}
	if p.PlayerNumber != nil {
		st.PlayerID = *p.PlayerNumber
	}
	if p.TeamColour != nil {
		st.Color = *p.TeamColour
	}
	if p.Ready != nil {
		st.Ready = *p.Ready
	}
	return true
}
