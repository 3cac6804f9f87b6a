package engine

import "github.com/hollis-m/lobby-client/pkg/types"

// Event is the closed union of server events the engine recognizes.
// One variant per message kind, decoded at the transport boundary.
type Event interface{ isEvent() }

// Connected fires when the socket to the lobby server comes up.
type Connected struct{}

// Disconnected fires when the socket goes down. The held online
// battle is left as last-known-good; only the offline flag changes.
type Disconnected struct{}

// ServerRestart is the server-side restart notice.
type ServerRestart struct{}

// ServerStop is the server-side shutdown notice.
type ServerStop struct{}

// UserClientList is the full user+client roster snapshot.
type UserClientList struct {
	Users   []types.UserPayload
	Clients []types.ClientStatus
}

// JoinApproved is the approved reply to an earlier join request.
type JoinApproved struct {
	Lobby      types.LobbyPayload
	Bots       []types.BotPayload
	ModOptions map[string]string
}

// LobbyUpdated is a partial update to the held online battle.
type LobbyUpdated struct {
	Lobby      types.LobbyUpdate
	Bots       []types.BotPayload
	ModOptions map[string]string
}

// ModOptionsChanged carries the complete replacement option set.
type ModOptionsChanged struct {
	NewOptions map[string]string
}

// ClientStatusUpdated is a battle-status change for a single user.
type ClientStatusUpdated struct {
	Client types.ClientStatus
}

// UserJoinedLobby announces a user joining a battle.
type UserJoinedLobby struct {
	JoinerID int
	LobbyID  int
}

func (Connected) isEvent()           {}
func (Disconnected) isEvent()        {}
func (ServerRestart) isEvent()       {}
func (ServerStop) isEvent()          {}
func (UserClientList) isEvent()      {}
func (JoinApproved) isEvent()        {}
func (LobbyUpdated) isEvent()        {}
func (ModOptionsChanged) isEvent()   {}
func (ClientStatusUpdated) isEvent() {}
func (UserJoinedLobby) isEvent()     {}
