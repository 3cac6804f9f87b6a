// Package types holds the decoded shapes of server lobby messages.
// Partial payloads use pointer fields so an omitted field is
// distinguishable from a zero value.
package types

// UserPayload carries identity fields for one user. Any field other
// than the id may be absent.
type UserPayload struct {
	ID      int               `json:"id"`
	Name    *string           `json:"name,omitempty"`
	ClanID  *int              `json:"clan_id,omitempty"`
	Bot     *bool             `json:"bot,omitempty"`
	Country *string           `json:"country,omitempty"`
	Icons   map[string]string `json:"icons,omitempty"`
}

// ClientStatus carries battle-status fields for one user.
type ClientStatus struct {
	UserID       int     `json:"userid"`
	Away         *bool   `json:"away,omitempty"`
	LobbyID      *int    `json:"lobby_id,omitempty"`
	InGame       *bool   `json:"in_game,omitempty"`
	Player       *bool   `json:"player,omitempty"`
	Sync         *bool   `json:"sync,omitempty"`
	TeamNumber   *int    `json:"team_number,omitempty"`
	PlayerNumber *int    `json:"player_number,omitempty"`
	TeamColour   *string `json:"team_colour,omitempty"`
	Ready        *bool   `json:"ready,omitempty"`
}

// LobbyPayload is the full lobby description sent on a successful join.
type LobbyPayload struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	FounderID int    `json:"founder_id"`
	MapName   string `json:"map_name"`
	Locked    bool   `json:"locked"`
	Players   []int  `json:"players"`
}

// LobbyUpdate is the partial lobby description sent on an update
// notice. The id is always present; everything else is optional.
// A nil Players slice means the roster was not part of the update.
type LobbyUpdate struct {
	ID        int     `json:"id"`
	Name      *string `json:"name,omitempty"`
	FounderID *int    `json:"founder_id,omitempty"`
	MapName   *string `json:"map_name,omitempty"`
	Locked    *bool   `json:"locked,omitempty"`
	Players   []int   `json:"players,omitempty"`
}

// BotPayload describes one AI participant. Bots are owned by a user
// but are not user records themselves.
type BotPayload struct {
	Name       string `json:"name"`
	OwnerID    int    `json:"owner_id"`
	AI         string `json:"ai_dll"`
	TeamNumber int    `json:"team_number"`
	TeamColour string `json:"team_colour"`
}
