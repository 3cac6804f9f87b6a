// Package battle models one lobby room, online or offline.
package battle

import (
	"errors"
	"fmt"

	"github.com/hollis-m/lobby-client/pkg/types"
)

var ErrBattleMismatch = errors.New("update references a different battle")

// Bot is an AI participant. It belongs to the room, not to the user
// directory.
type Bot struct {
	Name    string
	OwnerID int
	AI      string
	TeamID  int
	Color   string
}

// Battle is one lobby room. Players holds user ids only; the records
// themselves live in the user directory and are never copied here.
type Battle struct {
	ID         int
	Name       string
	FounderID  int
	MapName    string
	Players    []int
	Bots       []Bot
	ModOptions map[string]string
	Open       bool
	Offline    bool
}

// FromJoin builds an online battle from the full payload of an
// approved join.
func FromJoin(lobby types.LobbyPayload, bots []types.BotPayload, modoptions map[string]string) *Battle {
	b := &Battle{ModOptions: map[string]string{}}
	b.ApplyFullUpdate(lobby, bots, modoptions)
	return b
}

// ApplyFullUpdate replaces every field wholesale. Used only when the
// model is being (re)populated from a complete description.
func (b *Battle) ApplyFullUpdate(lobby types.LobbyPayload, bots []types.BotPayload, modoptions map[string]string) {
	b.ID = lobby.ID
	b.Name = lobby.Name
	b.FounderID = lobby.FounderID
	b.MapName = lobby.MapName
	b.Open = !lobby.Locked
	b.Players = append([]int(nil), lobby.Players...)
	b.Bots = botsFromPayload(bots)
	b.ApplyOptionChange(modoptions)
}

// ApplyPartialUpdate merges the supplied fields into the current
// state. Fields absent from the payload stay untouched. An update
// carrying a different battle id is rejected without mutating
// anything.
func (b *Battle) ApplyPartialUpdate(lobby types.LobbyUpdate, bots []types.BotPayload, modoptions map[string]string) error {
	if lobby.ID != b.ID {
		return fmt.Errorf("%w: got %d, holding %d", ErrBattleMismatch, lobby.ID, b.ID)
	}
	if lobby.Name != nil {
		b.Name = *lobby.Name
	}
	if lobby.FounderID != nil {
		b.FounderID = *lobby.FounderID
	}
	if lobby.MapName != nil {
		b.MapName = *lobby.MapName
	}
	if lobby.Locked != nil {
		b.Open = !*lobby.Locked
	}
	if lobby.Players != nil {
		b.Players = append([]int(nil), lobby.Players...)
	}
	if bots != nil {
		b.Bots = botsFromPayload(bots)
	}
	if modoptions != nil {
		b.ApplyOptionChange(modoptions)
	}
	return nil
}

// ApplyOptionChange replaces the mod-option map wholesale. The server
// sends the complete new set, never a delta, so this must not merge
// key by key.
func (b *Battle) ApplyOptionChange(newOptions map[string]string) {
	opts := make(map[string]string, len(newOptions))
	for k, v := range newOptions {
		opts[k] = v
	}
	b.ModOptions = opts
}

// Clone returns an independent copy, used for snapshots handed to
// readers outside the dispatch goroutine.
func (b *Battle) Clone() *Battle {
	if b == nil {
		return nil
	}
	c := *b
	c.Players = append([]int(nil), b.Players...)
	c.Bots = append([]Bot(nil), b.Bots...)
	c.ModOptions = make(map[string]string, len(b.ModOptions))
	for k, v := range b.ModOptions {
		c.ModOptions[k] = v
	}
	return &c
}

func botsFromPayload(bots []types.BotPayload) []Bot {
	out := make([]Bot, 0, len(bots))
	for _, p := range bots {
		out = append(out, Bot{
			Name:    p.Name,
			OwnerID: p.OwnerID,
			AI:      p.AI,
			TeamID:  p.TeamNumber,
			Color:   p.TeamColour,
		})
	}
	return out
}
