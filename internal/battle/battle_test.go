package battle

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hollis-m/lobby-client/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func heldBattle() *Battle {
	return FromJoin(
		types.LobbyPayload{ID: 5, Name: "Team Fight", FounderID: 1, MapName: "Glacier", Players: []int{1, 2}},
		[]types.BotPayload{{Name: "BARb", OwnerID: 1, AI: "BARb.dll", TeamNumber: 1}},
		map[string]string{"a": "1", "b": "2"},
	)
}

func TestPartialUpdateRejectsMismatchedBattle(t *testing.T) {
	b := heldBattle()
	before := *b.Clone()

	err := b.ApplyPartialUpdate(types.LobbyUpdate{ID: 7, Name: ptr("Hijack")}, nil, nil)

	if !errors.Is(err, ErrBattleMismatch) {
		t.Fatalf("want ErrBattleMismatch, got %v", err)
	}
	if !reflect.DeepEqual(before, *b.Clone()) {
		t.Fatalf("rejected update mutated state: %#v vs %#v", before, *b)
	}
}

func TestPartialUpdateMergesSuppliedFields(t *testing.T) {
	cases := []struct {
		name   string
		update types.LobbyUpdate
		check  func(b *Battle) bool
	}{
		{
			name:   "name only",
			update: types.LobbyUpdate{ID: 5, Name: ptr("Renamed")},
			check:  func(b *Battle) bool { return b.Name == "Renamed" && b.MapName == "Glacier" },
		},
		{
			name:   "roster replaced when present",
			update: types.LobbyUpdate{ID: 5, Players: []int{1, 2, 10}},
			check:  func(b *Battle) bool { return reflect.DeepEqual(b.Players, []int{1, 2, 10}) && b.Name == "Team Fight" },
		},
		{
			name:   "lock toggles open state",
			update: types.LobbyUpdate{ID: 5, Locked: ptr(true)},
			check:  func(b *Battle) bool { return !b.Open },
		},
		{
			name:   "omitted roster untouched",
			update: types.LobbyUpdate{ID: 5, MapName: ptr("Delta")},
			check:  func(b *Battle) bool { return reflect.DeepEqual(b.Players, []int{1, 2}) && b.MapName == "Delta" },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := heldBattle()
			if err := b.ApplyPartialUpdate(tc.update, nil, nil); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !tc.check(b) {
				t.Fatalf("unexpected state: %#v", b)
			}
		})
	}
}

func TestOptionChangeOverwritesWholesale(t *testing.T) {
	b := heldBattle() // holds {a:1, b:2}

	b.ApplyOptionChange(map[string]string{"c": "3"})

	want := map[string]string{"c": "3"}
	if !reflect.DeepEqual(b.ModOptions, want) {
		t.Fatalf("modoptions = %v, want %v (overwrite, not merge)", b.ModOptions, want)
	}
}

func TestPartialUpdateOptionsAlsoOverwrite(t *testing.T) {
	b := heldBattle()

	err := b.ApplyPartialUpdate(types.LobbyUpdate{ID: 5}, nil, map[string]string{"c": "3"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(b.ModOptions, map[string]string{"c": "3"}) {
		t.Fatalf("modoptions = %v, want {c:3}", b.ModOptions)
	}
}

func TestFullUpdateReplacesEverything(t *testing.T) {
	b := heldBattle()

	b.ApplyFullUpdate(
		types.LobbyPayload{ID: 6, Name: "Fresh", Players: []int{9}},
		nil,
		map[string]string{"x": "y"},
	)

	if b.ID != 6 || b.Name != "Fresh" || len(b.Bots) != 0 {
		t.Fatalf("full update left stale fields: %#v", b)
	}
	if !reflect.DeepEqual(b.Players, []int{9}) {
		t.Fatalf("players = %v, want [9]", b.Players)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := heldBattle()
	c := b.Clone()

	c.Players[0] = 99
	c.ModOptions["a"] = "mutated"

	if b.Players[0] == 99 || b.ModOptions["a"] == "mutated" {
		t.Fatalf("clone shares storage with the original")
	}
}

func TestDefaultSkirmishIsOfflineAndOpen(t *testing.T) {
	b := DefaultSkirmish(-1)
	if !b.Offline || !b.Open || b.ID != -1 {
		t.Fatalf("unexpected skirmish: %#v", b)
	}
}
