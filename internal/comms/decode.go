package comms

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hollis-m/lobby-client/internal/engine"
	"github.com/hollis-m/lobby-client/pkg/types"
)

var ErrUnknownCommand = errors.New("unknown server command")

// DecodeEvent turns one server frame into a typed engine event. A nil
// event with a nil error means the frame decoded fine but carries
// nothing for the engine (e.g. a denied join).
func DecodeEvent(data []byte) (engine.Event, error) {
	var env struct {
		Cmd string `json:"cmd"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	switch env.Cmd {
	case "s.system.server_event":
		var msg struct {
			Event string `json:"event"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Cmd, err)
		}
		switch msg.Event {
		case "server_restart":
			return engine.ServerRestart{}, nil
		case "stop":
			return engine.ServerStop{}, nil
		default:
			return nil, nil
		}

	case "s.user.user_and_client_list":
		var msg struct {
			Users   []types.UserPayload  `json:"users"`
			Clients []types.ClientStatus `json:"clients"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Cmd, err)
		}
		return engine.UserClientList{Users: msg.Users, Clients: msg.Clients}, nil

	case "s.lobby.join_response":
		var msg struct {
			Result     string             `json:"result"`
			Lobby      types.LobbyPayload `json:"lobby"`
			Bots       []types.BotPayload `json:"bots"`
			ModOptions map[string]string  `json:"modoptions"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Cmd, err)
		}
		if msg.Result != "approve" {
			return nil, nil
		}
		return engine.JoinApproved{Lobby: msg.Lobby, Bots: msg.Bots, ModOptions: msg.ModOptions}, nil

	case "s.lobby.updated":
		var msg struct {
			Lobby      types.LobbyUpdate  `json:"lobby"`
			Bots       []types.BotPayload `json:"bots"`
			ModOptions map[string]string  `json:"modoptions"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Cmd, err)
		}
		return engine.LobbyUpdated{Lobby: msg.Lobby, Bots: msg.Bots, ModOptions: msg.ModOptions}, nil

	case "s.lobby.set_modoptions":
		var msg struct {
			NewOptions map[string]string `json:"new_options"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Cmd, err)
		}
		return engine.ModOptionsChanged{NewOptions: msg.NewOptions}, nil

	case "s.lobby.updated_client_battlestatus":
		var msg struct {
			Client types.ClientStatus `json:"client"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Cmd, err)
		}
		return engine.ClientStatusUpdated{Client: msg.Client}, nil

	case "s.lobby.add_user":
		var msg struct {
			JoinerID int `json:"joiner_id"`
			LobbyID  int `json:"lobby_id"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", env.Cmd, err)
		}
		return engine.UserJoinedLobby{JoinerID: msg.JoinerID, LobbyID: msg.LobbyID}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, env.Cmd)
	}
}
