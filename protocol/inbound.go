package protocol

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/lab1702/waypointwars/world"
)

// Action names recognized in the inbound "action" field.
const (
	ActionReady      = "ready"
	ActionSquadSpawn = "squad_spawn"
	ActionSquadMove  = "squad_move"
)

// CommandKind tags which variant of Command is populated.
type CommandKind int

const (
	ReadyCommand CommandKind = iota
	SquadSpawnCommand
	SquadMoveCommand
)

// Command is the decoded, typed form of one inbound message. Only the
// fields relevant to Kind are meaningful; CutCount is nil unless the
// optional split variant was requested.
type Command struct {
	Kind       CommandKind
	PlanetId   world.EntityId
	SquadId    world.EntityId
	WaypointId world.EntityId
	CutCount   *uint64
}

type envelope struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// Decode parses one inbound text message into a Command. Malformed JSON
// yields ParseErrorKind; an unrecognized action yields UnsupportedActionKind;
// a missing or wrongly-typed field inside "data" yields MissedPropertyKind
// or IncompatibleTypeKind respectively. The caller is expected to log the
// error at debug and drop the message — the connection itself stays open.
func Decode(raw []byte) (Command, error) {
	var env envelope
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&env); err != nil {
		return Command{}, parseError(err)
	}

	switch env.Action {
	case ActionReady:
		return Command{Kind: ReadyCommand}, nil

	case ActionSquadSpawn:
		data, err := decodeObject(env.Data)
		if err != nil {
			return Command{}, err
		}
		planetId, err := fieldEntityId(data, "planet_id")
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: SquadSpawnCommand, PlanetId: planetId}, nil

	case ActionSquadMove:
		data, err := decodeObject(env.Data)
		if err != nil {
			return Command{}, err
		}
		squadId, err := fieldEntityId(data, "squad_id")
		if err != nil {
			return Command{}, err
		}
		waypointId, err := fieldEntityId(data, "waypoint_id")
		if err != nil {
			return Command{}, err
		}
		cmd := Command{Kind: SquadMoveCommand, SquadId: squadId, WaypointId: waypointId}
		if raw, ok := data["cut_count"]; ok {
			cutCount, err := asUint64(raw, "cut_count")
			if err != nil {
				return Command{}, err
			}
			cmd.CutCount = &cutCount
		}
		return cmd, nil

	default:
		return Command{}, unsupportedAction()
	}
}

func decodeObject(raw json.RawMessage) (map[string]interface{}, error) {
	if len(raw) == 0 {
		return map[string]interface{}{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var data map[string]interface{}
	if err := dec.Decode(&data); err != nil {
		return nil, parseError(err)
	}
	return data, nil
}

func fieldEntityId(data map[string]interface{}, field string) (world.EntityId, error) {
	raw, ok := data[field]
	if !ok {
		return 0, missedProperty(field)
	}
	v, err := asUint64(raw, field)
	if err != nil {
		return 0, err
	}
	return world.EntityId(v), nil
}

func asUint64(raw interface{}, field string) (uint64, error) {
	num, ok := raw.(json.Number)
	if !ok {
		return 0, incompatibleType(field)
	}
	v, err := strconv.ParseUint(num.String(), 10, 64)
	if err != nil {
		return 0, incompatibleType(field)
	}
	return v, nil
}
