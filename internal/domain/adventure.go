package domain

import (
	"fmt"
	"sort"
	"strings"
)

// RoomName identifies a room; names are unique within a world.
type RoomName string

const (
	RoomEntrance      RoomName = "Entrance"
	RoomSpookyDungeon RoomName = "Spooky Dungeon"
	RoomLockedDoor    RoomName = "Locked Door Room"
	RoomRiddle        RoomName = "Riddle Room"
	RoomTreasure      RoomName = "Treasure Room"
)

// Direction labels an exit. Any token is a valid direction; unknown ones never match.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// PuzzleKind enumerates the room-local unlock mechanisms.
type PuzzleKind int

const (
	PuzzleNone PuzzleKind = iota
	PuzzleLockedDoor
	PuzzleRiddle
)

var puzzleKindNames = map[PuzzleKind]string{
	PuzzleNone:       "none",
	PuzzleLockedDoor: "locked_door",
	PuzzleRiddle:     "riddle",
}

func (k PuzzleKind) String() string {
	if name, ok := puzzleKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PuzzleKind(%d)", int(k))
}

// ParsePuzzleKind maps the textual form used in world files back to a PuzzleKind.
func ParsePuzzleKind(raw string) (PuzzleKind, error) {
	for kind, name := range puzzleKindNames {
		if name == raw {
			return kind, nil
		}
	}
	if raw == "" {
		return PuzzleNone, nil
	}
	return PuzzleNone, fmt.Errorf("unknown puzzle kind %q", raw)
}

// Puzzle is a two-state unlock: once solved it adds Exit -> Target to its room.
type Puzzle struct {
	Kind PuzzleKind
	// Key is the inventory item a locked door needs.
	Key string
	// Hint is printed when a locked door is tried without the key.
	Hint string
	// Riddle is the question asked by a riddle; Answer is compared ignoring case.
	Riddle string
	Answer string
	Exit   Direction
	Target RoomName
}

// Room is a node of the world graph.
type Room struct {
	Name        RoomName
	Description string
	Items       []string
	Exits       map[Direction]RoomName
	Puzzle      Puzzle
	Solved      bool
}

// HasItem reports whether item lies in the room.
func (r *Room) HasItem(item string) bool {
	for _, it := range r.Items {
		if it == item {
			return true
		}
	}
	return false
}

// RemoveItem drops the first occurrence of item and reports whether it was present.
func (r *Room) RemoveItem(item string) bool {
	for i, it := range r.Items {
		if it == item {
			r.Items = append(r.Items[:i:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ExitDirections returns the room's exit labels in sorted order.
func (r *Room) ExitDirections() []Direction {
	dirs := make([]Direction, 0, len(r.Exits))
	for dir := range r.Exits {
		dirs = append(dirs, dir)
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i] < dirs[j] })
	return dirs
}

func (r *Room) clone() *Room {
	cp := *r
	cp.Items = append([]string(nil), r.Items...)
	cp.Exits = make(map[Direction]RoomName, len(r.Exits))
	for dir, target := range r.Exits {
		cp.Exits[dir] = target
	}
	return &cp
}

// Player is the single adventurer of a session.
type Player struct {
	Name      string
	Inventory []string
	Location  RoomName
	Alive     bool
}

// Holds reports whether item is somewhere in the inventory.
func (p *Player) Holds(item string) bool {
	for _, it := range p.Inventory {
		if it == item {
			return true
		}
	}
	return false
}

// World is the room table together with the room a new player starts in.
type World struct {
	Start RoomName
	Rooms map[RoomName]*Room
	// Order keeps the declaration order of rooms for stable output.
	Order []RoomName
}

// NewWorld creates an empty world starting at start.
func NewWorld(start RoomName) *World {
	return &World{Start: start, Rooms: make(map[RoomName]*Room)}
}

// Add inserts or replaces a room.
func (w *World) Add(room *Room) {
	if room.Exits == nil {
		room.Exits = make(map[Direction]RoomName)
	}
	if _, ok := w.Rooms[room.Name]; !ok {
		w.Order = append(w.Order, room.Name)
	}
	w.Rooms[room.Name] = room
}

// Room looks up a room by name.
func (w *World) Room(name RoomName) (*Room, bool) {
	room, ok := w.Rooms[name]
	return room, ok
}

// Clone deep-copies the world so that a session can mutate it freely.
func (w *World) Clone() *World {
	cp := &World{
		Start: w.Start,
		Rooms: make(map[RoomName]*Room, len(w.Rooms)),
		Order: append([]RoomName(nil), w.Order...),
	}
	for name, room := range w.Rooms {
		cp.Rooms[name] = room.clone()
	}
	return cp
}

// Validate checks that the start room exists, every exit and puzzle reward names an
// existing room, and every room can be reached from the start once puzzles are solved.
func (w *World) Validate() error {
	if _, ok := w.Rooms[w.Start]; !ok {
		return fmt.Errorf("start room %q: %w", w.Start, ErrUnknownRoom)
	}
	for _, name := range w.Order {
		room := w.Rooms[name]
		for dir, target := range room.Exits {
			if _, ok := w.Rooms[target]; !ok {
				return fmt.Errorf("%s %s -> %q: %w", name, dir, target, ErrDanglingExit)
			}
		}
		if room.Puzzle.Kind != PuzzleNone {
			if _, ok := w.Rooms[room.Puzzle.Target]; !ok {
				return fmt.Errorf("%s puzzle -> %q: %w", name, room.Puzzle.Target, ErrDanglingExit)
			}
		}
	}

	seen := map[RoomName]bool{w.Start: true}
	queue := []RoomName{w.Start}
	for len(queue) > 0 {
		room := w.Rooms[queue[0]]
		queue = queue[1:]
		next := make([]RoomName, 0, len(room.Exits)+1)
		for _, target := range room.Exits {
			next = append(next, target)
		}
		if room.Puzzle.Kind != PuzzleNone {
			next = append(next, room.Puzzle.Target)
		}
		for _, target := range next {
			if !seen[target] {
				seen[target] = true
				queue = append(queue, target)
			}
		}
	}
	var missing []string
	for _, name := range w.Order {
		if !seen[name] {
			missing = append(missing, string(name))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(missing, ", "), ErrUnreachableRoom)
	}
	return nil
}

// CommandKind is the closed set of adventure verbs.
type CommandKind int

const (
	CommandInvalid CommandKind = iota
	CommandGo
	CommandPick
	CommandLook
	CommandInventory
	CommandInteract
	CommandQuit
	CommandHelp
)

var commandVerbs = map[string]CommandKind{
	"go":        CommandGo,
	"pick":      CommandPick,
	"look":      CommandLook,
	"inventory": CommandInventory,
	"interact":  CommandInteract,
	"quit":      CommandQuit,
	"help":      CommandHelp,
}

// Command is one parsed line of adventure input.
type Command struct {
	Kind CommandKind
	Verb string
	Args []string
}

// Arg joins the argument tokens with single spaces, so multi-word item names survive.
func (c Command) Arg() string {
	return strings.Join(c.Args, " ")
}

// ParseCommand splits a raw line on whitespace into a verb and its arguments.
// Verbs are matched exactly; anything unrecognised parses as CommandInvalid.
func ParseCommand(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CommandInvalid}
	}
	kind, ok := commandVerbs[fields[0]]
	if !ok {
		kind = CommandInvalid
	}
	return Command{Kind: kind, Verb: fields[0], Args: fields[1:]}
}

// AdventureSummary is a snapshot of a session for remote clients.
type AdventureSummary struct {
	Player    string            `json:"player" jsonschema:"Player name"`
	Room      string            `json:"room" jsonschema:"Current room name"`
	Items     []string          `json:"items" jsonschema:"Items lying in the current room"`
	Exits     map[string]string `json:"exits" jsonschema:"Exits of the current room, direction to room"`
	Inventory []string          `json:"inventory" jsonschema:"Items carried by the player"`
	Alive     bool              `json:"alive" jsonschema:"Whether the game is still running"`
	Solved    []string          `json:"solved" jsonschema:"Rooms whose puzzle has been solved"`
}
