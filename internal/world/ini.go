package world

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/ini.v1"

	"knlang-arcade/internal/domain"
)

const (
	worldSection = "world"
	roomPrefix   = "room:"
	exitPrefix   = "exit."
)

// LoadINI reads a world description from path and validates it.
func LoadINI(path string) (*domain.World, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load world %s: %w", path, err)
	}
	return fromINI(cfg)
}

// ParseINI reads a world description from raw ini bytes and validates it.
//
// Layout:
//
//	[world]
//	start = Entrance
//
//	[room:Entrance]
//	description = You wake up in a weird room.
//	items = rusty key, old map
//	exit.north = Spooky Dungeon
//	puzzle = riddle
//	puzzle.riddle = What has keys but can't open locks?
//	puzzle.answer = piano
//	puzzle.exit = north
//	puzzle.target = Treasure Room
func ParseINI(data []byte) (*domain.World, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parse world: %w", err)
	}
	return fromINI(cfg)
}

func fromINI(cfg *ini.File) (*domain.World, error) {
	start := cfg.Section(worldSection).Key("start").MustString(string(domain.RoomEntrance))
	w := domain.NewWorld(domain.RoomName(start))

	for _, sec := range cfg.Sections() {
		if !strings.HasPrefix(sec.Name(), roomPrefix) {
			continue
		}
		room := &domain.Room{
			Name:        domain.RoomName(strings.TrimSpace(strings.TrimPrefix(sec.Name(), roomPrefix))),
			Description: sec.Key("description").String(),
			Exits:       make(map[domain.Direction]domain.RoomName),
		}
		if sec.HasKey("items") {
			for _, item := range sec.Key("items").Strings(",") {
				if item != "" {
					room.Items = append(room.Items, item)
				}
			}
		}
		for _, key := range sec.Keys() {
			if strings.HasPrefix(key.Name(), exitPrefix) {
				dir := domain.Direction(strings.TrimPrefix(key.Name(), exitPrefix))
				room.Exits[dir] = domain.RoomName(key.String())
			}
		}

		kind, err := domain.ParsePuzzleKind(sec.Key("puzzle").String())
		if err != nil {
			return nil, fmt.Errorf("room %s: %w", room.Name, err)
		}
		if kind != domain.PuzzleNone {
			room.Puzzle = domain.Puzzle{
				Kind:   kind,
				Key:    sec.Key("puzzle.key").String(),
				Hint:   sec.Key("puzzle.hint").String(),
				Riddle: sec.Key("puzzle.riddle").String(),
				Answer: sec.Key("puzzle.answer").String(),
				Exit:   domain.Direction(sec.Key("puzzle.exit").String()),
				Target: domain.RoomName(sec.Key("puzzle.target").String()),
			}
			if err := checkPuzzle(room); err != nil {
				return nil, err
			}
		}
		w.Add(room)
	}

	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world: %w", err)
	}
	return w, nil
}

func checkPuzzle(room *domain.Room) error {
	p := room.Puzzle
	if p.Exit == "" || p.Target == "" {
		return fmt.Errorf("room %s: puzzle needs puzzle.exit and puzzle.target", room.Name)
	}
	switch p.Kind {
	case domain.PuzzleLockedDoor:
		if p.Key == "" {
			return fmt.Errorf("room %s: locked door needs puzzle.key", room.Name)
		}
	case domain.PuzzleRiddle:
		if p.Answer == "" {
			return fmt.Errorf("room %s: riddle needs puzzle.answer", room.Name)
		}
	}
	return nil
}

// WriteINI serializes w in the layout ParseINI understands.
func WriteINI(w *domain.World, out io.Writer) error {
	cfg := ini.Empty()

	sec, err := cfg.NewSection(worldSection)
	if err != nil {
		return err
	}
	sec.Key("start").SetValue(string(w.Start))

	for _, name := range w.Order {
		room := w.Rooms[name]
		sec, err := cfg.NewSection(roomPrefix + string(room.Name))
		if err != nil {
			return err
		}
		sec.Key("description").SetValue(room.Description)
		if len(room.Items) > 0 {
			sec.Key("items").SetValue(strings.Join(room.Items, ", "))
		}
		for _, dir := range room.ExitDirections() {
			sec.Key(exitPrefix + string(dir)).SetValue(string(room.Exits[dir]))
		}
		p := room.Puzzle
		if p.Kind == domain.PuzzleNone {
			continue
		}
		sec.Key("puzzle").SetValue(p.Kind.String())
		setIfPresent(sec, "puzzle.key", p.Key)
		setIfPresent(sec, "puzzle.hint", p.Hint)
		setIfPresent(sec, "puzzle.riddle", p.Riddle)
		setIfPresent(sec, "puzzle.answer", p.Answer)
		sec.Key("puzzle.exit").SetValue(string(p.Exit))
		sec.Key("puzzle.target").SetValue(string(p.Target))
	}

	_, err = cfg.WriteTo(out)
	return err
}

func setIfPresent(sec *ini.Section, key, value string) {
	if value != "" {
		sec.Key(key).SetValue(value)
	}
}
