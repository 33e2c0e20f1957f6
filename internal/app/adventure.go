package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"knlang-arcade/internal/domain"
	"knlang-arcade/internal/prompt"
)

// DefaultHeroName is used when a session is started without a player name.
const DefaultHeroName = "Unnamed Hero"

// AdventureSession owns one player walking through a private copy of a world.
type AdventureSession struct {
	world  *domain.World
	player *domain.Player
	in     prompt.Prompter
	out    io.Writer
}

// NewAdventureSession clones world, so sessions never share room state.
func NewAdventureSession(world *domain.World, playerName string, in prompt.Prompter, out io.Writer) *AdventureSession {
	if playerName == "" {
		playerName = DefaultHeroName
	}
	w := world.Clone()
	return &AdventureSession{
		world: w,
		player: &domain.Player{
			Name:     playerName,
			Location: w.Start,
			Alive:    true,
		},
		in:  in,
		out: out,
	}
}

// Player exposes the session's player; callers must not retain it across turns.
func (s *AdventureSession) Player() *domain.Player {
	return s.player
}

// Room returns the room the player stands in.
func (s *AdventureSession) Room() *domain.Room {
	return s.world.Rooms[s.player.Location]
}

// Lookup returns a room of this session's world.
func (s *AdventureSession) Lookup(name domain.RoomName) (*domain.Room, bool) {
	return s.world.Room(name)
}

// Alive reports whether the loop should keep going.
func (s *AdventureSession) Alive() bool {
	return s.player.Alive
}

// Start greets the player and shows the first room.
func (s *AdventureSession) Start() {
	s.println("Welcome to the Mysterious Land of KN-Lang!")
	s.showRoom()
}

// Run greets the player and processes commands until quit or end of input.
func (s *AdventureSession) Run(ctx context.Context) error {
	s.Start()
	for s.player.Alive {
		line, err := s.in.ReadLine(ctx, ">> ")
		if err != nil {
			if prompt.IsClosed(err) {
				s.quit()
				return nil
			}
			return err
		}
		if err := s.Execute(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

// Execute performs exactly one command. Gameplay failures are printed, never returned;
// the only error is a failing prompter while a puzzle asks for input.
func (s *AdventureSession) Execute(ctx context.Context, line string) error {
	cmd := domain.ParseCommand(line)
	switch cmd.Kind {
	case domain.CommandGo:
		// only the first word names the direction
		var dir domain.Direction
		if len(cmd.Args) > 0 {
			dir = domain.Direction(cmd.Args[0])
		}
		s.move(dir)
	case domain.CommandPick:
		s.pick(cmd.Arg())
	case domain.CommandLook:
		s.showRoom()
	case domain.CommandInventory:
		s.showInventory()
	case domain.CommandInteract:
		return s.interact(ctx)
	case domain.CommandQuit:
		s.quit()
	case domain.CommandHelp:
		s.showHelp()
	case domain.CommandInvalid:
		s.println("Invalid command. Your brain might need debugging.")
	}
	return nil
}

// ExecuteCaptured runs one command and returns what it printed with a state summary.
// answers feed any puzzle prompt the command raises.
func (s *AdventureSession) ExecuteCaptured(ctx context.Context, line string, answers ...string) (string, domain.AdventureSummary, error) {
	var buf bytes.Buffer
	prevOut, prevIn := s.out, s.in
	s.out, s.in = &buf, prompt.NewScript(answers...).WithEcho(&buf)
	defer func() {
		s.out, s.in = prevOut, prevIn
	}()

	var err error
	if strings.TrimSpace(line) == "" {
		s.showRoom()
	} else {
		err = s.Execute(ctx, line)
	}
	return buf.String(), s.Summary(), err
}

// Summary snapshots the session for remote clients.
func (s *AdventureSession) Summary() domain.AdventureSummary {
	room := s.Room()
	summary := domain.AdventureSummary{
		Player:    s.player.Name,
		Room:      string(room.Name),
		Items:     append([]string{}, room.Items...),
		Exits:     make(map[string]string, len(room.Exits)),
		Inventory: append([]string{}, s.player.Inventory...),
		Alive:     s.player.Alive,
		Solved:    []string{},
	}
	for dir, target := range room.Exits {
		summary.Exits[string(dir)] = string(target)
	}
	for _, name := range s.world.Order {
		if r := s.world.Rooms[name]; r.Puzzle.Kind != domain.PuzzleNone && r.Solved {
			summary.Solved = append(summary.Solved, string(name))
		}
	}
	return summary
}

func (s *AdventureSession) move(dir domain.Direction) {
	target, ok := s.Room().Exits[dir]
	if !ok || dir == "" {
		s.println("You bump into a wall. The wall does not apologize.")
		return
	}
	if _, ok := s.world.Room(target); !ok {
		s.println("You bump into a wall. The wall does not apologize.")
		return
	}
	s.player.Location = target
	s.printf("You walk %s like a majestic pigeon...\n", dir)
	s.showRoom()
}

func (s *AdventureSession) pick(item string) {
	room := s.Room()
	if item == "" || !room.RemoveItem(item) {
		s.println("You can't pick that. It's imaginary.")
		return
	}
	s.player.Inventory = append(s.player.Inventory, item)
	s.printf("You picked up the %s. Confidence level +10.\n", item)
}

func (s *AdventureSession) showRoom() {
	room := s.Room()
	s.printf("---- %s ----\n", room.Name)
	s.println(room.Description)
	if len(room.Items) > 0 {
		s.println("Items here: " + strings.Join(room.Items, ", "))
	} else {
		s.println("Nothing interesting. Just disappointment.")
	}
	if dirs := room.ExitDirections(); len(dirs) > 0 {
		labels := make([]string, len(dirs))
		for i, dir := range dirs {
			labels[i] = string(dir)
		}
		s.println("Exits: " + strings.Join(labels, ", "))
	}
}

func (s *AdventureSession) showInventory() {
	if len(s.player.Inventory) == 0 {
		s.println("Your pockets are empty. Your soul probably too.")
		return
	}
	s.println("You currently carry: " + strings.Join(s.player.Inventory, ", "))
}

func (s *AdventureSession) showHelp() {
	s.println("Commands: go <direction>, pick <item>, look, inventory, interact, quit, help")
}

func (s *AdventureSession) quit() {
	s.player.Alive = false
	s.println("You exit the game. The world cries softly.")
}

func (s *AdventureSession) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

func (s *AdventureSession) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}
