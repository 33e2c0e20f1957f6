// Package world builds adventure worlds, either the builtin KN-Lang map or one
// described by an ini file.
package world

import "knlang-arcade/internal/domain"

const (
	rustyKey     = "rusty key"
	goldenTrophy = "golden trophy"
)

// Builtin returns a fresh copy of the KN-Lang map.
func Builtin() *domain.World {
	w := domain.NewWorld(domain.RoomEntrance)
	w.Add(&domain.Room{
		Name:        domain.RoomEntrance,
		Description: "You wake up in a weird room. Smells like deadlines.",
		Exits: map[domain.Direction]domain.RoomName{
			domain.North: domain.RoomSpookyDungeon,
			domain.East:  domain.RoomRiddle,
		},
	})
	w.Add(&domain.Room{
		Name:        domain.RoomSpookyDungeon,
		Description: "Damp walls, moldy smell, and a distant snore...",
		Items:       []string{rustyKey},
		Exits: map[domain.Direction]domain.RoomName{
			domain.South: domain.RoomEntrance,
			domain.West:  domain.RoomLockedDoor,
		},
	})
	w.Add(&domain.Room{
		Name:        domain.RoomLockedDoor,
		Description: "A giant locked door blocks your way.",
		Exits: map[domain.Direction]domain.RoomName{
			domain.East: domain.RoomSpookyDungeon,
		},
		Puzzle: domain.Puzzle{
			Kind:   domain.PuzzleLockedDoor,
			Key:    rustyKey,
			Hint:   "The door stares at you blankly. Perhaps it's missing something, like a key?",
			Exit:   domain.East,
			Target: domain.RoomTreasure,
		},
	})
	w.Add(&domain.Room{
		Name:        domain.RoomRiddle,
		Description: "A glowing tablet floats mysteriously.",
		Exits: map[domain.Direction]domain.RoomName{
			domain.West: domain.RoomEntrance,
		},
		Puzzle: domain.Puzzle{
			Kind:   domain.PuzzleRiddle,
			Riddle: "A stone tablet asks: 'What has keys but can't open locks?'",
			Answer: "piano",
			Exit:   domain.North,
			Target: domain.RoomTreasure,
		},
	})
	w.Add(&domain.Room{
		Name:        domain.RoomTreasure,
		Description: "You found the treasure! Also free snacks.",
		Items:       []string{goldenTrophy},
	})
	return w
}
