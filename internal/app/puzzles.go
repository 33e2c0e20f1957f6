package app

import (
	"context"

	"knlang-arcade/internal/domain"
	"knlang-arcade/internal/prompt"
)

// interact fires the current room's puzzle. A solved puzzle never fires again.
func (s *AdventureSession) interact(ctx context.Context) error {
	room := s.Room()
	if room.Puzzle.Kind == domain.PuzzleNone {
		s.println("Nothing here wants to interact with you.")
		return nil
	}
	if room.Solved {
		s.println("You already solved this one. Show-off.")
		return nil
	}

	switch room.Puzzle.Kind {
	case domain.PuzzleLockedDoor:
		s.tryLockedDoor(room)
	case domain.PuzzleRiddle:
		return s.tryRiddle(ctx, room)
	}
	return nil
}

func (s *AdventureSession) tryLockedDoor(room *domain.Room) {
	p := room.Puzzle
	if !s.player.Holds(p.Key) {
		hint := p.Hint
		if hint == "" {
			hint = "The door does not budge."
		}
		s.println(hint)
		return
	}
	s.printf("You unlock the door with the %s. The door sighs in relief.\n", p.Key)
	solve(room)
}

func (s *AdventureSession) tryRiddle(ctx context.Context, room *domain.Room) error {
	p := room.Puzzle
	if p.Riddle != "" {
		s.println(p.Riddle)
	}
	answer, err := s.in.ReadLine(ctx, "Your answer: ")
	if err != nil && !prompt.IsClosed(err) {
		return err
	}
	if !sameAnswer(answer, p.Answer) {
		s.println("Wrong! The tablet laughs at your IQ.")
		return nil
	}
	s.println("Correct! A hidden passage opens.")
	solve(room)
	return nil
}

func solve(room *domain.Room) {
	room.Solved = true
	room.Exits[room.Puzzle.Exit] = room.Puzzle.Target
}
