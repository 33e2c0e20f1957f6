package world

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knlang-arcade/internal/domain"
)

func TestBuiltinWorldIsValid(t *testing.T) {
	w := Builtin()
	require.NoError(t, w.Validate())
	assert.Equal(t, domain.RoomEntrance, w.Start)
	assert.Len(t, w.Rooms, 5)

	treasure, ok := w.Room(domain.RoomTreasure)
	require.True(t, ok)
	assert.Empty(t, treasure.Exits)
	assert.Equal(t, []string{"golden trophy"}, treasure.Items)
}

func TestBuiltinReturnsIndependentCopies(t *testing.T) {
	a := Builtin()
	b := Builtin()

	dungeon, _ := a.Room(domain.RoomSpookyDungeon)
	dungeon.RemoveItem("rusty key")

	other, _ := b.Room(domain.RoomSpookyDungeon)
	assert.Equal(t, []string{"rusty key"}, other.Items)
}

func TestINIRoundTripKeepsBuiltinWorld(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteINI(Builtin(), &buf))

	loaded, err := ParseINI(buf.Bytes())
	require.NoError(t, err)

	want := Builtin()
	assert.Equal(t, want.Order, loaded.Order)
	for _, name := range want.Order {
		assert.Equal(t, want.Rooms[name], loaded.Rooms[name], "room %s", name)
	}
}

func TestParseINIRejectsDanglingExit(t *testing.T) {
	data := []byte(`
[world]
start = Hall

[room:Hall]
description = A hall.
exit.north = Nowhere
`)
	_, err := ParseINI(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDanglingExit), "got %v", err)
}

func TestParseINIRejectsUnreachableRoom(t *testing.T) {
	data := []byte(`
[world]
start = Hall

[room:Hall]
description = A hall.

[room:Attic]
description = Dusty.
`)
	_, err := ParseINI(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnreachableRoom), "got %v", err)
}

func TestParseINIAllowsPuzzleOnlyReachableRoom(t *testing.T) {
	data := []byte(`
[world]
start = Hall

[room:Hall]
description = A hall with a speaking mirror.
puzzle = riddle
puzzle.riddle = What gets wetter the more it dries?
puzzle.answer = towel
puzzle.exit = up
puzzle.target = Attic

[room:Attic]
description = Dusty.
items = old map
`)
	w, err := ParseINI(data)
	require.NoError(t, err)

	hall, ok := w.Room("Hall")
	require.True(t, ok)
	assert.Equal(t, domain.PuzzleRiddle, hall.Puzzle.Kind)
	assert.Equal(t, domain.Direction("up"), hall.Puzzle.Exit)
	assert.Empty(t, hall.Exits)
}

func TestParseINIRejectsIncompletePuzzle(t *testing.T) {
	data := []byte(`
[room:Entrance]
description = Door.
puzzle = locked_door
puzzle.exit = east
puzzle.target = Entrance
`)
	_, err := ParseINI(data)
	assert.ErrorContains(t, err, "puzzle.key")
}
