package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knlang-arcade/internal/domain"
	"knlang-arcade/internal/infra/memory"
	"knlang-arcade/internal/world"
)

func TestHandleCommandPlaysAdventure(t *testing.T) {
	registry := memory.NewSessionRegistry()
	server := NewServer(world.Builtin(), registry)
	ctx := context.Background()
	require.Equal(t, 1, registry.Count())

	_, out, err := server.HandleCommand(ctx, nil, &CommandInput{Command: "go east"})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "---- Riddle Room ----")
	assert.Equal(t, string(domain.RoomRiddle), out.State.Room)

	_, out, err = server.HandleCommand(ctx, nil, &CommandInput{Command: "interact", Answer: "PIANO"})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "Correct! A hidden passage opens.")
	assert.Equal(t, string(domain.RoomTreasure), out.State.Exits["north"])
	assert.Equal(t, []string{string(domain.RoomRiddle)}, out.State.Solved)
}

func TestHandleCommandEmptyLooks(t *testing.T) {
	server := NewServer(world.Builtin(), memory.NewSessionRegistry())

	_, out, err := server.HandleCommand(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Contains(t, out.Output, "---- Entrance ----")
	assert.True(t, out.State.Alive)
}

func TestHandleCommandResetStartsOver(t *testing.T) {
	registry := memory.NewSessionRegistry()
	server := NewServer(world.Builtin(), registry)
	ctx := context.Background()

	_, _, err := server.HandleCommand(ctx, nil, &CommandInput{Command: "go north"})
	require.NoError(t, err)
	_, out, err := server.HandleCommand(ctx, nil, &CommandInput{Reset: true})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "Welcome to the Mysterious Land of KN-Lang!")
	assert.Equal(t, string(domain.RoomEntrance), out.State.Room)
	assert.Equal(t, 1, registry.Count())

	_, out, err = server.HandleCommand(ctx, nil, &CommandInput{Command: "quit"})
	require.NoError(t, err)
	assert.False(t, out.State.Alive)

	// a finished game restarts on the next command
	_, out, err = server.HandleCommand(ctx, nil, &CommandInput{Command: "go north"})
	require.NoError(t, err)
	assert.True(t, out.State.Alive)
	assert.Contains(t, out.Output, "Welcome to the Mysterious Land of KN-Lang!")
	assert.Contains(t, out.Output, "---- Spooky Dungeon ----")
	assert.Equal(t, string(domain.RoomSpookyDungeon), out.State.Room)

	_, out, err = server.HandleCommand(ctx, nil, &CommandInput{Command: "look", Reset: true})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "Welcome to the Mysterious Land of KN-Lang!")
	assert.Equal(t, string(domain.RoomEntrance), out.State.Room)

	server.Close()
	assert.Equal(t, 0, registry.Count())
}
