package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomOccupyBed(t *testing.T) {
	room := Room{BedCapacity: 2, IsAvailable: true}

	assert.True(t, room.OccupyBed())
	assert.Equal(t, uint(1), room.OccupiedBeds)
	assert.True(t, room.IsAvailable)

	// last bed flips availability
	assert.True(t, room.OccupyBed())
	assert.Equal(t, uint(2), room.OccupiedBeds)
	assert.False(t, room.IsAvailable)

	// full room rejects without mutating
	assert.False(t, room.OccupyBed())
	assert.Equal(t, uint(2), room.OccupiedBeds)
}

func TestRoomReleaseBed(t *testing.T) {
	room := Room{BedCapacity: 2, OccupiedBeds: 2, IsAvailable: false}

	room.ReleaseBed()
	assert.Equal(t, uint(1), room.OccupiedBeds)
	assert.True(t, room.IsAvailable)

	room.ReleaseBed()
	assert.Equal(t, uint(0), room.OccupiedBeds)

	// releasing an empty room is a no-op
	room.ReleaseBed()
	assert.Equal(t, uint(0), room.OccupiedBeds)
}

func TestRoomOccupyReleaseCycle(t *testing.T) {
	room := Room{BedCapacity: 1, IsAvailable: true}

	assert.True(t, room.OccupyBed())
	assert.False(t, room.HasSpace())
	assert.False(t, room.OccupyBed())

	room.ReleaseBed()
	assert.True(t, room.HasSpace())
	assert.True(t, room.OccupyBed())
	assert.Equal(t, uint(1), room.OccupiedBeds)
}
