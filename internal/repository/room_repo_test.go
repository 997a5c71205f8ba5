package repository

import (
	"errors"
	"sync"
	"testing"

	"hospital-management-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOccupyBedLastBedSingleWinner(t *testing.T) {
	db := newTestDB(t, &models.Room{})
	repo := NewRoomRepo(db)

	room := models.Room{RoomNumber: "101", RoomType: "General", BedCapacity: 1, IsAvailable: true}
	require.NoError(t, repo.CreateRoom(&room))

	const attempts = 8
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- db.Transaction(func(tx *gorm.DB) error {
				return repo.OccupyBed(tx, room.ID)
			})
		}()
	}
	wg.Wait()
	close(results)

	occupied, rejected := 0, 0
	for err := range results {
		switch {
		case err == nil:
			occupied++
		case errors.Is(err, models.ErrCapacityExceeded):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, occupied)
	assert.Equal(t, attempts-1, rejected)

	got, err := repo.GetRoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.OccupiedBeds)
	assert.False(t, got.IsAvailable)
}

func TestOccupyBedGuardAtCapacity(t *testing.T) {
	db := newTestDB(t, &models.Room{})
	repo := NewRoomRepo(db)

	room := models.Room{RoomNumber: "102", RoomType: "General", BedCapacity: 2, IsAvailable: true}
	require.NoError(t, repo.CreateRoom(&room))

	occupy := func() error {
		return db.Transaction(func(tx *gorm.DB) error {
			return repo.OccupyBed(tx, room.ID)
		})
	}
	release := func() error {
		return db.Transaction(func(tx *gorm.DB) error {
			return repo.ReleaseBed(tx, room.ID)
		})
	}

	require.NoError(t, occupy())
	require.NoError(t, occupy())
	assert.ErrorIs(t, occupy(), models.ErrCapacityExceeded)

	got, err := repo.GetRoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), got.OccupiedBeds)
	assert.False(t, got.IsAvailable)

	// releasing frees a bed and reopens the room
	require.NoError(t, release())
	got, err = repo.GetRoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.OccupiedBeds)
	assert.True(t, got.IsAvailable)

	require.NoError(t, occupy())
}

func TestReleaseBedEmptyRoomIsNoOp(t *testing.T) {
	db := newTestDB(t, &models.Room{})
	repo := NewRoomRepo(db)

	room := models.Room{RoomNumber: "103", RoomType: "ICU", BedCapacity: 1, IsAvailable: true}
	require.NoError(t, repo.CreateRoom(&room))

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return repo.ReleaseBed(tx, room.ID)
	}))

	got, err := repo.GetRoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(0), got.OccupiedBeds)
}
