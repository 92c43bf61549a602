package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByNumber(ctx context.Context, number string) (*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Occupancy. Reserve is a single conditional update: the availability
	// check and the flip happen in one statement, so two concurrent
	// reservations can never both succeed.
	Reserve(ctx context.Context, id uuid.UUID) (bool, error)
	Release(ctx context.Context, id uuid.UUID) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, number, room_type, bed_type, price, img, is_available, is_hidden, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.Number,
		room.RoomType,
		room.BedType,
		room.Price,
		room.Img,
		room.IsAvailable,
		room.IsHidden,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("number", room.Number),
		)
		return fmt.Errorf("create room %s: %w", room.Number, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, number, room_type, bed_type, price, img, is_available, is_hidden, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Number,
		&room.RoomType,
		&room.BedType,
		&room.Price,
		&room.Img,
		&room.IsAvailable,
		&room.IsHidden,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) FindByNumber(ctx context.Context, number string) (*entity.Room, error) {
	query := `
		SELECT id, number, room_type, bed_type, price, img, is_available, is_hidden, created_at, updated_at
		FROM rooms
		WHERE number = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, number).Scan(
		&room.ID,
		&room.Number,
		&room.RoomType,
		&room.BedType,
		&room.Price,
		&room.Img,
		&room.IsAvailable,
		&room.IsHidden,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by number",
			zap.Error(err),
			zap.String("number", number),
		)
		return nil, fmt.Errorf("find room by number %s: %w", number, err)
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT id, number, room_type, bed_type, price, img, is_available, is_hidden, created_at, updated_at
		FROM rooms
		ORDER BY number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all rooms", zap.Error(err))
		return nil, fmt.Errorf("find all rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.Number,
			&room.RoomType,
			&room.BedType,
			&room.Price,
			&room.Img,
			&room.IsAvailable,
			&room.IsHidden,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET number = $2, room_type = $3, bed_type = $4, price = $5, img = $6,
		    is_hidden = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.Number,
		room.RoomType,
		room.BedType,
		room.Price,
		room.Img,
		room.IsHidden,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	r.log.Info("Room deleted", zap.String("room_id", id.String()))
	return nil
}

// Reserve flips is_available to false if and only if it is currently true.
// Returns false when the room is already held (or does not exist).
func (r *roomRepository) Reserve(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE rooms
		SET is_available = false, updated_at = NOW()
		WHERE id = $1 AND is_available = true
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to reserve room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return false, fmt.Errorf("reserve room %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// Release is idempotent: releasing an already-available room is a no-op.
func (r *roomRepository) Release(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE rooms
		SET is_available = true, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to release room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("release room %s: %w", id.String(), err)
	}

	return nil
}
