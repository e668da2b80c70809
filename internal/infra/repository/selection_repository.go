package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/Murtaza813/Takhteet/internal/domain"
)

const selectionKeyPrefix = "takhteet:selection:"

// selectionRepository keeps manual murajjah selections in a redis hash per
// student: one field per weekday slot, value a JSON array of juz indices.
// Selections are user-curated configuration, so no TTL is applied.
type selectionRepository struct {
	client *redis.Client
}

func NewSelectionRepository(client *redis.Client) domain.SelectionStore {
	return &selectionRepository{client: client}
}

func (r *selectionRepository) Toggle(ctx context.Context, student string, slot, juz int) (bool, error) {
	if slot < 1 || slot > domain.SlotCount {
		return false, domain.ErrInvalidSlot
	}
	if juz < 1 || juz > domain.JuzCount {
		return false, domain.ErrInvalidJuz
	}

	key := selectionKeyPrefix + student
	field := strconv.Itoa(slot)

	units, err := r.readSlot(ctx, key, field)
	if err != nil {
		return false, err
	}

	m := domain.SelectionMap{slot: units}
	selected := m.Toggle(slot, juz)

	if len(m[slot]) == 0 {
		if err := r.client.HDel(ctx, key, field).Err(); err != nil {
			return false, err
		}
		return selected, nil
	}

	data, err := json.Marshal(m[slot])
	if err != nil {
		return false, ErrInvalidSelectionData
	}
	if err := r.client.HSet(ctx, key, field, data).Err(); err != nil {
		return false, err
	}
	return selected, nil
}

func (r *selectionRepository) Get(ctx context.Context, student string) (domain.SelectionMap, error) {
	fields, err := r.client.HGetAll(ctx, selectionKeyPrefix+student).Result()
	if err != nil {
		return nil, err
	}

	selections := make(domain.SelectionMap, len(fields))
	for field, raw := range fields {
		slot, err := strconv.Atoi(field)
		if err != nil {
			return nil, ErrInvalidSelectionData
		}
		var units []int
		if err := json.Unmarshal([]byte(raw), &units); err != nil {
			return nil, ErrInvalidSelectionData
		}
		selections[slot] = units
	}
	return selections, nil
}

func (r *selectionRepository) Clear(ctx context.Context, student string, slot int) error {
	if slot < 1 || slot > domain.SlotCount {
		return domain.ErrInvalidSlot
	}
	return r.client.HDel(ctx, selectionKeyPrefix+student, strconv.Itoa(slot)).Err()
}

func (r *selectionRepository) readSlot(ctx context.Context, key, field string) ([]int, error) {
	raw, err := r.client.HGet(ctx, key, field).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var units []int
	if err := json.Unmarshal([]byte(raw), &units); err != nil {
		return nil, ErrInvalidSelectionData
	}
	return units, nil
}
