package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/frenchie/internal/migration"
	"github.com/example/frenchie/pkg/models"
)

// EncodeProgress serializes a progress map into the versioned envelope
func EncodeProgress(progress models.ProgressMap) (string, error) {
	data, err := json.Marshal(models.StoredProgress{
		Version: models.ProgressSchemaVersion,
		Entries: migration.EncodeMap(progress),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode progress: %w", err)
	}
	return string(data), nil
}

// DecodeProgress parses a stored progress value. Both the versioned envelope and
// the bare legacy object are accepted. Records are returned as stored; upgrading
// them is migration's job.
func DecodeProgress(value string) (map[string]models.StoredReviewState, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "null" {
		return map[string]models.StoredReviewState{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(value), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	if isEnvelope(fields) {
		var stored models.StoredProgress
		if err := json.Unmarshal([]byte(value), &stored); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if stored.Version > models.ProgressSchemaVersion {
			return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, stored.Version)
		}
		if stored.Entries == nil {
			stored.Entries = map[string]models.StoredReviewState{}
		}
		return stored.Entries, nil
	}

	legacy := make(map[string]models.StoredReviewState, len(fields))
	for id, raw := range fields {
		var rec models.StoredReviewState
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%w: entry %s: %v", ErrCorrupt, id, err)
		}
		legacy[id] = rec
	}
	return legacy, nil
}

// isEnvelope tells the versioned envelope from a legacy object keyed by item id
func isEnvelope(fields map[string]json.RawMessage) bool {
	version, ok := fields["version"]
	if !ok {
		return false
	}
	if _, ok := fields["entries"]; !ok {
		return false
	}
	// a legacy entry for an item called "version" would be an object
	return !bytes.HasPrefix(bytes.TrimSpace(version), []byte("{"))
}

// EncodeStreak serializes a streak state
func EncodeStreak(state models.StreakState) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to encode streak: %w", err)
	}
	return string(data), nil
}

// DecodeStreak parses a stored streak state
func DecodeStreak(value string) (models.StreakState, error) {
	var state models.StreakState
	if err := json.Unmarshal([]byte(value), &state); err != nil {
		return models.StreakState{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if state.CurrentStreak < 0 || state.LongestStreak < 0 {
		return models.StreakState{}, fmt.Errorf("%w: negative streak", ErrCorrupt)
	}
	return state, nil
}

// DecodeIndex parses the stored current card index
func DecodeIndex(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: index %q", ErrCorrupt, value)
	}
	return n, nil
}
