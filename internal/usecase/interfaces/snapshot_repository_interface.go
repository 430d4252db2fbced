package interfaces

import (
	"context"
	"encoding/json"
)

// ISnapshotRepository abstracts the single-key blob store holding the
// persisted simulator state.
//
// Contract:
//   - Save overwrites the record under the given key.
//   - Load returns nil with no error when no record exists for the key.

type ISnapshotRepository interface {
	Save(ctx context.Context, key string, record json.RawMessage) error
	Load(ctx context.Context, key string) (json.RawMessage, error)
}
