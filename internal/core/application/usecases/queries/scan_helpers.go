package queries

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"consolidation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

func uuidFrom(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalUUID(n uuid.NullUUID) (*kernel.UUID, error) {
	if !n.Valid {
		return nil, nil
	}
	id, err := uuidFrom(n.UUID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalTime(n sql.NullTime) *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}

func unmarshalJSON(raw []byte, target any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, target)
}
