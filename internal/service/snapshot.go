package service

import (
	"time"

	"github.com/registrohq/registro/internal/models"
)

// personSnapshot renders a full pre-image of a person for audit storage.
func personSnapshot(p *models.Person) map[string]any {
	return normalizeSnapshot(map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"birthdate":   p.Birthdate,
		"gender":      p.Gender,
		"nationality": p.Nationality,
		"created_at":  p.CreatedAt,
		"updated_at":  p.UpdatedAt,
	})
}

// createSnapshot renders the create input for audit storage. Timestamps are
// included only when the caller supplied them (the CSV import path).
func createSnapshot(req models.CreatePersonRequest) map[string]any {
	snap := map[string]any{
		"name":        req.Name,
		"birthdate":   req.Birthdate,
		"gender":      req.Gender,
		"nationality": req.Nationality,
	}

	if req.CreatedAt != nil {
		snap["created_at"] = *req.CreatedAt
	}

	if req.UpdatedAt != nil {
		snap["updated_at"] = *req.UpdatedAt
	}

	return normalizeSnapshot(snap)
}

// updateSnapshot renders the update input for audit storage. The id and
// created_at are not part of the input, so they appear only in old_data.
func updateSnapshot(req models.UpdatePersonRequest) map[string]any {
	return normalizeSnapshot(map[string]any{
		"name":        req.Name,
		"birthdate":   req.Birthdate,
		"gender":      req.Gender,
		"nationality": req.Nationality,
	})
}

// normalizeSnapshot renders every date/time value in a snapshot as an
// ISO-8601 string, recursing through nested maps and slices so the stored
// JSON never depends on Go's native time encoding.
func normalizeSnapshot(snap map[string]any) map[string]any {
	out := make(map[string]any, len(snap))
	for k, v := range snap {
		out[k] = normalizeValue(v)
	}

	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return nil
		}
		return val.UTC().Format(time.RFC3339)
	case models.Date:
		return val.String()
	case *models.Date:
		if val == nil {
			return nil
		}
		return val.String()
	case map[string]any:
		return normalizeSnapshot(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}
