package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/readtrace/readtrace-backend/internal/models"
)

// normalizeContentRef resolves the ambiguous cardinality of a feed entry's
// content reference. Depending on which write path produced the entry, the
// stored value is a single document, a one-element array, null, or absent.
// Every shape maps to a nullable pointer here, in one place, so no caller
// ever sees the ambiguity.
func normalizeContentRef(raw bson.RawValue) (*models.ContentRef, error) {
	switch raw.Type {
	case bsontype.Type(0), bsontype.Null, bsontype.Undefined:
		// Field absent or explicitly null.
		return nil, nil
	case bsontype.EmbeddedDocument:
		var ref models.ContentRef
		if err := raw.Unmarshal(&ref); err != nil {
			return nil, fmt.Errorf("decode content ref: %w", err)
		}
		return &ref, nil
	case bsontype.Array:
		var refs []models.ContentRef
		if err := raw.Unmarshal(&refs); err != nil {
			return nil, fmt.Errorf("decode content ref array: %w", err)
		}
		if len(refs) == 0 {
			return nil, nil
		}
		return &refs[0], nil
	default:
		return nil, fmt.Errorf("unexpected content ref type %s", raw.Type)
	}
}
