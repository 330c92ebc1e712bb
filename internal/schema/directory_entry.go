package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DirectoryEntry is the denormalized, student-readable projection of a faculty
// profile. It is refreshed by the directory sync worker after a faculty profile
// save and is allowed to lag behind the source of truth.
type DirectoryEntry struct {
	ent.Schema
}

func (DirectoryEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeStampedMixin{},
	}
}

func (DirectoryEntry) Fields() []ent.Field {
	return []ent.Field{
		// Keyed by the faculty user id rather than a surrogate id, matching the
		// directory/{uid} addressing scheme.
		field.UUID("id", uuid.UUID{}).
			Immutable().
			Comment("faculty users.id"),

		field.String("name").
			NotEmpty().
			MaxLen(201),

		field.String("email").
			NotEmpty().
			MaxLen(255),

		field.String("role").
			Default("faculty").
			MaxLen(20),

		field.String("title").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("department").
			Optional().
			Nillable().
			MaxLen(100),
	}
}

func (DirectoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("department"),
	}
}
