package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// RoleCounter holds the sequential registration-code counter for each role.
// Allocation happens inside the registration transaction with a conditional
// UPDATE so concurrently issued codes stay monotonic and unique.
type RoleCounter struct {
	ent.Schema
}

func (RoleCounter) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (RoleCounter) Fields() []ent.Field {
	return []ent.Field{
		field.String("role").
			Unique().
			NotEmpty().
			MaxLen(20),

		field.Int64("next_seq").
			Default(1).
			Positive().
			Comment("Next sequence number to hand out"),
	}
}
