package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Notification is a per-recipient record written by the fan-out worker whenever
// an appointment changes state. Recipients may delete them individually or all
// at once; otherwise retention is unbounded.
type Notification struct {
	ent.Schema
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("recipient_id", uuid.UUID{}).
			Comment("Target user"),

		field.UUID("sender_id", uuid.UUID{}).
			Comment("User whose action produced the notification"),

		field.Enum("type").
			Values(
				"appointment_request",
				"appointment_accepted",
				"appointment_declined",
				"appointment_rescheduled",
				"faculty_notes",
			),

		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.Text("body").
			Optional().
			Nillable(),

		field.UUID("appointment_id", uuid.UUID{}).
			Comment("Snapshot ref to appointments.id (non-FK, survives appointment deletion)"),

		field.Bool("is_read").
			Default(false),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_id", "is_read", "created_at"),
	}
}

func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("recipient", User.Type).
			Unique().
			Required().
			Field("recipient_id"),
	}
}
