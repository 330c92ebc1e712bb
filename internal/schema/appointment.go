package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booking request between one student and one faculty member.
// It is the only multi-state entity in the system.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("student_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("faculty_id", uuid.UUID{}).
			Comment("FK → users.id"),

		// Party names/emails are denormalized at creation so listings and
		// notification bodies never need a join against users.
		field.String("student_name").
			NotEmpty().
			MaxLen(201),

		field.String("student_email").
			NotEmpty().
			MaxLen(255),

		field.String("faculty_name").
			NotEmpty().
			MaxLen(201),

		field.String("faculty_email").
			NotEmpty().
			MaxLen(255),

		field.Time("requested_time").
			Immutable(),

		field.Time("reschedule_time").
			Optional().
			Nillable().
			Comment("Set only alongside a transition to rescheduled"),

		field.Text("reason").
			NotEmpty(),

		field.Enum("status").
			Values("pending", "accepted", "declined", "rescheduled", "cancelled").
			Default("pending"),

		field.String("meeting_link").
			Optional().
			Nillable().
			MaxLen(255).
			Comment("Derived from the appointment id on acceptance"),

		// faculty annotations
		field.Text("faculty_notes").
			Optional().
			Nillable(),

		field.Time("notes_updated_at").
			Optional().
			Nillable(),

		// student annotations
		field.Text("student_feedback").
			Optional().
			Nillable(),

		field.Int("student_rating").
			Optional().
			Nillable().
			Min(1).
			Max(5),

		field.Time("feedback_submitted_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "status"),
		index.Fields("faculty_id", "status", "requested_time"),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("student", User.Type).
			Unique().
			Required().
			Field("student_id"),

		edge.To("faculty", User.Type).
			Unique().
			Required().
			Field("faculty_id"),
	}
}
