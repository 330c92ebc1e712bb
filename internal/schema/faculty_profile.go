package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// FacultyProfile extends a faculty user with academic credentials, consultation
// settings and weekly availability. The public subset (name, title, department)
// is mirrored into directory_entries on save.
type FacultyProfile struct {
	ent.Schema
}

func (FacultyProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (FacultyProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("profile_id").
			Default("profile01").
			MaxLen(36),

		// academic info
		field.String("employee_number").
			Optional().
			Nillable().
			MaxLen(50),

		field.String("title").
			Optional().
			Nillable().
			MaxLen(100).
			Comment("e.g. Assistant Professor"),

		field.String("department").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("office").
			Optional().
			Nillable().
			MaxLen(100),

		field.JSON("expertise", []string{}).
			Optional(),

		field.JSON("education", []string{}).
			Optional(),

		field.Int("publication_count").
			Default(0).
			NonNegative(),

		field.Int("years_experience").
			Default(0).
			NonNegative(),

		// consultation settings
		field.Int("default_duration_min").
			Default(30).
			Positive(),

		field.Int("max_daily_appointments").
			Default(8).
			Positive(),

		field.Int("buffer_minutes").
			Default(10).
			NonNegative(),

		field.Int("advance_booking_days").
			Default(14).
			Positive(),

		field.JSON("allowed_consultation_types", []string{}).
			Optional(),

		// availability
		field.JSON("weekly_schedule", map[string][]string{}).
			Optional().
			Comment("weekday → list of HH:MM-HH:MM windows"),

		field.String("time_zone").
			Default("UTC").
			MaxLen(64),
	}
}

func (FacultyProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "profile_id").Unique(),
	}
}

func (FacultyProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
	}
}
