package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// StudentProfile is the extended academic record attached to a student user.
// One active document per student, addressed by (user_id, profile_id).
type StudentProfile struct {
	ent.Schema
}

func (StudentProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (StudentProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("profile_id").
			Default("profile01").
			MaxLen(36),

		// academic info
		field.String("student_number").
			Optional().
			Nillable().
			MaxLen(50),

		field.String("year").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("major").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("department").
			Optional().
			Nillable().
			MaxLen(100),

		field.Float("gpa").
			Optional().
			Nillable().
			Min(0).
			Max(4),

		field.String("expected_graduation").
			Optional().
			Nillable().
			MaxLen(20),

		// preferences
		field.JSON("preferred_departments", []string{}).
			Optional(),

		field.JSON("consultation_types", []string{}).
			Optional(),

		// rolling statistics, bumped at appointment transitions; advisory only
		field.Int("total_appointments").
			Default(0).
			NonNegative(),

		field.Int("completed_appointments").
			Default(0).
			NonNegative(),

		field.Int("cancelled_appointments").
			Default(0).
			NonNegative(),
	}
}

func (StudentProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "profile_id").Unique(),
	}
}

func (StudentProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
	}
}
