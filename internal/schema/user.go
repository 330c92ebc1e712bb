package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			NotEmpty().
			MaxLen(100),

		field.String("last_name").
			NotEmpty().
			MaxLen(100),

		field.String("email").
			Unique().
			NotEmpty().
			MaxLen(255),

		field.Enum("role").
			Values("student", "faculty"),

		// Sequential human-readable code, e.g. STU-000123 / FAC-000042.
		// Allocated from the role_counters table inside the registration transaction.
		field.String("registration_code").
			Unique().
			NotEmpty().
			MaxLen(16).
			Immutable(),

		field.String("password_hash").
			NotEmpty().
			Sensitive(),

		field.Bool("email_verified").Default(false),

		field.Time("email_verified_at").
			Optional().
			Nillable(),

		field.Bool("profile_complete").Default(false),

		// Pointer to the active role profile document.
		field.String("profile_id").
			Default("profile01").
			MaxLen(36),

		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),

		field.Time("last_failed_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{}
}
