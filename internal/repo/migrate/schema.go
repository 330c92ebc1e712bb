// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "student_name", Type: field.TypeString, Size: 201},
		{Name: "student_email", Type: field.TypeString, Size: 255},
		{Name: "faculty_name", Type: field.TypeString, Size: 201},
		{Name: "faculty_email", Type: field.TypeString, Size: 255},
		{Name: "requested_time", Type: field.TypeTime},
		{Name: "reschedule_time", Type: field.TypeTime, Nullable: true},
		{Name: "reason", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "declined", "rescheduled", "cancelled"}, Default: "pending"},
		{Name: "meeting_link", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "faculty_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notes_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "student_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "student_rating", Type: field.TypeInt, Nullable: true},
		{Name: "feedback_submitted_at", Type: field.TypeTime, Nullable: true},
		{Name: "student_id", Type: field.TypeUUID},
		{Name: "faculty_id", Type: field.TypeUUID},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_users_student",
				Columns:    []*schema.Column{AppointmentsColumns[17]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "appointments_users_faculty",
				Columns:    []*schema.Column{AppointmentsColumns[18]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_student_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[17], AppointmentsColumns[10]},
			},
			{
				Name:    "appointment_faculty_id_status_requested_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[18], AppointmentsColumns[10], AppointmentsColumns[7]},
			},
		},
	}
	// DirectoryEntriesColumns holds the columns for the "directory_entries" table.
	DirectoryEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 201},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "role", Type: field.TypeString, Size: 20, Default: "faculty"},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "department", Type: field.TypeString, Nullable: true, Size: 100},
	}
	// DirectoryEntriesTable holds the schema information for the "directory_entries" table.
	DirectoryEntriesTable = &schema.Table{
		Name:       "directory_entries",
		Columns:    DirectoryEntriesColumns,
		PrimaryKey: []*schema.Column{DirectoryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "directoryentry_department",
				Unique:  false,
				Columns: []*schema.Column{DirectoryEntriesColumns[7]},
			},
		},
	}
	// FacultyProfilesColumns holds the columns for the "faculty_profiles" table.
	FacultyProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeString, Size: 36, Default: "profile01"},
		{Name: "employee_number", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "department", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "office", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "expertise", Type: field.TypeJSON, Nullable: true},
		{Name: "education", Type: field.TypeJSON, Nullable: true},
		{Name: "publication_count", Type: field.TypeInt, Default: 0},
		{Name: "years_experience", Type: field.TypeInt, Default: 0},
		{Name: "default_duration_min", Type: field.TypeInt, Default: 30},
		{Name: "max_daily_appointments", Type: field.TypeInt, Default: 8},
		{Name: "buffer_minutes", Type: field.TypeInt, Default: 10},
		{Name: "advance_booking_days", Type: field.TypeInt, Default: 14},
		{Name: "allowed_consultation_types", Type: field.TypeJSON, Nullable: true},
		{Name: "weekly_schedule", Type: field.TypeJSON, Nullable: true},
		{Name: "time_zone", Type: field.TypeString, Size: 64, Default: "UTC"},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// FacultyProfilesTable holds the schema information for the "faculty_profiles" table.
	FacultyProfilesTable = &schema.Table{
		Name:       "faculty_profiles",
		Columns:    FacultyProfilesColumns,
		PrimaryKey: []*schema.Column{FacultyProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "faculty_profiles_users_user",
				Columns:    []*schema.Column{FacultyProfilesColumns[19]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "facultyprofile_user_id_profile_id",
				Unique:  true,
				Columns: []*schema.Column{FacultyProfilesColumns[19], FacultyProfilesColumns[3]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "sender_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"appointment_request", "appointment_accepted", "appointment_declined", "appointment_rescheduled", "faculty_notes"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "appointment_id", Type: field.TypeUUID},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "recipient_id", Type: field.TypeUUID},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_recipient",
				Columns:    []*schema.Column{NotificationsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_recipient_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[8], NotificationsColumns[7], NotificationsColumns[1]},
			},
		},
	}
	// RoleCountersColumns holds the columns for the "role_counters" table.
	RoleCountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "role", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "next_seq", Type: field.TypeInt64, Default: 1},
	}
	// RoleCountersTable holds the schema information for the "role_counters" table.
	RoleCountersTable = &schema.Table{
		Name:       "role_counters",
		Columns:    RoleCountersColumns,
		PrimaryKey: []*schema.Column{RoleCountersColumns[0]},
	}
	// StudentProfilesColumns holds the columns for the "student_profiles" table.
	StudentProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeString, Size: 36, Default: "profile01"},
		{Name: "student_number", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "year", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "major", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "department", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "gpa", Type: field.TypeFloat64, Nullable: true},
		{Name: "expected_graduation", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "preferred_departments", Type: field.TypeJSON, Nullable: true},
		{Name: "consultation_types", Type: field.TypeJSON, Nullable: true},
		{Name: "total_appointments", Type: field.TypeInt, Default: 0},
		{Name: "completed_appointments", Type: field.TypeInt, Default: 0},
		{Name: "cancelled_appointments", Type: field.TypeInt, Default: 0},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// StudentProfilesTable holds the schema information for the "student_profiles" table.
	StudentProfilesTable = &schema.Table{
		Name:       "student_profiles",
		Columns:    StudentProfilesColumns,
		PrimaryKey: []*schema.Column{StudentProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "student_profiles_users_user",
				Columns:    []*schema.Column{StudentProfilesColumns[15]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "studentprofile_user_id_profile_id",
				Unique:  true,
				Columns: []*schema.Column{StudentProfilesColumns[15], StudentProfilesColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"student", "faculty"}},
		{Name: "registration_code", Type: field.TypeString, Unique: true, Size: 16},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "email_verified_at", Type: field.TypeTime, Nullable: true},
		{Name: "profile_complete", Type: field.TypeBool, Default: false},
		{Name: "profile_id", Type: field.TypeString, Size: 36, Default: "profile01"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "last_failed_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		DirectoryEntriesTable,
		FacultyProfilesTable,
		NotificationsTable,
		RoleCountersTable,
		StudentProfilesTable,
		UsersTable,
		UserSessionsTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = UsersTable
	AppointmentsTable.ForeignKeys[1].RefTable = UsersTable
	FacultyProfilesTable.ForeignKeys[0].RefTable = UsersTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	StudentProfilesTable.ForeignKeys[0].RefTable = UsersTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
}
