// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/proflink/proflink_backend/internal/repo/appointment"
	"github.com/proflink/proflink_backend/internal/repo/directoryentry"
	"github.com/proflink/proflink_backend/internal/repo/facultyprofile"
	"github.com/proflink/proflink_backend/internal/repo/notification"
	"github.com/proflink/proflink_backend/internal/repo/rolecounter"
	"github.com/proflink/proflink_backend/internal/repo/studentprofile"
	"github.com/proflink/proflink_backend/internal/repo/user"
	"github.com/proflink/proflink_backend/internal/repo/usersession"
	"github.com/proflink/proflink_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescStudentName is the schema descriptor for student_name field.
	appointmentDescStudentName := appointmentFields[2].Descriptor()
	// appointment.StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	appointment.StudentNameValidator = func() func(string) error {
		validators := appointmentDescStudentName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(student_name string) error {
			for _, fn := range fns {
				if err := fn(student_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentDescStudentEmail is the schema descriptor for student_email field.
	appointmentDescStudentEmail := appointmentFields[3].Descriptor()
	// appointment.StudentEmailValidator is a validator for the "student_email" field. It is called by the builders before save.
	appointment.StudentEmailValidator = func() func(string) error {
		validators := appointmentDescStudentEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(student_email string) error {
			for _, fn := range fns {
				if err := fn(student_email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentDescFacultyName is the schema descriptor for faculty_name field.
	appointmentDescFacultyName := appointmentFields[4].Descriptor()
	// appointment.FacultyNameValidator is a validator for the "faculty_name" field. It is called by the builders before save.
	appointment.FacultyNameValidator = func() func(string) error {
		validators := appointmentDescFacultyName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(faculty_name string) error {
			for _, fn := range fns {
				if err := fn(faculty_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentDescFacultyEmail is the schema descriptor for faculty_email field.
	appointmentDescFacultyEmail := appointmentFields[5].Descriptor()
	// appointment.FacultyEmailValidator is a validator for the "faculty_email" field. It is called by the builders before save.
	appointment.FacultyEmailValidator = func() func(string) error {
		validators := appointmentDescFacultyEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(faculty_email string) error {
			for _, fn := range fns {
				if err := fn(faculty_email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentDescReason is the schema descriptor for reason field.
	appointmentDescReason := appointmentFields[8].Descriptor()
	// appointment.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	appointment.ReasonValidator = appointmentDescReason.Validators[0].(func(string) error)
	// appointmentDescMeetingLink is the schema descriptor for meeting_link field.
	appointmentDescMeetingLink := appointmentFields[10].Descriptor()
	// appointment.MeetingLinkValidator is a validator for the "meeting_link" field. It is called by the builders before save.
	appointment.MeetingLinkValidator = appointmentDescMeetingLink.Validators[0].(func(string) error)
	// appointmentDescStudentRating is the schema descriptor for student_rating field.
	appointmentDescStudentRating := appointmentFields[14].Descriptor()
	// appointment.StudentRatingValidator is a validator for the "student_rating" field. It is called by the builders before save.
	appointment.StudentRatingValidator = func() func(int) error {
		validators := appointmentDescStudentRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(student_rating int) error {
			for _, fn := range fns {
				if err := fn(student_rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	directoryentryMixin := schema.DirectoryEntry{}.Mixin()
	directoryentryMixinFields0 := directoryentryMixin[0].Fields()
	_ = directoryentryMixinFields0
	directoryentryFields := schema.DirectoryEntry{}.Fields()
	_ = directoryentryFields
	// directoryentryDescCreatedAt is the schema descriptor for created_at field.
	directoryentryDescCreatedAt := directoryentryMixinFields0[0].Descriptor()
	// directoryentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	directoryentry.DefaultCreatedAt = directoryentryDescCreatedAt.Default.(func() time.Time)
	// directoryentryDescUpdatedAt is the schema descriptor for updated_at field.
	directoryentryDescUpdatedAt := directoryentryMixinFields0[1].Descriptor()
	// directoryentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	directoryentry.DefaultUpdatedAt = directoryentryDescUpdatedAt.Default.(func() time.Time)
	// directoryentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	directoryentry.UpdateDefaultUpdatedAt = directoryentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// directoryentryDescName is the schema descriptor for name field.
	directoryentryDescName := directoryentryFields[1].Descriptor()
	// directoryentry.NameValidator is a validator for the "name" field. It is called by the builders before save.
	directoryentry.NameValidator = func() func(string) error {
		validators := directoryentryDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// directoryentryDescEmail is the schema descriptor for email field.
	directoryentryDescEmail := directoryentryFields[2].Descriptor()
	// directoryentry.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	directoryentry.EmailValidator = func() func(string) error {
		validators := directoryentryDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// directoryentryDescRole is the schema descriptor for role field.
	directoryentryDescRole := directoryentryFields[3].Descriptor()
	// directoryentry.DefaultRole holds the default value on creation for the role field.
	directoryentry.DefaultRole = directoryentryDescRole.Default.(string)
	// directoryentry.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	directoryentry.RoleValidator = directoryentryDescRole.Validators[0].(func(string) error)
	// directoryentryDescTitle is the schema descriptor for title field.
	directoryentryDescTitle := directoryentryFields[4].Descriptor()
	// directoryentry.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	directoryentry.TitleValidator = directoryentryDescTitle.Validators[0].(func(string) error)
	// directoryentryDescDepartment is the schema descriptor for department field.
	directoryentryDescDepartment := directoryentryFields[5].Descriptor()
	// directoryentry.DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	directoryentry.DepartmentValidator = directoryentryDescDepartment.Validators[0].(func(string) error)
	facultyprofileMixin := schema.FacultyProfile{}.Mixin()
	facultyprofileMixinFields0 := facultyprofileMixin[0].Fields()
	_ = facultyprofileMixinFields0
	facultyprofileMixinFields1 := facultyprofileMixin[1].Fields()
	_ = facultyprofileMixinFields1
	facultyprofileFields := schema.FacultyProfile{}.Fields()
	_ = facultyprofileFields
	// facultyprofileDescCreatedAt is the schema descriptor for created_at field.
	facultyprofileDescCreatedAt := facultyprofileMixinFields1[0].Descriptor()
	// facultyprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	facultyprofile.DefaultCreatedAt = facultyprofileDescCreatedAt.Default.(func() time.Time)
	// facultyprofileDescUpdatedAt is the schema descriptor for updated_at field.
	facultyprofileDescUpdatedAt := facultyprofileMixinFields1[1].Descriptor()
	// facultyprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	facultyprofile.DefaultUpdatedAt = facultyprofileDescUpdatedAt.Default.(func() time.Time)
	// facultyprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	facultyprofile.UpdateDefaultUpdatedAt = facultyprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// facultyprofileDescProfileID is the schema descriptor for profile_id field.
	facultyprofileDescProfileID := facultyprofileFields[1].Descriptor()
	// facultyprofile.DefaultProfileID holds the default value on creation for the profile_id field.
	facultyprofile.DefaultProfileID = facultyprofileDescProfileID.Default.(string)
	// facultyprofile.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	facultyprofile.ProfileIDValidator = facultyprofileDescProfileID.Validators[0].(func(string) error)
	// facultyprofileDescEmployeeNumber is the schema descriptor for employee_number field.
	facultyprofileDescEmployeeNumber := facultyprofileFields[2].Descriptor()
	// facultyprofile.EmployeeNumberValidator is a validator for the "employee_number" field. It is called by the builders before save.
	facultyprofile.EmployeeNumberValidator = facultyprofileDescEmployeeNumber.Validators[0].(func(string) error)
	// facultyprofileDescTitle is the schema descriptor for title field.
	facultyprofileDescTitle := facultyprofileFields[3].Descriptor()
	// facultyprofile.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	facultyprofile.TitleValidator = facultyprofileDescTitle.Validators[0].(func(string) error)
	// facultyprofileDescDepartment is the schema descriptor for department field.
	facultyprofileDescDepartment := facultyprofileFields[4].Descriptor()
	// facultyprofile.DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	facultyprofile.DepartmentValidator = facultyprofileDescDepartment.Validators[0].(func(string) error)
	// facultyprofileDescOffice is the schema descriptor for office field.
	facultyprofileDescOffice := facultyprofileFields[5].Descriptor()
	// facultyprofile.OfficeValidator is a validator for the "office" field. It is called by the builders before save.
	facultyprofile.OfficeValidator = facultyprofileDescOffice.Validators[0].(func(string) error)
	// facultyprofileDescPublicationCount is the schema descriptor for publication_count field.
	facultyprofileDescPublicationCount := facultyprofileFields[8].Descriptor()
	// facultyprofile.DefaultPublicationCount holds the default value on creation for the publication_count field.
	facultyprofile.DefaultPublicationCount = facultyprofileDescPublicationCount.Default.(int)
	// facultyprofile.PublicationCountValidator is a validator for the "publication_count" field. It is called by the builders before save.
	facultyprofile.PublicationCountValidator = facultyprofileDescPublicationCount.Validators[0].(func(int) error)
	// facultyprofileDescYearsExperience is the schema descriptor for years_experience field.
	facultyprofileDescYearsExperience := facultyprofileFields[9].Descriptor()
	// facultyprofile.DefaultYearsExperience holds the default value on creation for the years_experience field.
	facultyprofile.DefaultYearsExperience = facultyprofileDescYearsExperience.Default.(int)
	// facultyprofile.YearsExperienceValidator is a validator for the "years_experience" field. It is called by the builders before save.
	facultyprofile.YearsExperienceValidator = facultyprofileDescYearsExperience.Validators[0].(func(int) error)
	// facultyprofileDescDefaultDurationMin is the schema descriptor for default_duration_min field.
	facultyprofileDescDefaultDurationMin := facultyprofileFields[10].Descriptor()
	// facultyprofile.DefaultDefaultDurationMin holds the default value on creation for the default_duration_min field.
	facultyprofile.DefaultDefaultDurationMin = facultyprofileDescDefaultDurationMin.Default.(int)
	// facultyprofile.DefaultDurationMinValidator is a validator for the "default_duration_min" field. It is called by the builders before save.
	facultyprofile.DefaultDurationMinValidator = facultyprofileDescDefaultDurationMin.Validators[0].(func(int) error)
	// facultyprofileDescMaxDailyAppointments is the schema descriptor for max_daily_appointments field.
	facultyprofileDescMaxDailyAppointments := facultyprofileFields[11].Descriptor()
	// facultyprofile.DefaultMaxDailyAppointments holds the default value on creation for the max_daily_appointments field.
	facultyprofile.DefaultMaxDailyAppointments = facultyprofileDescMaxDailyAppointments.Default.(int)
	// facultyprofile.MaxDailyAppointmentsValidator is a validator for the "max_daily_appointments" field. It is called by the builders before save.
	facultyprofile.MaxDailyAppointmentsValidator = facultyprofileDescMaxDailyAppointments.Validators[0].(func(int) error)
	// facultyprofileDescBufferMinutes is the schema descriptor for buffer_minutes field.
	facultyprofileDescBufferMinutes := facultyprofileFields[12].Descriptor()
	// facultyprofile.DefaultBufferMinutes holds the default value on creation for the buffer_minutes field.
	facultyprofile.DefaultBufferMinutes = facultyprofileDescBufferMinutes.Default.(int)
	// facultyprofile.BufferMinutesValidator is a validator for the "buffer_minutes" field. It is called by the builders before save.
	facultyprofile.BufferMinutesValidator = facultyprofileDescBufferMinutes.Validators[0].(func(int) error)
	// facultyprofileDescAdvanceBookingDays is the schema descriptor for advance_booking_days field.
	facultyprofileDescAdvanceBookingDays := facultyprofileFields[13].Descriptor()
	// facultyprofile.DefaultAdvanceBookingDays holds the default value on creation for the advance_booking_days field.
	facultyprofile.DefaultAdvanceBookingDays = facultyprofileDescAdvanceBookingDays.Default.(int)
	// facultyprofile.AdvanceBookingDaysValidator is a validator for the "advance_booking_days" field. It is called by the builders before save.
	facultyprofile.AdvanceBookingDaysValidator = facultyprofileDescAdvanceBookingDays.Validators[0].(func(int) error)
	// facultyprofileDescTimeZone is the schema descriptor for time_zone field.
	facultyprofileDescTimeZone := facultyprofileFields[16].Descriptor()
	// facultyprofile.DefaultTimeZone holds the default value on creation for the time_zone field.
	facultyprofile.DefaultTimeZone = facultyprofileDescTimeZone.Default.(string)
	// facultyprofile.TimeZoneValidator is a validator for the "time_zone" field. It is called by the builders before save.
	facultyprofile.TimeZoneValidator = facultyprofileDescTimeZone.Validators[0].(func(string) error)
	// facultyprofileDescID is the schema descriptor for id field.
	facultyprofileDescID := facultyprofileMixinFields0[0].Descriptor()
	// facultyprofile.DefaultID holds the default value on creation for the id field.
	facultyprofile.DefaultID = facultyprofileDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[6].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	rolecounterMixin := schema.RoleCounter{}.Mixin()
	rolecounterMixinFields0 := rolecounterMixin[0].Fields()
	_ = rolecounterMixinFields0
	rolecounterMixinFields1 := rolecounterMixin[1].Fields()
	_ = rolecounterMixinFields1
	rolecounterFields := schema.RoleCounter{}.Fields()
	_ = rolecounterFields
	// rolecounterDescCreatedAt is the schema descriptor for created_at field.
	rolecounterDescCreatedAt := rolecounterMixinFields1[0].Descriptor()
	// rolecounter.DefaultCreatedAt holds the default value on creation for the created_at field.
	rolecounter.DefaultCreatedAt = rolecounterDescCreatedAt.Default.(func() time.Time)
	// rolecounterDescUpdatedAt is the schema descriptor for updated_at field.
	rolecounterDescUpdatedAt := rolecounterMixinFields1[1].Descriptor()
	// rolecounter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	rolecounter.DefaultUpdatedAt = rolecounterDescUpdatedAt.Default.(func() time.Time)
	// rolecounter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	rolecounter.UpdateDefaultUpdatedAt = rolecounterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// rolecounterDescRole is the schema descriptor for role field.
	rolecounterDescRole := rolecounterFields[0].Descriptor()
	// rolecounter.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	rolecounter.RoleValidator = func() func(string) error {
		validators := rolecounterDescRole.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(role string) error {
			for _, fn := range fns {
				if err := fn(role); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// rolecounterDescNextSeq is the schema descriptor for next_seq field.
	rolecounterDescNextSeq := rolecounterFields[1].Descriptor()
	// rolecounter.DefaultNextSeq holds the default value on creation for the next_seq field.
	rolecounter.DefaultNextSeq = rolecounterDescNextSeq.Default.(int64)
	// rolecounter.NextSeqValidator is a validator for the "next_seq" field. It is called by the builders before save.
	rolecounter.NextSeqValidator = rolecounterDescNextSeq.Validators[0].(func(int64) error)
	// rolecounterDescID is the schema descriptor for id field.
	rolecounterDescID := rolecounterMixinFields0[0].Descriptor()
	// rolecounter.DefaultID holds the default value on creation for the id field.
	rolecounter.DefaultID = rolecounterDescID.Default.(func() uuid.UUID)
	studentprofileMixin := schema.StudentProfile{}.Mixin()
	studentprofileMixinFields0 := studentprofileMixin[0].Fields()
	_ = studentprofileMixinFields0
	studentprofileMixinFields1 := studentprofileMixin[1].Fields()
	_ = studentprofileMixinFields1
	studentprofileFields := schema.StudentProfile{}.Fields()
	_ = studentprofileFields
	// studentprofileDescCreatedAt is the schema descriptor for created_at field.
	studentprofileDescCreatedAt := studentprofileMixinFields1[0].Descriptor()
	// studentprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	studentprofile.DefaultCreatedAt = studentprofileDescCreatedAt.Default.(func() time.Time)
	// studentprofileDescUpdatedAt is the schema descriptor for updated_at field.
	studentprofileDescUpdatedAt := studentprofileMixinFields1[1].Descriptor()
	// studentprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studentprofile.DefaultUpdatedAt = studentprofileDescUpdatedAt.Default.(func() time.Time)
	// studentprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studentprofile.UpdateDefaultUpdatedAt = studentprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// studentprofileDescProfileID is the schema descriptor for profile_id field.
	studentprofileDescProfileID := studentprofileFields[1].Descriptor()
	// studentprofile.DefaultProfileID holds the default value on creation for the profile_id field.
	studentprofile.DefaultProfileID = studentprofileDescProfileID.Default.(string)
	// studentprofile.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	studentprofile.ProfileIDValidator = studentprofileDescProfileID.Validators[0].(func(string) error)
	// studentprofileDescStudentNumber is the schema descriptor for student_number field.
	studentprofileDescStudentNumber := studentprofileFields[2].Descriptor()
	// studentprofile.StudentNumberValidator is a validator for the "student_number" field. It is called by the builders before save.
	studentprofile.StudentNumberValidator = studentprofileDescStudentNumber.Validators[0].(func(string) error)
	// studentprofileDescYear is the schema descriptor for year field.
	studentprofileDescYear := studentprofileFields[3].Descriptor()
	// studentprofile.YearValidator is a validator for the "year" field. It is called by the builders before save.
	studentprofile.YearValidator = studentprofileDescYear.Validators[0].(func(string) error)
	// studentprofileDescMajor is the schema descriptor for major field.
	studentprofileDescMajor := studentprofileFields[4].Descriptor()
	// studentprofile.MajorValidator is a validator for the "major" field. It is called by the builders before save.
	studentprofile.MajorValidator = studentprofileDescMajor.Validators[0].(func(string) error)
	// studentprofileDescDepartment is the schema descriptor for department field.
	studentprofileDescDepartment := studentprofileFields[5].Descriptor()
	// studentprofile.DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	studentprofile.DepartmentValidator = studentprofileDescDepartment.Validators[0].(func(string) error)
	// studentprofileDescGpa is the schema descriptor for gpa field.
	studentprofileDescGpa := studentprofileFields[6].Descriptor()
	// studentprofile.GpaValidator is a validator for the "gpa" field. It is called by the builders before save.
	studentprofile.GpaValidator = func() func(float64) error {
		validators := studentprofileDescGpa.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(gpa float64) error {
			for _, fn := range fns {
				if err := fn(gpa); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// studentprofileDescExpectedGraduation is the schema descriptor for expected_graduation field.
	studentprofileDescExpectedGraduation := studentprofileFields[7].Descriptor()
	// studentprofile.ExpectedGraduationValidator is a validator for the "expected_graduation" field. It is called by the builders before save.
	studentprofile.ExpectedGraduationValidator = studentprofileDescExpectedGraduation.Validators[0].(func(string) error)
	// studentprofileDescTotalAppointments is the schema descriptor for total_appointments field.
	studentprofileDescTotalAppointments := studentprofileFields[10].Descriptor()
	// studentprofile.DefaultTotalAppointments holds the default value on creation for the total_appointments field.
	studentprofile.DefaultTotalAppointments = studentprofileDescTotalAppointments.Default.(int)
	// studentprofile.TotalAppointmentsValidator is a validator for the "total_appointments" field. It is called by the builders before save.
	studentprofile.TotalAppointmentsValidator = studentprofileDescTotalAppointments.Validators[0].(func(int) error)
	// studentprofileDescCompletedAppointments is the schema descriptor for completed_appointments field.
	studentprofileDescCompletedAppointments := studentprofileFields[11].Descriptor()
	// studentprofile.DefaultCompletedAppointments holds the default value on creation for the completed_appointments field.
	studentprofile.DefaultCompletedAppointments = studentprofileDescCompletedAppointments.Default.(int)
	// studentprofile.CompletedAppointmentsValidator is a validator for the "completed_appointments" field. It is called by the builders before save.
	studentprofile.CompletedAppointmentsValidator = studentprofileDescCompletedAppointments.Validators[0].(func(int) error)
	// studentprofileDescCancelledAppointments is the schema descriptor for cancelled_appointments field.
	studentprofileDescCancelledAppointments := studentprofileFields[12].Descriptor()
	// studentprofile.DefaultCancelledAppointments holds the default value on creation for the cancelled_appointments field.
	studentprofile.DefaultCancelledAppointments = studentprofileDescCancelledAppointments.Default.(int)
	// studentprofile.CancelledAppointmentsValidator is a validator for the "cancelled_appointments" field. It is called by the builders before save.
	studentprofile.CancelledAppointmentsValidator = studentprofileDescCancelledAppointments.Validators[0].(func(int) error)
	// studentprofileDescID is the schema descriptor for id field.
	studentprofileDescID := studentprofileMixinFields0[0].Descriptor()
	// studentprofile.DefaultID holds the default value on creation for the id field.
	studentprofile.DefaultID = studentprofileDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = func() func(string) error {
		validators := userDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = func() func(string) error {
		validators := userDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescRegistrationCode is the schema descriptor for registration_code field.
	userDescRegistrationCode := userFields[4].Descriptor()
	// user.RegistrationCodeValidator is a validator for the "registration_code" field. It is called by the builders before save.
	user.RegistrationCodeValidator = func() func(string) error {
		validators := userDescRegistrationCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(registration_code string) error {
			for _, fn := range fns {
				if err := fn(registration_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[5].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[6].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescProfileComplete is the schema descriptor for profile_complete field.
	userDescProfileComplete := userFields[8].Descriptor()
	// user.DefaultProfileComplete holds the default value on creation for the profile_complete field.
	user.DefaultProfileComplete = userDescProfileComplete.Default.(bool)
	// userDescProfileID is the schema descriptor for profile_id field.
	userDescProfileID := userFields[9].Descriptor()
	// user.DefaultProfileID holds the default value on creation for the profile_id field.
	user.DefaultProfileID = userDescProfileID.Default.(string)
	// user.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	user.ProfileIDValidator = userDescProfileID.Validators[0].(func(string) error)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[11].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
