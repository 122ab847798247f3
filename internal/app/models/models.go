package models

// RoleType represents the role of a user account
type RoleType string

// Staff and student roles
const (
	RoleDirector    RoleType = "DIRECTOR"
	RoleHeadteacher RoleType = "HEADTEACHER"
	RoleRegistrar   RoleType = "REGISTRAR"
	RoleTeacher     RoleType = "TEACHER"
	RoleStudent     RoleType = "STUDENT"
)

// IdentificationType distinguishes the document a student registered with
type IdentificationType string

const (
	IDTypeNational IdentificationType = "NATIONAL_ID"
	IDTypePassport IdentificationType = "PASSPORT"
)

// FeeStatus tracks the payment state of a student fee row
type FeeStatus string

const (
	FeeStatusPending FeeStatus = "PENDING"
	FeeStatusPartial FeeStatus = "PARTIAL"
	FeeStatusPaid    FeeStatus = "PAID"
)
