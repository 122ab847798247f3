package validation

import (
	"regexp"
	"time"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// National ID pattern - 8 digits
	NationalIDPattern = `^\d{8}$`

	// Passport pattern - 6 to 9 alphanumeric characters
	PassportPattern = `^[A-Za-z0-9]{6,9}$`

	// Phone pattern - local (07.../01..., 10 digits) or international (+ then 10-14 digits)
	PhonePattern = `^(0[17]\d{8}|\+\d{10,14})$`
)

// MinAdmissionAge is the minimum age in full years at the admission date
const MinAdmissionAge = 16

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	NationalID *regexp.Regexp
	Passport   *regexp.Regexp
	Phone      *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	NationalID: regexp.MustCompile(NationalIDPattern),
	Passport:   regexp.MustCompile(PassportPattern),
	Phone:      regexp.MustCompile(PhonePattern),
}

// IsValidEmail reports whether s looks like an email address
func IsValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// IsValidNationalID reports whether s is an 8-digit national ID number
func IsValidNationalID(s string) bool {
	return CompiledPatterns.NationalID.MatchString(s)
}

// IsValidPassport reports whether s is a 6-9 character alphanumeric passport number
func IsValidPassport(s string) bool {
	return CompiledPatterns.Passport.MatchString(s)
}

// IsValidPhone reports whether s is a local or international phone number
func IsValidPhone(s string) bool {
	return CompiledPatterns.Phone.MatchString(s)
}

// AgeAt returns the age in full years of someone born on dob as of the given date
func AgeAt(dob, at time.Time) int {
	years := at.Year() - dob.Year()
	// Not yet had this year's birthday
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		years--
	}
	return years
}
