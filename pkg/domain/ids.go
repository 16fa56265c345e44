package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "billsplit/pkg/domain-errors"
)

// maxCNPLength bounds the opaque user identifier accepted at trust boundaries.
const maxCNPLength = 32

// CNP identifies a user. The engine treats it as an opaque key and relies on no
// internal structure beyond the character set checked by ParseCNP.
type CNP string

// ParseCNP trims and validates a user identifier.
// Accepts 1..32 ASCII letters or digits.
func ParseCNP(s string) (CNP, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, "cnp is required")
	}
	if len(s) > maxCNPLength {
		return "", dErrors.New(dErrors.CodeValidation, "cnp must be at most 32 characters")
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return "", dErrors.New(dErrors.CodeValidation, "cnp must contain only letters and digits")
		}
	}
	return CNP(s), nil
}

func (c CNP) String() string {
	return string(c)
}

// ReportID identifies a bill-split dispute report.
type ReportID uuid.UUID

// NewReportID returns a fresh random report ID.
func NewReportID() ReportID {
	return ReportID(uuid.New())
}

// ParseReportID parses a report ID, rejecting malformed and nil UUIDs.
func ParseReportID(s string) (ReportID, error) {
	if s == "" {
		return ReportID{}, dErrors.New(dErrors.CodeValidation, "report id is required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return ReportID{}, dErrors.New(dErrors.CodeValidation, "invalid report id")
	}
	if parsed == uuid.Nil {
		return ReportID{}, dErrors.New(dErrors.CodeValidation, "report id cannot be nil")
	}
	return ReportID(parsed), nil
}

func (r ReportID) String() string {
	return uuid.UUID(r).String()
}

func (r ReportID) IsNil() bool {
	return uuid.UUID(r) == uuid.Nil
}

func (r ReportID) MarshalText() ([]byte, error) {
	return uuid.UUID(r).MarshalText()
}

func (r *ReportID) UnmarshalText(data []byte) error {
	parsed, err := ParseReportID(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
