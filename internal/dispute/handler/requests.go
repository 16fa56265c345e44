package handler

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"billsplit/internal/dispute/service"
	id "billsplit/pkg/domain"
	dErrors "billsplit/pkg/domain-errors"
)

// dateLayout is the wire format of calendar days.
const dateLayout = "2006-01-02"

// FileDisputeRequest is the HTTP request body for POST /disputes.
type FileDisputeRequest struct {
	ReportedUserCNP   string `json:"reported_user_cnp"`
	ReportingUserCNP  string `json:"reporting_user_cnp"`
	DateOfTransaction string `json:"date_of_transaction"`
	BillShare         string `json:"bill_share"`

	// Parsed values (populated by Validate)
	cmd service.FileDisputeCommand
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *FileDisputeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	reported, err := id.ParseCNP(r.ReportedUserCNP)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "reported_user_cnp: "+dErrors.MessageOf(err))
	}
	reporting, err := id.ParseCNP(r.ReportingUserCNP)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "reporting_user_cnp: "+dErrors.MessageOf(err))
	}

	r.DateOfTransaction = strings.TrimSpace(r.DateOfTransaction)
	if r.DateOfTransaction == "" {
		return dErrors.New(dErrors.CodeValidation, "date_of_transaction is required")
	}
	date, err := time.Parse(dateLayout, r.DateOfTransaction)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "date_of_transaction must be formatted as YYYY-MM-DD")
	}

	r.BillShare = strings.TrimSpace(r.BillShare)
	if r.BillShare == "" {
		return dErrors.New(dErrors.CodeValidation, "bill_share is required")
	}
	share, err := decimal.NewFromString(r.BillShare)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "bill_share must be a decimal amount")
	}

	r.cmd = service.FileDisputeCommand{
		ReportedUserCNP:   reported,
		ReportingUserCNP:  reporting,
		DateOfTransaction: date,
		BillShare:         share,
	}
	return nil
}

// Command returns the validated filing command.
func (r *FileDisputeRequest) Command() service.FileDisputeCommand {
	return r.cmd
}
