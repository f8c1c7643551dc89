package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Job is a field-service job as received from the upstream tool.
type Job struct {
	DealName       string
	CompanyName    string
	ParentCompany  string
	CompanyDomain  string
	CompanyAddress string
	ContactName    string
	ContactEmail   string
	ContactPhone   string
	JobNumber      string
	JobTotal       decimal.NullDecimal
	Description    string
	StageID        string
	Status         string
}

// Normalize returns the job with every text field trimmed.
func (j Job) Normalize() Job {
	j.DealName = strings.TrimSpace(j.DealName)
	j.CompanyName = strings.TrimSpace(j.CompanyName)
	j.ParentCompany = strings.TrimSpace(j.ParentCompany)
	j.CompanyDomain = strings.TrimSpace(j.CompanyDomain)
	j.CompanyAddress = strings.TrimSpace(j.CompanyAddress)
	j.ContactName = strings.TrimSpace(j.ContactName)
	j.ContactEmail = strings.TrimSpace(j.ContactEmail)
	j.ContactPhone = strings.TrimSpace(j.ContactPhone)
	j.JobNumber = strings.TrimSpace(j.JobNumber)
	j.Description = strings.TrimSpace(j.Description)
	j.StageID = strings.TrimSpace(j.StageID)
	j.Status = strings.TrimSpace(j.Status)

	return j
}

func (j Job) Company() Company {
	return Company{
		Name:    j.CompanyName,
		Domain:  j.CompanyDomain,
		Address: j.CompanyAddress,
	}
}

func (j Job) Parent() Company {
	return Company{Name: j.ParentCompany}
}

func (j Job) Contact() Contact {
	return Contact{
		Email:     j.ContactEmail,
		FirstName: j.ContactName,
		Phone:     j.ContactPhone,
	}
}

func (j Job) Deal() Deal {
	return Deal{
		Name:        j.DealName,
		Amount:      j.JobTotal,
		Description: j.Description,
		Stage:       j.Stage(),
		JobNumber:   j.JobNumber,
	}
}

// Stage prefers an explicit stage id over the status label. Empty when neither is set.
func (j Job) Stage() string {
	switch {
	case j.StageID != "":
		return j.StageID
	case j.Status != "":
		return ResolveStage(j.Status)
	default:
		return ""
	}
}
