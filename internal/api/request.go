package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/dealsync/internal/entity"
)

// FlexString accepts both a JSON string and a JSON number.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string

		err := json.Unmarshal(b, &s)
		if err != nil {
			return err
		}

		*f = FlexString(s)

		return nil
	}

	var n json.Number

	err := json.Unmarshal(b, &n)
	if err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}

	*f = FlexString(n.String())

	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// SendDealRequest is a job as posted by the field-service tool. Aliased fields fall back
// to their alternative name when the primary one is empty.
type SendDealRequest struct {
	DealName          string     `json:"dealName" example:"Roof Repair"`
	CompanyName       string     `json:"companyName" example:"Acme Co"`
	ParentCompany     string     `json:"parentCompany" example:"Acme Holdings"`
	CompanyDomain     string     `json:"companyDomain" example:"acme.com"`
	CompanyAddress    string     `json:"companyAddress"`
	ContactName       string     `json:"contactName" example:"Jane"`
	ContactEmail      string     `json:"contactEmail" example:"jane@acme.com"`
	Email             string     `json:"email"`
	ContactPhone      FlexString `json:"contactPhone" swaggertype:"string"`
	Phone             FlexString `json:"phone" swaggertype:"string"`
	JobNumber         FlexString `json:"jobNumber" swaggertype:"string" example:"J-100"`
	KickservJobNumber FlexString `json:"kickservJobNumber" swaggertype:"string"`
	JobTotal          FlexString `json:"jobTotal" swaggertype:"string" example:"500"`
	Description       string     `json:"description"`
	StageID           FlexString `json:"stageId" swaggertype:"string"`
	Status            string     `json:"status" example:"Scheduled"`
}

// Job converts the request. It fails only on a job total that is not a number.
func (r SendDealRequest) Job() (entity.Job, error) {
	var total decimal.NullDecimal

	if s := strings.TrimSpace(r.JobTotal.String()); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return entity.Job{}, fmt.Errorf("job total %q: %w", s, entity.ErrInvalidArgument)
		}

		total = decimal.NewNullDecimal(d)
	}

	return entity.Job{
		DealName:       r.DealName,
		CompanyName:    r.CompanyName,
		ParentCompany:  r.ParentCompany,
		CompanyDomain:  r.CompanyDomain,
		CompanyAddress: r.CompanyAddress,
		ContactName:    r.ContactName,
		ContactEmail:   firstNonBlank(r.ContactEmail, r.Email),
		ContactPhone:   firstNonBlank(r.ContactPhone.String(), r.Phone.String()),
		JobNumber:      firstNonBlank(r.JobNumber.String(), r.KickservJobNumber.String()),
		JobTotal:       total,
		Description:    r.Description,
		StageID:        r.StageID.String(),
		Status:         r.Status,
	}, nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
