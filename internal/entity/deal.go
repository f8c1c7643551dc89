package entity

import (
	"github.com/shopspring/decimal"
)

const (
	PropertyDealName        = "dealname"
	PropertyDealAmount      = "amount"
	PropertyDealDescription = "description"
	PropertyDealStage       = "dealstage"
	PropertyDealPipeline    = "pipeline"
)

type Deal struct {
	Name        string
	Amount      decimal.NullDecimal
	Description string
	// Stage is a resolved stage id. Empty means "leave the stage as it is".
	Stage     string
	JobNumber string
}

// Properties builds the deal payload. A missing amount is sent as 0.
func (d Deal) Properties(jobNumberField, pipeline string) Properties {
	amount := decimal.Zero
	if d.Amount.Valid {
		amount = d.Amount.Decimal
	}

	return Clean(Properties{
		PropertyDealName:        d.Name,
		PropertyDealAmount:      amount.String(),
		PropertyDealDescription: d.Description,
		PropertyDealStage:       d.Stage,
		PropertyDealPipeline:    pipeline,
		jobNumberField:          d.JobNumber,
	})
}
