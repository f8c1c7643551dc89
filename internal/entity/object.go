package entity

type ObjectType string

const (
	ObjectCompanies ObjectType = "companies"
	ObjectContacts  ObjectType = "contacts"
	ObjectDeals     ObjectType = "deals"
)

func (o ObjectType) String() string {
	return string(o)
}

// Association is a typed directed edge between two CRM records.
type Association struct {
	From ObjectType
	To   string // target object segment of the association path
	Type string
}

var (
	AssocCompanyToParent = Association{From: ObjectCompanies, To: "parent_company", Type: "company_to_company"}
	AssocDealToContact   = Association{From: ObjectDeals, To: "contact", Type: "deal_to_contact"}
	AssocDealToCompany   = Association{From: ObjectDeals, To: "company", Type: "deal_to_company"}
)

func (a Association) String() string {
	return a.Type
}
