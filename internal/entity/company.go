package entity

const (
	PropertyCompanyName    = "name"
	PropertyCompanyDomain  = "domain"
	PropertyCompanyAddress = "address"
)

type Company struct {
	Name    string
	Domain  string
	Address string
}

func (c Company) Properties() Properties {
	return Clean(Properties{
		PropertyCompanyName:    c.Name,
		PropertyCompanyDomain:  c.Domain,
		PropertyCompanyAddress: c.Address,
	})
}
