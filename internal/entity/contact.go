package entity

const (
	PropertyContactEmail     = "email"
	PropertyContactFirstName = "firstname"
	PropertyContactPhone     = "phone"
)

type Contact struct {
	Email     string
	FirstName string
	Phone     string
}

func (c Contact) Properties() Properties {
	return Clean(Properties{
		PropertyContactEmail:     c.Email,
		PropertyContactFirstName: c.FirstName,
		PropertyContactPhone:     c.Phone,
	})
}
