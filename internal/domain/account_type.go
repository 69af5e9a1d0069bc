package domain

// AccountType classifies a buyer account. Products may carry an AccountType
// as their buyer requirement; an empty requirement means anyone may purchase.
type AccountType string

const (
	AccountTypePersonal   AccountType = "PERSONAL"
	AccountTypeBusiness   AccountType = "BUSINESS"
	AccountTypeMedical    AccountType = "MEDICAL"
	AccountTypeGovernment AccountType = "GOVERNMENT"
)

// NoRequirement marks a product as unrestricted.
const NoRequirement AccountType = ""

// Known reports whether a is one of the defined account types.
func (a AccountType) Known() bool {
	switch a {
	case AccountTypePersonal, AccountTypeBusiness, AccountTypeMedical, AccountTypeGovernment:
		return true
	}
	return false
}

func (a AccountType) String() string {
	return string(a)
}
