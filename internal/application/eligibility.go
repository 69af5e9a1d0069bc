package application

import "github.com/arsicorp/zenith-lab-robotics/internal/domain"

// EvaluateEligibility decides whether an account may purchase a product.
// An unrestricted product passes for any account. A restricted product
// passes only when the account type matches the requirement exactly;
// there is no hierarchy between account types.
func EvaluateEligibility(product domain.Product, account domain.AccountType) error {
	if product.BuyerRequirement == domain.NoRequirement {
		return nil
	}
	if product.BuyerRequirement == account {
		return nil
	}
	return &EligibilityDeniedError{
		ProductName: product.Name,
		Required:    product.BuyerRequirement,
	}
}
