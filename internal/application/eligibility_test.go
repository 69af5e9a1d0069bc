package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

func TestEvaluateEligibility(t *testing.T) {
	tests := []struct {
		name        string
		requirement domain.AccountType
		account     domain.AccountType
		wantAllowed bool
	}{
		{"unrestricted product, personal buyer", domain.NoRequirement, domain.AccountTypePersonal, true},
		{"unrestricted product, empty account type", domain.NoRequirement, domain.NoRequirement, true},
		{"business product, business buyer", domain.AccountTypeBusiness, domain.AccountTypeBusiness, true},
		{"business product, personal buyer", domain.AccountTypeBusiness, domain.AccountTypePersonal, false},
		{"medical product, government buyer", domain.AccountTypeMedical, domain.AccountTypeGovernment, false},
		{"government product, government buyer", domain.AccountTypeGovernment, domain.AccountTypeGovernment, true},
		{"restricted product, empty account type", domain.AccountTypeMedical, domain.NoRequirement, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := domain.Product{Name: "Test Rig", BuyerRequirement: tt.requirement}
			err := EvaluateEligibility(product, tt.account)
			if tt.wantAllowed {
				assert.NoError(t, err)
				return
			}
			var denied *EligibilityDeniedError
			require.ErrorAs(t, err, &denied)
			assert.Equal(t, "Test Rig", denied.ProductName)
			assert.Equal(t, tt.requirement, denied.Required)
		})
	}
}

func TestEligibilityDeniedErrorMessage(t *testing.T) {
	err := &EligibilityDeniedError{ProductName: "Lab Autoclave", Required: domain.AccountTypeMedical}
	assert.Equal(t, `product "Lab Autoclave" requires a MEDICAL account`, err.Error())
}
