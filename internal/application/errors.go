package application

import (
	"errors"
	"fmt"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmptyCart          = errors.New("shopping cart is empty")
	ErrProfileMissing     = errors.New("user profile not found")
	ErrUserExists         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// EligibilityDeniedError reports a cart item whose product restricts
// purchases to an account type the buyer does not hold.
type EligibilityDeniedError struct {
	ProductName string
	Required    domain.AccountType
}

func (e *EligibilityDeniedError) Error() string {
	return fmt.Sprintf("product %q requires a %s account", e.ProductName, e.Required)
}

// PersistStage identifies which write of the checkout sequence failed.
type PersistStage string

const (
	StageOrder     PersistStage = "order"
	StageLineItem  PersistStage = "lineItem"
	StageCartClear PersistStage = "cartClear"
)

// PersistenceError wraps a storage failure during checkout. Writes that
// completed before the failing stage are not rolled back.
type PersistenceError struct {
	Stage PersistStage
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("checkout persistence failed at stage %s: %v", e.Stage, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
