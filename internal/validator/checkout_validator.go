package validator

import (
	"errors"
	"strings"

	"storefront/internal/usecase"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")
)

type checkoutValidator struct{}

// Usecaseは interface を依存注入
func NewCheckoutValidator() usecase.CheckoutValidator {
	return &checkoutValidator{}
}

// 確定前の配送先入力を検証。全項目必須。
func (v *checkoutValidator) ValidateCheckout(in usecase.CheckoutInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.Address) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.Phone) == "" {
		return ErrInvalidInput
	}
	return nil
}
