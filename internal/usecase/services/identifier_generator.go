package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/api-sage/bank-back-office/internal/adapter/repository/repo_interfaces"
	"github.com/google/uuid"
)

const accountNumberLength = 12
const cardNumberLength = 16
const cvvLength = 3

// IdentifierGenerator issues collision-checked account and card
// numbers. The existence lookup is a best-effort pre-check; the unique
// constraints at the store remain the authoritative guard, so callers
// creating rows still retry on a duplicate rejection.
type IdentifierGenerator struct {
	accountRepo repo_interfaces.AccountRepository
	cardRepo    repo_interfaces.CreditCardRepository
}

func NewIdentifierGenerator(
	accountRepo repo_interfaces.AccountRepository,
	cardRepo repo_interfaces.CreditCardRepository,
) *IdentifierGenerator {
	return &IdentifierGenerator{
		accountRepo: accountRepo,
		cardRepo:    cardRepo,
	}
}

// GenerateAccountNumber derives a 12-digit number from the decimal
// expansion of a random UUID and loops until it is unissued.
func (g *IdentifierGenerator) GenerateAccountNumber(ctx context.Context) (string, error) {
	for {
		candidate := uuidDigits(accountNumberLength)
		exists, err := g.accountRepo.AccountNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check account number candidate: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
}

// GenerateCardNumber returns a random 16-digit number not yet issued
// to any card.
func (g *IdentifierGenerator) GenerateCardNumber(ctx context.Context) (string, error) {
	for {
		candidate, err := randomDigits(cardNumberLength)
		if err != nil {
			return "", fmt.Errorf("generate card number candidate: %w", err)
		}
		exists, err := g.cardRepo.CardNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check card number candidate: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
}

// GenerateCVV is purely random; CVVs have no uniqueness requirement.
func (g *IdentifierGenerator) GenerateCVV() (string, error) {
	cvv, err := randomDigits(cvvLength)
	if err != nil {
		return "", fmt.Errorf("generate cvv: %w", err)
	}

	return cvv, nil
}

func uuidDigits(length int) string {
	u := uuid.New()
	digits := new(big.Int).SetBytes(u[:]).String()
	for len(digits) < length {
		digits = "0" + digits
	}

	return digits[:length]
}

func randomDigits(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = '0' + b%10
	}

	return string(out), nil
}
