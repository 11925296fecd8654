package oop

import "fmt"

// BankAccount is the canonical encapsulation toy: accountNumber and balance
// are unexported, so the only way to move money is through Deposit and
// Withdraw, which enforce the non-negative-balance invariant.
type BankAccount struct {
	accountNumber string
	balance       float64
	OwnerName     string
}

// NewBankAccount opens an account. A negative opening balance is clamped to
// zero rather than rejected; the lesson is controlled access, not a real
// failure taxonomy.
func NewBankAccount(accountNumber, ownerName string, openingBalance float64) *BankAccount {
	if openingBalance < 0 {
		openingBalance = 0
	}
	return &BankAccount{
		accountNumber: accountNumber,
		balance:       openingBalance,
		OwnerName:     ownerName,
	}
}

// AccountNumber returns the account number.
func (b *BankAccount) AccountNumber() string { return b.accountNumber }

// Balance returns the current balance.
func (b *BankAccount) Balance() float64 { return b.balance }

// Deposit adds amount to the balance and reports whether it was applied.
// Non-positive amounts are rejected.
func (b *BankAccount) Deposit(amount float64) bool {
	if amount <= 0 {
		return false
	}
	b.balance += amount
	return true
}

// Withdraw removes amount from the balance and reports whether it was
// applied. Non-positive amounts and overdrafts are rejected.
func (b *BankAccount) Withdraw(amount float64) bool {
	if amount <= 0 || amount > b.balance {
		return false
	}
	b.balance -= amount
	return true
}

// String implements fmt.Stringer with the account summary line.
func (b *BankAccount) String() string {
	return fmt.Sprintf("Account: %s, Owner: %s, Balance: $%.2f",
		b.accountNumber, b.OwnerName, b.balance)
}
