package commons

import "errors"

var ErrCustomerNotFound = errors.New("Customer not found")
var ErrAccountNotFound = errors.New("Account not found")
var ErrDuplicateAccountNumber = errors.New("Account number already exists")
var ErrInvalidAmount = errors.New("Amount must be greater than zero")
var ErrInsufficientFunds = errors.New("Insufficient funds")
