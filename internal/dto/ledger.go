package dto

import "time"

type PurchaseResponseDTO struct {
	NewBalance float64 `json:"new_balance" example:"20000"`
}

type BankInfoDTO struct {
	BankName      string `json:"bank_name" example:"Vietcombank"`
	AccountNumber string `json:"account_number" example:"0123456789"`
	CardNumber    string `json:"card_number,omitempty" example:"4561261212345467"`
}

type DepositRequestDTO struct {
	Amount        float64     `json:"amount" example:"100000"`
	TransactionID string      `json:"transaction_id" example:"FT23097241860024"`
	BankInfo      BankInfoDTO `json:"bank_info"`
}

type DepositResponseDTO struct {
	TransactionID  int     `json:"transaction_id"`
	CurrentBalance float64 `json:"current_balance"`
}

type VerifyDepositRequestDTO struct {
	TransactionID string  `json:"transaction_id" example:"FT23097241860024"`
	Username      string  `json:"username" example:"student01"`
	Amount        float64 `json:"amount" example:"100000"`
	Status        string  `json:"status" example:"success"`
}

type VerifyDepositResponseDTO struct {
	NewBalance float64 `json:"new_balance"`
}

type TransactionDTO struct {
	ID          int       `json:"id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	RelatedID   *int      `json:"related_id,omitempty"`
	ExternalRef string    `json:"external_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
