package domain

import "time"

type Wallet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TransactionType string

const (
	TxDeposit    TransactionType = "deposit"
	TxWithdrawal TransactionType = "withdrawal"
	TxInvestment TransactionType = "investment"
	TxReturn     TransactionType = "return"
	TxFee        TransactionType = "fee"
	TxRefund     TransactionType = "refund"
)

type TransactionStatus string

const (
	TxPending   TransactionStatus = "pending"
	TxCompleted TransactionStatus = "completed"
	TxFailed    TransactionStatus = "failed"
)

type Transaction struct {
	ID          string            `json:"id"`
	WalletID    string            `json:"wallet_id"`
	UserID      string            `json:"user_id"`
	Type        TransactionType   `json:"type"`
	Amount      float64           `json:"amount"`
	Status      TransactionStatus `json:"status"`
	Description string            `json:"description,omitempty"`
	RefID       *string           `json:"ref_id,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
