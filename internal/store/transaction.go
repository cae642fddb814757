package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateTransactionParams represents parameters for a credit-ledger entry
type CreateTransactionParams struct {
	UserID      uuid.UUID
	Type        string
	Amount      int
	Description string
}

const sqlCreateTransaction = `
INSERT INTO transaction_history (user_id, type, amount, description)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, type, amount, description, created_at
`

// CreateTransaction appends one entry to the credit ledger
func (s *Store) CreateTransaction(ctx context.Context, params CreateTransactionParams) (Transaction, error) {
	var transaction Transaction
	err := s.db.GetContext(ctx, &transaction, sqlCreateTransaction,
		params.UserID,
		params.Type,
		params.Amount,
		params.Description)
	if err != nil {
		s.logger.Error(ctx, "failed to create transaction", err)
		return Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return transaction, nil
}

const sqlGetTransactionsByUser = `
SELECT id, user_id, type, amount, description, created_at
FROM transaction_history
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`

// GetTransactionsByUser retrieves a user's most recent ledger entries
func (s *Store) GetTransactionsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Transaction, error) {
	var transactions []Transaction
	err := s.db.SelectContext(ctx, &transactions, sqlGetTransactionsByUser, userID, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get transactions by user", err)
		return nil, fmt.Errorf("failed to get transactions by user: %w", err)
	}
	return transactions, nil
}
