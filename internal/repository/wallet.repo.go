package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/pkg/id"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WalletRepository struct {
	db *pgxpool.Pool
}

func NewWalletRepository(db *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, user_id, balance, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, w.ID, w.UserID, w.Balance, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == "23505" {
			return xerrors.ErrWalletExists
		}
		return fmt.Errorf("create wallet: %w", err)
	}
	return nil
}

func (r *WalletRepository) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	var w domain.Wallet
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, balance, created_at, updated_at FROM wallets WHERE user_id = $1`,
		userID).Scan(&w.ID, &w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrWalletNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return &w, nil
}

// Credit adds amount to the user's balance and appends the matching
// transaction record in a single database transaction.
func (r *WalletRepository) Credit(ctx context.Context, userID string, amount float64, txType domain.TransactionType, description string, refID *string) (*domain.Wallet, *domain.Transaction, error) {
	return r.apply(ctx, userID, amount, txType, description, refID, `
		UPDATE wallets SET balance = balance + $1, updated_at = $2
		WHERE user_id = $3
		RETURNING id, user_id, balance, created_at, updated_at`)
}

// Debit subtracts amount from the user's balance. The balance check happens
// inside the UPDATE itself, so a concurrent debit cannot overdraw the wallet
// (the lost-update race a naive read-modify-write would have).
func (r *WalletRepository) Debit(ctx context.Context, userID string, amount float64, txType domain.TransactionType, description string, refID *string) (*domain.Wallet, *domain.Transaction, error) {
	w, t, err := r.apply(ctx, userID, amount, txType, description, refID, `
		UPDATE wallets SET balance = balance - $1, updated_at = $2
		WHERE user_id = $3 AND balance >= $1
		RETURNING id, user_id, balance, created_at, updated_at`)
	if errors.Is(err, xerrors.ErrWalletNotFound) {
		// Distinguish a missing wallet from an overdraw attempt.
		if _, getErr := r.GetByUserID(ctx, userID); getErr == nil {
			return nil, nil, xerrors.ErrInsufficientFunds
		}
		return nil, nil, xerrors.ErrWalletNotFound
	}
	return w, t, err
}

// Transfer moves amount from one user's wallet to another's, recording a
// transaction on each side, all inside a single database transaction.
func (r *WalletRepository) Transfer(ctx context.Context, fromUserID, toUserID string, amount float64, debitType, creditType domain.TransactionType, description string, refID *string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transfer: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	var fromWalletID string
	err = tx.QueryRow(ctx, `
		UPDATE wallets SET balance = balance - $1, updated_at = $2
		WHERE user_id = $3 AND balance >= $1
		RETURNING id`, amount, now, fromUserID).Scan(&fromWalletID)
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.ErrInsufficientFunds
	}
	if err != nil {
		return fmt.Errorf("debit sender: %w", err)
	}

	var toWalletID string
	err = tx.QueryRow(ctx, `
		UPDATE wallets SET balance = balance + $1, updated_at = $2
		WHERE user_id = $3
		RETURNING id`, amount, now, toUserID).Scan(&toWalletID)
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.ErrWalletNotFound
	}
	if err != nil {
		return fmt.Errorf("credit receiver: %w", err)
	}

	insert := `INSERT INTO transactions
		(id, wallet_id, user_id, type, amount, status, description, ref_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := tx.Exec(ctx, insert,
		id.New(id.Transaction), fromWalletID, fromUserID, debitType, amount,
		domain.TxCompleted, description, refID, now); err != nil {
		return fmt.Errorf("record sender transaction: %w", err)
	}
	if _, err := tx.Exec(ctx, insert,
		id.New(id.Transaction), toWalletID, toUserID, creditType, amount,
		domain.TxCompleted, description, refID, now); err != nil {
		return fmt.Errorf("record receiver transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transfer: %w", err)
	}
	return nil
}

func (r *WalletRepository) apply(ctx context.Context, userID string, amount float64, txType domain.TransactionType, description string, refID *string, update string) (*domain.Wallet, *domain.Transaction, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin wallet update: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	var w domain.Wallet
	err = tx.QueryRow(ctx, update, amount, now, userID).
		Scan(&w.ID, &w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, xerrors.ErrWalletNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("update balance: %w", err)
	}

	t := &domain.Transaction{
		ID:          id.New(id.Transaction),
		WalletID:    w.ID,
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Status:      domain.TxCompleted,
		Description: description,
		RefID:       refID,
		CreatedAt:   now,
	}
	if _, err := tx.Exec(ctx, `INSERT INTO transactions
		(id, wallet_id, user_id, type, amount, status, description, ref_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.WalletID, t.UserID, t.Type, t.Amount, t.Status, t.Description,
		t.RefID, t.CreatedAt); err != nil {
		return nil, nil, fmt.Errorf("append transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit wallet update: %w", err)
	}
	return &w, t, nil
}
