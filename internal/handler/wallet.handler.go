package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/internal/middleware"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/wallet"
	"github.com/SYK3S999/tamweeli-sub001/pkg/response"

	"go.uber.org/zap"
)

type WalletHandler struct {
	uc     *wallet.Service
	logger *zap.Logger
}

func NewWalletHandler(uc *wallet.Service, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{uc: uc, logger: logger}
}

func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	wlt, err := h.uc.GetOrCreate(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, wlt)
}

func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.uc.Deposit)
}

func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.uc.Withdraw)
}

type walletMutation struct {
	Wallet      *domain.Wallet      `json:"wallet"`
	Transaction *domain.Transaction `json:"transaction"`
}

func (h *WalletHandler) move(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, userID string, amount float64) (*domain.Wallet, *domain.Transaction, error)) {

	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	wlt, tx, err := op(r.Context(), middleware.UserID(r.Context()), body.Amount)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, walletMutation{Wallet: wlt, Transaction: tx})
}

func (h *WalletHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.uc.Transactions(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, txs)
}
