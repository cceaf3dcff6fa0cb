package handler

import (
	"errors"
	"net/http"

	"github.com/SYK3S999/tamweeli-sub001/pkg/response"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"

	"go.uber.org/zap"
)

// writeError maps the sentinel error taxonomy onto HTTP statuses. Anything
// unrecognized is a 500 and gets logged with its real cause; the client only
// sees a generic message.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound),
		errors.Is(err, xerrors.ErrUserNotFound),
		errors.Is(err, xerrors.ErrProjectNotFound),
		errors.Is(err, xerrors.ErrInvestmentNotFound),
		errors.Is(err, xerrors.ErrWalletNotFound),
		errors.Is(err, xerrors.ErrConversationNotFound),
		errors.Is(err, xerrors.ErrServiceNotFound),
		errors.Is(err, xerrors.ErrServiceRequestNotFound):
		response.Error(w, http.StatusNotFound, err.Error())

	case errors.Is(err, xerrors.ErrInvalidCredentials),
		errors.Is(err, xerrors.ErrSessionNotFound),
		errors.Is(err, xerrors.ErrSessionExpired),
		errors.Is(err, xerrors.ErrInvalidToken):
		response.Error(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, xerrors.ErrNotProjectOwner),
		errors.Is(err, xerrors.ErrNotParticipant),
		errors.Is(err, xerrors.ErrNotServiceConsultant),
		errors.Is(err, xerrors.ErrForbidden):
		response.Error(w, http.StatusForbidden, err.Error())

	case errors.Is(err, xerrors.ErrEmailAlreadyInUse),
		errors.Is(err, xerrors.ErrUserAlreadyExists),
		errors.Is(err, xerrors.ErrWalletExists),
		errors.Is(err, xerrors.ErrInvalidStatusChange),
		errors.Is(err, xerrors.ErrInvestmentNotPending),
		errors.Is(err, xerrors.ErrInvestmentNotAccepted),
		errors.Is(err, xerrors.ErrRequestNotPending),
		errors.Is(err, xerrors.ErrProjectNotEditable),
		errors.Is(err, xerrors.ErrProjectNotApproved):
		response.Error(w, http.StatusConflict, err.Error())

	case errors.Is(err, xerrors.ErrInsufficientFunds),
		errors.Is(err, xerrors.ErrFundingExceeded):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, xerrors.ErrInvalidAmount),
		errors.Is(err, xerrors.ErrFundingGoalTooLow),
		errors.Is(err, xerrors.ErrInvalidSector),
		errors.Is(err, xerrors.ErrInvalidContractType),
		errors.Is(err, xerrors.ErrInvalidUserType),
		errors.Is(err, xerrors.ErrInvalidEmailFormat),
		errors.Is(err, xerrors.ErrWeakPassword),
		errors.Is(err, xerrors.ErrTitleRequired),
		errors.Is(err, xerrors.ErrNameRequired),
		errors.Is(err, xerrors.ErrEmailRequired),
		errors.Is(err, xerrors.ErrPasswordRequired),
		errors.Is(err, xerrors.ErrEmptyMessage),
		errors.Is(err, xerrors.ErrSelfConversation),
		errors.Is(err, xerrors.ErrInvalidInput),
		errors.Is(err, xerrors.ErrInvalidRequest):
		response.Error(w, http.StatusBadRequest, err.Error())

	default:
		logger.Error("request failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
