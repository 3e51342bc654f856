package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"auction-house/internal/auctionerrors"
	"auction-house/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain failures to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var failure *auctionerrors.Failure
	if !errors.As(err, &failure) {
		return http.StatusInternalServerError, "internal server error"
	}

	switch failure.Code {
	case auctionerrors.CodeListingNotFound, auctionerrors.CodeItemNotFound:
		return http.StatusNotFound, failure.Message
	case auctionerrors.CodeSellValidation, auctionerrors.CodeDurationExceeded, auctionerrors.CodeParseFailure:
		return http.StatusBadRequest, failure.Message
	case auctionerrors.CodeBidTooLow, auctionerrors.CodeBelowStartPrice, auctionerrors.CodeDuplicateBid,
		auctionerrors.CodeSelfBid, auctionerrors.CodeListingNotActive, auctionerrors.CodeListingExpired,
		auctionerrors.CodeListingHasBids, auctionerrors.CodeAlreadyTagged, auctionerrors.CodePlayerBusy,
		auctionerrors.CodeItemInTrade:
		return http.StatusConflict, failure.Message
	case auctionerrors.CodeNotSeller, auctionerrors.CodeItemAttuned:
		return http.StatusForbidden, failure.Message
	case auctionerrors.CodeInsufficientFunds, auctionerrors.CodeInsufficientBidItems,
		auctionerrors.CodeInsufficientStack, auctionerrors.CodeLootGeneratedStackSplit,
		auctionerrors.CodeNoCurrency:
		return http.StatusUnprocessableEntity, failure.Message
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
