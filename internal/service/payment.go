package service

import (
	"context"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
)

const (
	paymentMethodWallet = "wallet"

	paymentReceived = "payment-received"
	paymentSent     = "payment-sent"
	paymentUnknown  = "unknown"
)

// ConfirmPayment reports a wallet payment to the ordinals service. A failed
// report still answers with payment-sent.
func (s *Service) ConfirmPayment(ctx context.Context, orderID string, in model.ConfirmPaymentDTO) (model.ConfirmedPayment, *model.APIError) {
	orderID = strings.TrimSpace(orderID)
	txid := strings.TrimSpace(in.TxID)

	if orderID == "" || txid == "" {
		return model.ConfirmedPayment{}, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrPaymentParamsRequiredMessage,
		}
	}
	if apiErr := validateOrderID(orderID); apiErr != nil {
		return model.ConfirmedPayment{}, apiErr
	}
	if !validTxID(txid) {
		return model.ConfirmedPayment{}, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrInvalidTxIDMessage,
		}
	}

	orderID = strings.ToLower(orderID)
	txid = strings.ToLower(txid)

	status, err := s.ordinals.ConfirmPayment(ctx, model.PaymentConfirmation{
		OrderID:       orderID,
		TxID:          txid,
		PaymentAmount: in.PaymentAmount,
		PaymentMethod: paymentMethodWallet,
	})
	if errors.Is(err, model.ErrAPIKeyMissing) {
		return model.ConfirmedPayment{}, upstreamError(err)
	}
	if err != nil {
		s.lg.Warnf("confirm payment %s: %v", orderID, err)
		return model.ConfirmedPayment{
			OrderID: orderID,
			TxID:    txid,
			Status:  paymentSent,
			Message: "Payment sent successfully",
		}, nil
	}

	if status == "" {
		status = paymentReceived
	}

	return model.ConfirmedPayment{
		OrderID: orderID,
		TxID:    txid,
		Status:  status,
		Message: "Payment confirmed successfully",
	}, nil
}

// PaymentInfo prefers the fee charge over the order's own payment fields.
func (s *Service) PaymentInfo(ctx context.Context, orderID string) (model.PaymentInfo, *model.APIError) {
	if apiErr := validateOrderID(orderID); apiErr != nil {
		return model.PaymentInfo{}, apiErr
	}

	order, err := s.ordinals.GetOrder(ctx, orderID)
	if err != nil {
		s.lg.Warnf("payment info %s: %v", orderID, err)
		return model.PaymentInfo{}, upstreamError(err)
	}

	info := model.PaymentInfo{
		OrderID:       orderID,
		PaymentStatus: order.State,
		Amount:        order.PaymentAmount,
		Address:       order.PaymentAddress,
		TxID:          order.TxID,
	}

	if fc := order.FeeCharge; fc != nil {
		if fc.State != "" {
			info.PaymentStatus = fc.State
		}
		if fc.Amount != 0 {
			info.Amount = fc.Amount
		}
		if fc.Address != "" {
			info.Address = fc.Address
		}
		if fc.TxID != "" {
			info.TxID = fc.TxID
		}
	}

	if info.PaymentStatus == "" {
		info.PaymentStatus = paymentUnknown
	}

	return info, nil
}

func validTxID(txid string) bool {
	if len(txid) != 64 {
		return false
	}
	_, err := hex.DecodeString(txid)
	return err == nil
}
