package service

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/pgk/bitcoin"
)

const maxBRC20Decimals = 18

func validateOrderID(id string) *model.APIError {
	if strings.TrimSpace(id) == "" {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrOrderIDRequiredMessage,
		}
	}

	// uuid.Parse also takes braces, urn:uuid: and the undashed form.
	parsed, err := uuid.Parse(id)
	if err != nil || len(id) != 36 || parsed.String() != strings.ToLower(id) {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrOrderInvalidIDMessage,
		}
	}

	return nil
}

func validateAddress(address string, network model.Network) *model.APIError {
	if !bitcoin.ValidateAddress(address, string(network)) {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("%s for %s", model.ErrInvalidAddressMessage, network),
		}
	}

	return nil
}

func validateCreateOrder(req model.CreateOrderRequest, network model.Network) *model.APIError {
	badRequest := func(msg string) *model.APIError {
		return &model.APIError{Code: http.StatusBadRequest, Message: msg}
	}

	if req.ReceiveAddress == "" {
		return badRequest(model.ErrReceiveAddressRequiredMessage)
	}
	if req.Type == "" {
		return badRequest(model.ErrOrderTypeRequiredMessage)
	}
	if apiErr := validateAddress(req.ReceiveAddress, network); apiErr != nil {
		return apiErr
	}

	switch req.Type {
	case model.OrderTypeInscription:
		if len(req.Files) == 0 && req.TextContent == "" {
			return badRequest(model.ErrInscriptionContentMessage)
		}
	case model.OrderTypeBRC20Deploy, model.OrderTypeBRC20Mint, model.OrderTypeBRC20Transfer:
		op := brc20Operation(req.Type)
		if err := validateBRC20(req.BRC20Details, op); err != nil {
			return badRequest(model.ErrBRC20ValidationPrefix + err.Error())
		}
	default:
		return badRequest(model.ErrInvalidOrderTypeMessage)
	}

	return nil
}

func brc20Operation(t model.OrderType) model.BRC20Operation {
	return model.BRC20Operation(strings.TrimPrefix(string(t), "brc20-"))
}

func validateBRC20(details *model.BRC20Details, op model.BRC20Operation) error {
	if details == nil {
		return errors.New("BRC-20 details required")
	}
	if !bitcoin.ValidBRC20Ticker(details.Ticker) {
		return errors.New("ticker must be 1-4 letters or digits")
	}
	if details.Operation != op {
		return fmt.Errorf("operation must be %q", op)
	}

	switch op {
	case model.BRC20Deploy:
		maxSupply, ok := positive(details.MaxSupply)
		if !ok {
			return errors.New("max supply must be positive")
		}
		mintLimit, ok := positive(details.MintLimit)
		if !ok {
			return errors.New("mint limit must be positive")
		}
		if mintLimit > maxSupply {
			return errors.New("mint limit cannot exceed max supply")
		}
		if details.Decimals != nil && (*details.Decimals < 0 || *details.Decimals > maxBRC20Decimals) {
			return errors.New("decimals must be 0-18")
		}

	case model.BRC20Mint, model.BRC20Transfer:
		if _, ok := positive(details.Amount); !ok {
			return errors.New("amount must be positive")
		}
		if op == model.BRC20Transfer && !anyNetworkAddress(details.To) {
			return errors.New("recipient address invalid")
		}
	}

	return nil
}

func anyNetworkAddress(address string) bool {
	return bitcoin.ValidateAddress(address, bitcoin.Mainnet) || bitcoin.ValidateAddress(address, bitcoin.Testnet)
}

func positive(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
