package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

const (
	ErrInternalServerMessage      = "internal server error"
	ErrOrderIDRequiredMessage     = "order ID is required"
	ErrOrderInvalidIDMessage      = "please enter a valid UUID format order ID"
	ErrOrderNotFoundMessage       = "order not found"
	ErrOrderAlreadyTrackedMessage = "order is already in your tracking list"
	ErrUpstreamMessage            = "upstream service unavailable"
	ErrRateLimitedMessage         = "upstream rate limit exceeded"
	ErrInvalidAddressMessage      = "invalid bitcoin address"
	ErrInvalidTypeMessage         = "invalid type parameter"
	ErrUnknownStatusMessage       = "unknown order status"
	ErrInvalidJSONMessage         = "invalid JSON"

	ErrReceiveAddressRequiredMessage = "receive address required"
	ErrOrderTypeRequiredMessage      = "order type required"
	ErrInvalidOrderTypeMessage       = "unsupported order type"
	ErrInscriptionContentMessage     = "files or text required for inscription"
	ErrBRC20ValidationPrefix         = "BRC-20 validation failed: "

	ErrBRC20ParamsRequiredMessage   = "address or ticker parameter is required"
	ErrBRC20InvalidParamsMessage    = "invalid request parameters"
	ErrBRC20InvalidTickerMessage    = "invalid BRC-20 ticker"
	ErrTickerInfoMessage            = "failed to fetch ticker information"
	ErrPaymentParamsRequiredMessage = "transaction ID and order ID are required"
	ErrInvalidTxIDMessage           = "invalid transaction ID"
)

var (
	ErrOrderNotFound       = errors.New(ErrOrderNotFoundMessage)
	ErrInvalidOrderID      = errors.New(ErrOrderInvalidIDMessage)
	ErrOrderAlreadyTracked = errors.New(ErrOrderAlreadyTrackedMessage)
	ErrUpstreamUnavailable = errors.New(ErrUpstreamMessage)
	ErrRateLimited         = errors.New(ErrRateLimitedMessage)
	ErrAPIKeyMissing       = errors.New("ordinals API key is not configured")
	ErrBRC20AccessLimited  = errors.New("BRC-20 API access limited")
)

// Envelope is the response shape shared by every dashboard endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
