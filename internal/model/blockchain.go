package model

type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

type FeeEstimate struct {
	FastestFee  int64 `json:"fastestFee"`
	HalfHourFee int64 `json:"halfHourFee"`
	HourFee     int64 `json:"hourFee"`
	EconomyFee  int64 `json:"economyFee"`
	MinimumFee  int64 `json:"minimumFee"`
}

// DefaultFeeEstimate is served when the explorer cannot be reached.
var DefaultFeeEstimate = FeeEstimate{
	FastestFee:  15,
	HalfHourFee: 10,
	HourFee:     8,
	EconomyFee:  5,
	MinimumFee:  1,
}

type MempoolStats struct {
	Count        int64       `json:"count"`
	VSize        int64       `json:"vsize"`
	TotalFee     int64       `json:"totalFee"`
	FeeHistogram [][]float64 `json:"feeHistogram,omitempty"`
}

type BlockSummary struct {
	Height    int64  `json:"height"`
	Hash      string `json:"hash"`
	Timestamp int64  `json:"timestamp"`
	TxCount   int64  `json:"txCount"`
	Size      int64  `json:"size"`
}

type AddressBalance struct {
	Address                 string  `json:"address"`
	Balance                 int64   `json:"balance"`
	ConfirmedBalance        int64   `json:"confirmedBalance"`
	UnconfirmedBalance      int64   `json:"unconfirmedBalance"`
	Transactions            int64   `json:"transactions"`
	ConfirmedTransactions   int64   `json:"confirmedTransactions"`
	UnconfirmedTransactions int64   `json:"unconfirmedTransactions"`
	HasBalance              bool    `json:"hasBalance"`
	HasTransactions         bool    `json:"hasTransactions"`
	Network                 Network `json:"network"`
	Note                    string  `json:"note,omitempty"`
}

type BlockchainOverview struct {
	BlockHeight int64        `json:"blockHeight"`
	Fees        FeeEstimate  `json:"fees"`
	Mempool     MempoolStats `json:"mempool"`
	Network     Network      `json:"network"`
}

type BTCPrice struct {
	USD         float64 `json:"usd"`
	Change24h   float64 `json:"usd_24h_change"`
	LastUpdated int64   `json:"lastUpdated"`
	Stale       bool    `json:"stale,omitempty"`
}

type PaymentState string

const (
	PaymentPending   PaymentState = "pending"
	PaymentSent      PaymentState = "sent"
	PaymentConfirmed PaymentState = "confirmed"
)

type PaymentStatus struct {
	OrderID          string       `json:"orderId"`
	Address          string       `json:"address"`
	RequiredAmount   int64        `json:"requiredAmount"`
	ConfirmedBalance int64        `json:"confirmedBalance"`
	Balance          int64        `json:"balance"`
	State            PaymentState `json:"paymentStatus"`
}

// PaymentInfo is the ordinals service's own view of an order's payment.
type PaymentInfo struct {
	OrderID       string `json:"orderId"`
	PaymentStatus string `json:"paymentStatus"`
	Amount        int64  `json:"amount"`
	Address       string `json:"address"`
	TxID          string `json:"txid,omitempty"`
}

type ConfirmPaymentDTO struct {
	TxID          string `json:"txid"`
	PaymentAmount int64  `json:"paymentAmount,omitempty"`
}

// PaymentConfirmation is the upstream wire format for a manual payment report.
type PaymentConfirmation struct {
	OrderID       string `json:"orderId"`
	TxID          string `json:"txid"`
	PaymentAmount int64  `json:"paymentAmount,omitempty"`
	PaymentMethod string `json:"paymentMethod"`
}

type ConfirmedPayment struct {
	OrderID string `json:"orderId"`
	TxID    string `json:"txid"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
