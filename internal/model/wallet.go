package model

// TokenInfo is carried inside wallet session tokens.
type TokenInfo struct {
	Address string  `json:"address"`
	Network Network `json:"network"`
}

type ConnectWalletDTO struct {
	Address string `json:"address"`
}

type TrackOrderDTO struct {
	OrderID string `json:"orderId"`
}
