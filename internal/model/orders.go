package model

type OrderStatus string

const (
	OrderStatusPending          OrderStatus = "pending"
	OrderStatusPaymentPending   OrderStatus = "payment-pending"
	OrderStatusWaitingPayment   OrderStatus = "waiting-payment"
	OrderStatusPaymentReceived  OrderStatus = "payment-received"
	OrderStatusPaymentConfirmed OrderStatus = "payment-confirmed"
	OrderStatusConfirming       OrderStatus = "confirming"
	OrderStatusConfirmed        OrderStatus = "confirmed"
	OrderStatusReady            OrderStatus = "ready"
	OrderStatusInscribing       OrderStatus = "inscribing"
	OrderStatusProcessing       OrderStatus = "processing"
	OrderStatusCompleted        OrderStatus = "completed"
	OrderStatusSuccess          OrderStatus = "success"
	OrderStatusFailed           OrderStatus = "failed"
	OrderStatusCancelled        OrderStatus = "cancelled"
	OrderStatusError            OrderStatus = "error"
)

type OrderType string

const (
	OrderTypeInscription   OrderType = "inscription"
	OrderTypeBRC20Mint     OrderType = "brc20-mint"
	OrderTypeBRC20Transfer OrderType = "brc20-transfer"
	OrderTypeBRC20Deploy   OrderType = "brc20-deploy"
	OrderTypeCollection    OrderType = "collection"
	OrderTypeBulk          OrderType = "bulk"
)

// Order is the upstream order shape. Every field is optional on the wire.
type Order struct {
	ID        string      `json:"id"`
	Type      OrderType   `json:"type"`
	Status    OrderStatus `json:"status"`
	State     string      `json:"state,omitempty"`
	CreatedAt Timestamp   `json:"createdAt,omitzero"`
	UpdatedAt Timestamp   `json:"updatedAt,omitzero"`

	PaymentAddress string  `json:"paymentAddress"`
	PaymentAmount  int64   `json:"paymentAmount"`
	PaidAmount     int64   `json:"paidAmount,omitempty"`
	FeeRate        float64 `json:"feeRate"`
	TotalFee       int64   `json:"totalFee"`

	Inscriptions []InscriptionItem `json:"inscriptions,omitempty"`
	BRC20Details *BRC20Details     `json:"brc20Details,omitempty"`

	TxID              string `json:"txid,omitempty"`
	InscriptionID     string `json:"inscriptionId,omitempty"`
	InscriptionNumber *int64 `json:"inscriptionNumber,omitempty"`
	BlockHeight       *int64 `json:"blockHeight,omitempty"`
	Confirmations     *int64 `json:"confirmations,omitempty"`

	ReceiveAddress string      `json:"receiveAddress"`
	Files          []OrderFile `json:"files,omitempty"`
	Network        Network     `json:"network,omitempty"`

	Charge    *Charge `json:"charge,omitempty"`
	FeeCharge *Charge `json:"feeCharge,omitempty"`
}

type InscriptionItem struct {
	ID                string `json:"id,omitempty"`
	FileName          string `json:"fileName,omitempty"`
	FileType          string `json:"fileType,omitempty"`
	FileSize          int64  `json:"fileSize,omitempty"`
	InscriptionID     string `json:"inscriptionId,omitempty"`
	InscriptionNumber *int64 `json:"inscriptionNumber,omitempty"`
	TxID              string `json:"txid,omitempty"`
}

type OrderFile struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Size    int64  `json:"size"`
	Content string `json:"content,omitempty"`
}

type Charge struct {
	ID          string `json:"id"`
	Address     string `json:"address"`
	Amount      int64  `json:"amount"`
	Status      string `json:"status"`
	State       string `json:"state,omitempty"`
	TxID        string `json:"txid,omitempty"`
	AutoSettle  bool   `json:"auto_settle"`
	CreatedAt   int64  `json:"created_at"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

// StatusCounts is recomputed from the current order list and never stored.
type StatusCounts struct {
	All              int `json:"all"`
	Pending          int `json:"pending"`
	PaymentPending   int `json:"payment-pending"`
	WaitingPayment   int `json:"waiting-payment"`
	PaymentReceived  int `json:"payment-received"`
	PaymentConfirmed int `json:"payment-confirmed"`
	Confirming       int `json:"confirming"`
	Confirmed        int `json:"confirmed"`
	Ready            int `json:"ready"`
	Inscribing       int `json:"inscribing"`
	Processing       int `json:"processing"`
	Completed        int `json:"completed"`
	Success          int `json:"success"`
	Failed           int `json:"failed"`
	Cancelled        int `json:"cancelled"`
	Error            int `json:"error"`

	Categorized CategoryCounts `json:"categorized"`
}

type CategoryCounts struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Failed    int `json:"failed"`
}

// OrderView is an order together with everything the UI derives from it.
type OrderView struct {
	Order
	Description  string `json:"description"`
	TypeLabel    string `json:"typeLabel"`
	StatusLabel  string `json:"statusLabel"`
	Category     string `json:"category"`
	Progress     int    `json:"progress"`
	IsActive     bool   `json:"isActive"`
	IsTerminal   bool   `json:"isTerminal"`
	TimeEstimate string `json:"timeEstimate"`
}

type OrdersPage struct {
	Orders          []OrderView  `json:"orders"`
	Total           int          `json:"total"`
	StatusCounts    StatusCounts `json:"statusCounts"`
	ActiveCount     int          `json:"activeOrderCount"`
	RefetchInterval int64        `json:"refetchIntervalMs"`
	Network         Network      `json:"network"`
}

type OrdersQuery struct {
	Search    string
	Status    string
	Category  string
	SortBy    string
	Direction string
	Limit     int
}

type OrderSnapshot struct {
	OrderID    string      `json:"orderId"`
	Network    Network     `json:"network"`
	Status     OrderStatus `json:"status"`
	Category   string      `json:"category"`
	Progress   int         `json:"progress"`
	IsTerminal bool        `json:"isTerminal"`
}
