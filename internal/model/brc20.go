package model

type BRC20Operation string

const (
	BRC20Deploy   BRC20Operation = "deploy"
	BRC20Mint     BRC20Operation = "mint"
	BRC20Transfer BRC20Operation = "transfer"
)

type BRC20Details struct {
	Ticker    string         `json:"ticker"`
	Operation BRC20Operation `json:"operation"`
	Amount    string         `json:"amount,omitempty"`
	MaxSupply string         `json:"maxSupply,omitempty"`
	MintLimit string         `json:"mintLimit,omitempty"`
	Decimals  *int           `json:"decimals,omitempty"`
	To        string         `json:"to,omitempty"`
}

// BRC20Envelope is the JSON body inscribed for a BRC-20 operation.
type BRC20Envelope struct {
	P    string `json:"p"`
	Op   string `json:"op"`
	Tick string `json:"tick"`
	Max  string `json:"max,omitempty"`
	Lim  string `json:"lim,omitempty"`
	Dec  string `json:"dec,omitempty"`
	Amt  string `json:"amt,omitempty"`
	To   string `json:"to,omitempty"`
}

type CreateOrderRequest struct {
	Type           OrderType     `json:"type"`
	ReceiveAddress string        `json:"receiveAddress"`
	FeeRate        float64       `json:"feeRate,omitempty"`
	Fee            *int64        `json:"fee,omitempty"`
	TextContent    string        `json:"textContent,omitempty"`
	Title          string        `json:"title,omitempty"`
	Description    string        `json:"description,omitempty"`
	Files          []OrderFile   `json:"files,omitempty"`
	BRC20Details   *BRC20Details `json:"brc20Details,omitempty"`
}

type CreatedOrder struct {
	OrderID        string  `json:"orderId"`
	PaymentAddress string  `json:"paymentAddress"`
	Amount         int64   `json:"amount"`
	FeeRate        int64   `json:"feeRate"`
	Network        Network `json:"network"`
}

// OrdinalsFile and OrdinalsOrderPayload are the upstream order-creation wire format.
type OrdinalsFile struct {
	Name    string `json:"name"`
	DataURL string `json:"dataURL"`
	Size    int64  `json:"size"`
}

type OrdinalsOrderPayload struct {
	ReceiveAddress string         `json:"receiveAddress"`
	Fee            int64          `json:"fee"`
	Files          []OrdinalsFile `json:"files,omitempty"`
	Title          string         `json:"title,omitempty"`
	Description    string         `json:"description,omitempty"`
}

type BRC20Token struct {
	Ticker       string `json:"ticker"`
	Balance      string `json:"balance"`
	Available    string `json:"available"`
	Transferable string `json:"transferable"`
	Decimals     int    `json:"decimals"`
}

// BRC20Balances is always returned with success; Error explains an empty
// list that came from a failed lookup rather than an empty wallet.
type BRC20Balances struct {
	Address   string       `json:"address"`
	Tokens    []BRC20Token `json:"tokens"`
	HasTokens bool         `json:"hasTokens"`
	Message   string       `json:"message"`
	Error     string       `json:"error,omitempty"`
}
