package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
)

const (
	testnetAddress = "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx"
	mainnetAddress = "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"
)

func intPtr(v int) *int { return &v }

func TestValidateOrderID(t *testing.T) {
	require.Nil(t, validateOrderID("b1a8e829-5411-4b3e-8b41-c1a2894ee023"))

	apiErr := validateOrderID("  ")
	require.NotNil(t, apiErr)
	assert.Equal(t, model.ErrOrderIDRequiredMessage, apiErr.Message)

	apiErr = validateOrderID("not-a-uuid")
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, model.ErrOrderInvalidIDMessage, apiErr.Message)
}

func TestValidateOrderID_CanonicalFormOnly(t *testing.T) {
	assert.Nil(t, validateOrderID("B1A8E829-5411-4B3E-8B41-C1A2894EE023"))

	for _, id := range []string{
		"urn:uuid:b1a8e829-5411-4b3e-8b41-c1a2894ee023",
		"{b1a8e829-5411-4b3e-8b41-c1a2894ee023}",
		"b1a8e82954114b3e8b41c1a2894ee023",
		" b1a8e829-5411-4b3e-8b41-c1a2894ee023",
	} {
		apiErr := validateOrderID(id)
		require.NotNil(t, apiErr, id)
		assert.Equal(t, model.ErrOrderInvalidIDMessage, apiErr.Message, id)
	}
}

func TestValidateAddress(t *testing.T) {
	assert.Nil(t, validateAddress(testnetAddress, model.NetworkTestnet))

	apiErr := validateAddress(mainnetAddress, model.NetworkTestnet)
	require.NotNil(t, apiErr)
	assert.Equal(t, "invalid bitcoin address for testnet", apiErr.Message)
}

func TestValidateCreateOrder(t *testing.T) {
	inscription := model.CreateOrderRequest{
		Type:           model.OrderTypeInscription,
		ReceiveAddress: testnetAddress,
		TextContent:    "gm",
	}

	tests := []struct {
		name    string
		mutate  func(r *model.CreateOrderRequest)
		wantMsg string
	}{
		{name: "valid text inscription", mutate: func(*model.CreateOrderRequest) {}},
		{
			name:    "missing address",
			mutate:  func(r *model.CreateOrderRequest) { r.ReceiveAddress = "" },
			wantMsg: model.ErrReceiveAddressRequiredMessage,
		},
		{
			name:    "missing type",
			mutate:  func(r *model.CreateOrderRequest) { r.Type = "" },
			wantMsg: model.ErrOrderTypeRequiredMessage,
		},
		{
			name:    "wrong network address",
			mutate:  func(r *model.CreateOrderRequest) { r.ReceiveAddress = mainnetAddress },
			wantMsg: "invalid bitcoin address for testnet",
		},
		{
			name:    "no content",
			mutate:  func(r *model.CreateOrderRequest) { r.TextContent = "" },
			wantMsg: model.ErrInscriptionContentMessage,
		},
		{
			name:    "unsupported type",
			mutate:  func(r *model.CreateOrderRequest) { r.Type = model.OrderTypeCollection },
			wantMsg: model.ErrInvalidOrderTypeMessage,
		},
		{
			name: "brc20 without details",
			mutate: func(r *model.CreateOrderRequest) {
				r.Type = model.OrderTypeBRC20Mint
			},
			wantMsg: model.ErrBRC20ValidationPrefix + "BRC-20 details required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := inscription
			tt.mutate(&req)

			apiErr := validateCreateOrder(req, model.NetworkTestnet)
			if tt.wantMsg == "" {
				assert.Nil(t, apiErr)
				return
			}
			require.NotNil(t, apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Code)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestValidateBRC20(t *testing.T) {
	tests := []struct {
		name    string
		details model.BRC20Details
		op      model.BRC20Operation
		wantErr string
	}{
		{
			name:    "deploy ok",
			details: model.BRC20Details{Ticker: "ordi", Operation: model.BRC20Deploy, MaxSupply: "21000000", MintLimit: "1000", Decimals: intPtr(18)},
			op:      model.BRC20Deploy,
		},
		{
			name:    "bad ticker",
			details: model.BRC20Details{Ticker: "toolong", Operation: model.BRC20Mint, Amount: "1"},
			op:      model.BRC20Mint,
			wantErr: "ticker must be 1-4 letters or digits",
		},
		{
			name:    "operation mismatch",
			details: model.BRC20Details{Ticker: "ordi", Operation: model.BRC20Mint, Amount: "1"},
			op:      model.BRC20Transfer,
			wantErr: `operation must be "transfer"`,
		},
		{
			name:    "limit above supply",
			details: model.BRC20Details{Ticker: "ordi", Operation: model.BRC20Deploy, MaxSupply: "10", MintLimit: "11"},
			op:      model.BRC20Deploy,
			wantErr: "mint limit cannot exceed max supply",
		},
		{
			name:    "zero supply",
			details: model.BRC20Details{Ticker: "ordi", Operation: model.BRC20Deploy, MaxSupply: "0", MintLimit: "1"},
			op:      model.BRC20Deploy,
			wantErr: "max supply must be positive",
		},
		{
			name:    "too many decimals",
			details: model.BRC20Details{Ticker: "ordi", Operation: model.BRC20Deploy, MaxSupply: "10", MintLimit: "1", Decimals: intPtr(19)},
			op:      model.BRC20Deploy,
			wantErr: "decimals must be 0-18",
		},
		{
			name:    "mint amount not a number",
			details: model.BRC20Details{Ticker: "ordi", Operation: model.BRC20Mint, Amount: "lots"},
			op:      model.BRC20Mint,
			wantErr: "amount must be positive",
		},
		{
			name:    "transfer to any network",
			details: model.BRC20Details{Ticker: "ordi", Operation: model.BRC20Transfer, Amount: "5", To: mainnetAddress},
			op:      model.BRC20Transfer,
		},
		{
			name:    "transfer bad recipient",
			details: model.BRC20Details{Ticker: "ordi", Operation: model.BRC20Transfer, Amount: "5", To: "nobody"},
			op:      model.BRC20Transfer,
			wantErr: "recipient address invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBRC20(&tt.details, tt.op)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestBRC20Operation(t *testing.T) {
	assert.Equal(t, model.BRC20Deploy, brc20Operation(model.OrderTypeBRC20Deploy))
	assert.Equal(t, model.BRC20Transfer, brc20Operation(model.OrderTypeBRC20Transfer))
}
