package ordermanager

import (
	"fmt"
	"strings"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
)

// Description summarizes an order in one line: the BRC-20 operation first,
// then inscriptions, then files, then the type label.
func Description(order model.Order) string {
	if d := order.BRC20Details; d != nil && d.Ticker != "" {
		op := strings.ToUpper(string(d.Operation))
		if op == "" {
			op = "UNKNOWN"
		}
		amount := ""
		if d.Amount != "" {
			amount = " " + d.Amount
		}
		return strings.TrimSpace(fmt.Sprintf("%s%s %s", op, amount, d.Ticker))
	}

	if n := len(order.Inscriptions); n > 0 {
		if n > 1 {
			return fmt.Sprintf("%d inscriptions", n)
		}
		first := order.Inscriptions[0]
		return firstNonEmpty(first.FileName, first.FileType, "Single inscription")
	}

	if n := len(order.Files); n > 0 {
		if n > 1 {
			return fmt.Sprintf("%d files", n)
		}
		return firstNonEmpty(order.Files[0].Name, order.Files[0].Type, "Single file")
	}

	return TypeDisplay(string(order.Type))
}

func TypeDisplay(orderType string) string {
	switch model.OrderType(orderType) {
	case model.OrderTypeInscription:
		return "Inscription"
	case model.OrderTypeBRC20Mint:
		return "BRC-20 Mint"
	case model.OrderTypeBRC20Transfer:
		return "BRC-20 Transfer"
	case model.OrderTypeBRC20Deploy:
		return "BRC-20 Deploy"
	case model.OrderTypeCollection:
		return "Collection"
	case model.OrderTypeBulk:
		return "Bulk Order"
	}
	return firstNonEmpty(orderType, "Order")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
