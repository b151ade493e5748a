package service

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/pgk/bitcoin"
)

const (
	defaultMainnetFee = 15000
	defaultTestnetFee = 3000

	defaultTextFileName = "text.txt"
	defaultContentType  = "application/octet-stream"
	brc20Protocol       = "brc-20"
)

// buildPayload turns a validated create request into the upstream order payload.
func buildPayload(req model.CreateOrderRequest, network model.Network) (model.OrdinalsOrderPayload, error) {
	payload := model.OrdinalsOrderPayload{
		ReceiveAddress: req.ReceiveAddress,
		Title:          req.Title,
		Description:    req.Description,
	}

	switch {
	case req.Type == model.OrderTypeInscription:
		payload.Files = inscriptionFiles(req)
	case req.BRC20Details != nil:
		file, err := brc20File(*req.BRC20Details, brc20Operation(req.Type))
		if err != nil {
			return payload, err
		}
		payload.Files = []model.OrdinalsFile{file}
	}

	payload.Fee = orderFee(req, network, payload.Files)

	return payload, nil
}

// orderFee prefers an explicit fee, then an estimate from the fee rate, then
// the network default.
func orderFee(req model.CreateOrderRequest, network model.Network, files []model.OrdinalsFile) int64 {
	if req.Fee != nil {
		return *req.Fee
	}

	if req.FeeRate > 0 {
		var size int64
		for _, f := range files {
			size += f.Size
		}
		return bitcoin.EstimateInscriptionFee(size, req.FeeRate)
	}

	if network == model.NetworkTestnet {
		return defaultTestnetFee
	}
	return defaultMainnetFee
}

func inscriptionFiles(req model.CreateOrderRequest) []model.OrdinalsFile {
	if len(req.Files) > 0 {
		files := make([]model.OrdinalsFile, 0, len(req.Files))
		for _, f := range req.Files {
			files = append(files, model.OrdinalsFile{
				Name:    f.Name,
				DataURL: dataURL(f),
				Size:    f.Size,
			})
		}
		return files
	}

	if req.TextContent == "" {
		return nil
	}

	name := req.Title
	if name == "" {
		name = defaultTextFileName
	}

	return []model.OrdinalsFile{{
		Name:    name,
		DataURL: "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte(req.TextContent)),
		Size:    int64(len(req.TextContent)),
	}}
}

// dataURL keeps content that already is a data URL and otherwise treats it
// as base64 of the declared type.
func dataURL(f model.OrderFile) string {
	if strings.HasPrefix(f.Content, "data:") {
		return f.Content
	}

	contentType := f.Type
	if contentType == "" {
		contentType = defaultContentType
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, f.Content)
}

func brc20File(details model.BRC20Details, op model.BRC20Operation) (model.OrdinalsFile, error) {
	envelope := model.BRC20Envelope{
		P:    brc20Protocol,
		Op:   string(op),
		Tick: details.Ticker,
	}

	if op == model.BRC20Deploy {
		envelope.Max = details.MaxSupply
		envelope.Lim = details.MintLimit
		if details.Decimals != nil {
			envelope.Dec = fmt.Sprint(*details.Decimals)
		}
	} else {
		envelope.Amt = details.Amount
		if op == model.BRC20Transfer {
			envelope.To = details.To
		}
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return model.OrdinalsFile{}, fmt.Errorf("encode brc-20 envelope: %w", err)
	}

	return model.OrdinalsFile{
		Name:    fmt.Sprintf("%s-%s.txt", details.Ticker, op),
		DataURL: "data:application/json;base64," + base64.StdEncoding.EncodeToString(body),
		Size:    int64(len(body)),
	}, nil
}
