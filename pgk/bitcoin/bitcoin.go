// Package bitcoin holds the address and fee arithmetic the dashboard needs.
// It only pattern-matches; no checksum is verified.
package bitcoin

import (
	"math"
	"regexp"
	"strings"
)

const SatsPerBTC = 100_000_000

const (
	Mainnet = "mainnet"
	Testnet = "testnet"
	Unknown = "unknown"
)

type AddressType string

const (
	P2PKH          AddressType = "p2pkh"
	P2SH           AddressType = "p2sh"
	P2WPKH         AddressType = "p2wpkh"
	P2TR           AddressType = "p2tr"
	AddressUnknown AddressType = "unknown"
)

var (
	mainnetPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^1[1-9A-HJ-NP-Za-km-z]{25,34}$`),
		regexp.MustCompile(`^3[1-9A-HJ-NP-Za-km-z]{25,34}$`),
		regexp.MustCompile(`^bc1[a-z0-9]{39,59}$`),
		regexp.MustCompile(`^bc1p[a-z0-9]{58}$`),
	}
	testnetPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[mn][1-9A-HJ-NP-Za-km-z]{25,34}$`),
		regexp.MustCompile(`^2[1-9A-HJ-NP-Za-km-z]{25,34}$`),
		regexp.MustCompile(`^tb1[a-z0-9]{39,59}$`),
		regexp.MustCompile(`^tb1p[a-z0-9]{58}$`),
	}

	tickerPattern = regexp.MustCompile(`^[a-zA-Z0-9]{1,4}$`)
)

// ValidateAddress checks address against the prefix rules of network.
// Any network other than testnet is treated as mainnet.
func ValidateAddress(address, network string) bool {
	if address == "" {
		return false
	}

	patterns := mainnetPatterns
	if network == Testnet {
		patterns = testnetPatterns
	}

	for _, p := range patterns {
		if p.MatchString(address) {
			return true
		}
	}
	return false
}

func DetectAddressType(address string) AddressType {
	switch {
	case strings.HasPrefix(address, "1"), strings.HasPrefix(address, "m"), strings.HasPrefix(address, "n"):
		return P2PKH
	case strings.HasPrefix(address, "3"), strings.HasPrefix(address, "2"):
		return P2SH
	case strings.HasPrefix(address, "bc1p"), strings.HasPrefix(address, "tb1p"):
		return P2TR
	case (strings.HasPrefix(address, "bc1") || strings.HasPrefix(address, "tb1")) && len(address) == 42:
		return P2WPKH
	}
	return AddressUnknown
}

func NetworkFromAddress(address string) string {
	switch {
	case strings.HasPrefix(address, "1"), strings.HasPrefix(address, "3"), strings.HasPrefix(address, "bc1"):
		return Mainnet
	case strings.HasPrefix(address, "m"), strings.HasPrefix(address, "n"),
		strings.HasPrefix(address, "2"), strings.HasPrefix(address, "tb1"):
		return Testnet
	}
	return Unknown
}

func ValidBRC20Ticker(ticker string) bool {
	return tickerPattern.MatchString(ticker)
}

func SatsToBTC(sats int64) float64 {
	return float64(sats) / SatsPerBTC
}

func BTCToSats(btc float64) int64 {
	return int64(math.Round(btc * SatsPerBTC))
}

// EstimateInscriptionFee adds the fixed reveal overhead of 150 vbytes.
func EstimateInscriptionFee(contentSize int64, feeRate float64) int64 {
	return int64(math.Ceil(float64(contentSize+150) * feeRate))
}

func EstimateTransactionSize(inputs, outputs int) int64 {
	return int64(inputs*68 + outputs*31 + 10)
}

func CalculateFee(inputs, outputs int, feeRate float64) int64 {
	return int64(math.Ceil(float64(EstimateTransactionSize(inputs, outputs)) * feeRate))
}
