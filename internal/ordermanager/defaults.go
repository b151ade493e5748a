package ordermanager

import "github.com/ibeloyar/inscribe-dashboard/internal/model"

var defaultOrderIDs = map[model.Network][]string{
	model.NetworkMainnet: {
		"39c9bdcf-6459-4509-b7a6-7138ac826378",
		"7d138fda-001c-4421-b1df-cbb5b8571d20",
		"8bb1d29e-171a-4a63-9b38-c5ee3e7fe2e1",
		"800fa3c4-7004-43e8-823e-928a2e5c30a0",
	},
	model.NetworkTestnet: {
		"b1a8e829-5411-4b3e-8b41-c1a2894ee023",
		"961a4f59-d6e7-4d08-b351-f9872f98b9d5",
		"d857c9cd-b628-4b8c-8d03-e765563a4e50",
	},
}

// DefaultOrderIDs returns a fresh copy of the seed list for network.
func DefaultOrderIDs(network model.Network) []string {
	ids := defaultOrderIDs[network]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
