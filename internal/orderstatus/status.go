// Package orderstatus classifies order statuses for display, polling and
// dashboard roll-ups. Every function is pure and total: unknown input
// resolves to a documented default instead of an error.
package orderstatus

import (
	"strings"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
)

type Category string

const (
	CategoryAll       Category = "all"
	CategoryPending   Category = "pending"
	CategoryConfirmed Category = "confirmed"
	CategoryFailed    Category = "failed"
)

type Config struct {
	Label          string   `json:"label"`
	ShortLabel     string   `json:"shortLabel"`
	Category       Category `json:"category"`
	Color          string   `json:"color"`
	BgColor        string   `json:"bgColor"`
	BorderColor    string   `json:"borderColor"`
	Description    string   `json:"description"`
	IsActive       bool     `json:"isActive"`
	IsTerminal     bool     `json:"isTerminal"`
	Icon           string   `json:"icon"`
	BadgeVariant   string   `json:"badgeVariant"`
	ProgressWeight int      `json:"progressWeight"`
	TimeEstimate   string   `json:"timeEstimate"`
}

// statuses keeps table order; Next and Statuses depend on it.
var statuses = []model.OrderStatus{
	model.OrderStatusPending,
	model.OrderStatusPaymentPending,
	model.OrderStatusWaitingPayment,
	model.OrderStatusPaymentReceived,
	model.OrderStatusPaymentConfirmed,
	model.OrderStatusConfirming,
	model.OrderStatusConfirmed,
	model.OrderStatusReady,
	model.OrderStatusInscribing,
	model.OrderStatusProcessing,
	model.OrderStatusCompleted,
	model.OrderStatusSuccess,
	model.OrderStatusFailed,
	model.OrderStatusCancelled,
	model.OrderStatusError,
}

// Category membership lists. Each status appears in exactly one list.
// failed sits under pending on purpose: a failed payment can be retried.
var (
	pendingStatuses = []model.OrderStatus{
		model.OrderStatusPending,
		model.OrderStatusPaymentPending,
		model.OrderStatusPaymentReceived,
		model.OrderStatusConfirming,
		model.OrderStatusConfirmed,
		model.OrderStatusInscribing,
		model.OrderStatusFailed,
		model.OrderStatusWaitingPayment,
		model.OrderStatusPaymentConfirmed,
		model.OrderStatusReady,
		model.OrderStatusProcessing,
	}
	confirmedStatuses = []model.OrderStatus{
		model.OrderStatusCompleted,
		model.OrderStatusSuccess,
	}
	failedStatuses = []model.OrderStatus{
		model.OrderStatusCancelled,
		model.OrderStatusError,
	}
)

var progressionOrder = map[model.OrderStatus]int{
	model.OrderStatusPending:          0,
	model.OrderStatusPaymentPending:   0,
	model.OrderStatusWaitingPayment:   0,
	model.OrderStatusPaymentReceived:  1,
	model.OrderStatusPaymentConfirmed: 1,
	model.OrderStatusConfirming:       1,
	model.OrderStatusConfirmed:        2,
	model.OrderStatusReady:            2,
	model.OrderStatusInscribing:       2,
	model.OrderStatusProcessing:       2,
	model.OrderStatusCompleted:        3,
	model.OrderStatusSuccess:          3,
	model.OrderStatusFailed:           -1,
	model.OrderStatusCancelled:        -1,
	model.OrderStatusError:            -1,
}

const (
	finalProgression  = 3
	failedProgression = -1
)

var configs = map[model.OrderStatus]Config{
	model.OrderStatusPending: {
		Label:          "Pending",
		ShortLabel:     "Pending",
		Category:       CategoryPending,
		Color:          "text-slate-400",
		BgColor:        "bg-slate-800/50",
		BorderColor:    "border-slate-600",
		Description:    "Order created, waiting for payment",
		IsActive:       true,
		Icon:           "Clock",
		BadgeVariant:   "outline",
		ProgressWeight: 0,
		TimeEstimate:   "Unknown",
	},
	model.OrderStatusPaymentPending: {
		Label:          "Payment Pending",
		ShortLabel:     "Payment",
		Category:       CategoryPending,
		Color:          "text-cyan-400",
		BgColor:        "bg-cyan-900/30",
		BorderColor:    "border-cyan-500",
		Description:    "Waiting for payment confirmation",
		IsActive:       true,
		Icon:           "CreditCard",
		BadgeVariant:   "outline",
		ProgressWeight: 0,
		TimeEstimate:   "Immediate",
	},
	model.OrderStatusWaitingPayment: {
		Label:          "Waiting Payment",
		ShortLabel:     "Waiting",
		Category:       CategoryPending,
		Color:          "text-yellow-400",
		BgColor:        "bg-yellow-900/30",
		BorderColor:    "border-yellow-500",
		Description:    "Waiting for payment to be sent",
		IsActive:       true,
		Icon:           "Clock",
		BadgeVariant:   "outline",
		ProgressWeight: 0,
		TimeEstimate:   "Immediate",
	},
	model.OrderStatusPaymentReceived: {
		Label:          "Payment Received",
		ShortLabel:     "Paid",
		Category:       CategoryPending,
		Color:          "text-blue-400",
		BgColor:        "bg-blue-900/30",
		BorderColor:    "border-blue-500",
		Description:    "Payment confirmed, processing order",
		IsActive:       true,
		Icon:           "CheckCircle",
		BadgeVariant:   "default",
		ProgressWeight: 25,
		TimeEstimate:   "Unknown",
	},
	model.OrderStatusPaymentConfirmed: {
		Label:          "Payment Confirmed",
		ShortLabel:     "Confirmed",
		Category:       CategoryPending,
		Color:          "text-blue-400",
		BgColor:        "bg-blue-900/30",
		BorderColor:    "border-blue-500",
		Description:    "Payment has been confirmed",
		IsActive:       true,
		Icon:           "CheckCircle",
		BadgeVariant:   "default",
		ProgressWeight: 40,
		TimeEstimate:   "10-30 minutes",
	},
	model.OrderStatusConfirming: {
		Label:          "Confirming",
		ShortLabel:     "Confirming",
		Category:       CategoryPending,
		Color:          "text-blue-400",
		BgColor:        "bg-blue-900/30",
		BorderColor:    "border-blue-500",
		Description:    "Waiting for blockchain confirmations",
		IsActive:       true,
		Icon:           "Loader2",
		BadgeVariant:   "default",
		ProgressWeight: 50,
		TimeEstimate:   "10-30 minutes",
	},
	model.OrderStatusConfirmed: {
		Label:          "Confirmed",
		ShortLabel:     "Confirmed",
		Category:       CategoryPending,
		Color:          "text-blue-400",
		BgColor:        "bg-blue-900/30",
		BorderColor:    "border-blue-500",
		Description:    "Payment confirmed, ready to inscribe",
		IsActive:       true,
		Icon:           "CheckCircle",
		BadgeVariant:   "default",
		ProgressWeight: 65,
		TimeEstimate:   "Unknown",
	},
	model.OrderStatusReady: {
		Label:          "Ready",
		ShortLabel:     "Ready",
		Category:       CategoryPending,
		Color:          "text-blue-400",
		BgColor:        "bg-blue-900/30",
		BorderColor:    "border-blue-500",
		Description:    "Ready for processing",
		IsActive:       true,
		Icon:           "CheckCircle",
		BadgeVariant:   "default",
		ProgressWeight: 60,
		TimeEstimate:   "Unknown",
	},
	model.OrderStatusInscribing: {
		Label:          "Inscribing",
		ShortLabel:     "Inscribing",
		Category:       CategoryPending,
		Color:          "text-purple-400",
		BgColor:        "bg-purple-900/30",
		BorderColor:    "border-purple-500",
		Description:    "Creating inscription on Bitcoin",
		IsActive:       true,
		Icon:           "Zap",
		BadgeVariant:   "default",
		ProgressWeight: 85,
		TimeEstimate:   "1-4 hours",
	},
	model.OrderStatusProcessing: {
		Label:          "Processing",
		ShortLabel:     "Processing",
		Category:       CategoryPending,
		Color:          "text-purple-400",
		BgColor:        "bg-purple-900/30",
		BorderColor:    "border-purple-500",
		Description:    "Order is being processed",
		IsActive:       true,
		Icon:           "Loader2",
		BadgeVariant:   "default",
		ProgressWeight: 80,
		TimeEstimate:   "1-4 hours",
	},
	model.OrderStatusCompleted: {
		Label:          "Completed",
		ShortLabel:     "Complete",
		Category:       CategoryConfirmed,
		Color:          "text-green-400",
		BgColor:        "bg-green-900/30",
		BorderColor:    "border-green-500",
		Description:    "Inscription completed successfully",
		IsTerminal:     true,
		Icon:           "CheckCircle",
		BadgeVariant:   "success",
		ProgressWeight: 100,
		TimeEstimate:   "Complete",
	},
	model.OrderStatusSuccess: {
		Label:          "Success",
		ShortLabel:     "Success",
		Category:       CategoryConfirmed,
		Color:          "text-green-400",
		BgColor:        "bg-green-900/30",
		BorderColor:    "border-green-500",
		Description:    "Order completed successfully",
		IsTerminal:     true,
		Icon:           "CheckCircle",
		BadgeVariant:   "success",
		ProgressWeight: 100,
		TimeEstimate:   "Complete",
	},
	// A failed payment stays active and non-terminal so the user can retry it.
	model.OrderStatusFailed: {
		Label:          "Payment Failed",
		ShortLabel:     "Failed",
		Category:       CategoryPending,
		Color:          "text-red-400",
		BgColor:        "bg-red-900/30",
		BorderColor:    "border-red-500",
		Description:    "Payment failed - can be retried",
		IsActive:       true,
		Icon:           "XCircle",
		BadgeVariant:   "destructive",
		ProgressWeight: 0,
		TimeEstimate:   "N/A",
	},
	model.OrderStatusCancelled: {
		Label:          "Cancelled",
		ShortLabel:     "Cancelled",
		Category:       CategoryFailed,
		Color:          "text-gray-400",
		BgColor:        "bg-gray-800/50",
		BorderColor:    "border-gray-600",
		Description:    "Order was cancelled",
		IsTerminal:     true,
		Icon:           "XCircle",
		BadgeVariant:   "outline",
		ProgressWeight: 0,
		TimeEstimate:   "N/A",
	},
	model.OrderStatusError: {
		Label:          "Error",
		ShortLabel:     "Error",
		Category:       CategoryFailed,
		Color:          "text-red-400",
		BgColor:        "bg-red-900/30",
		BorderColor:    "border-red-500",
		Description:    "Order encountered an error",
		IsTerminal:     true,
		Icon:           "XCircle",
		BadgeVariant:   "destructive",
		ProgressWeight: 0,
		TimeEstimate:   "N/A",
	},
}

// Statuses returns every known status in table order.
func Statuses() []model.OrderStatus {
	out := make([]model.OrderStatus, len(statuses))
	copy(out, statuses)
	return out
}

func IsKnown(status model.OrderStatus) bool {
	_, ok := configs[status]
	return ok
}

// Get returns the display config for status. Unknown statuses get the
// pending config: an unfamiliar upstream value is still "in progress".
func Get(status model.OrderStatus) Config {
	if cfg, ok := configs[status]; ok {
		return cfg
	}
	return configs[model.OrderStatusPending]
}

// Categorize buckets status for UI filtering. Unknown or empty input is
// treated as failed, the opposite default from Get.
func Categorize(status string) Category {
	if status == "" {
		return CategoryFailed
	}

	normalized := model.OrderStatus(strings.ToLower(status))

	for _, group := range []struct {
		category Category
		members  []model.OrderStatus
	}{
		{CategoryPending, pendingStatuses},
		{CategoryConfirmed, confirmedStatuses},
		{CategoryFailed, failedStatuses},
	} {
		for _, s := range group.members {
			if s == normalized {
				return group.category
			}
		}
	}

	return CategoryFailed
}

func Progress(status model.OrderStatus) int {
	return configs[status].ProgressWeight
}

func IsTerminal(status model.OrderStatus) bool {
	return configs[status].IsTerminal
}

// IsActive reports whether an order in this status should still be polled.
func IsActive(status model.OrderStatus) bool {
	return configs[status].IsActive
}

func TimeEstimate(status model.OrderStatus) string {
	switch status {
	case model.OrderStatusPaymentPending, model.OrderStatusWaitingPayment:
		return "Immediate"
	case model.OrderStatusConfirming, model.OrderStatusPaymentConfirmed:
		return "10-30 minutes"
	case model.OrderStatusInscribing, model.OrderStatusProcessing:
		return "1-4 hours"
	case model.OrderStatusCompleted, model.OrderStatusSuccess:
		return "Complete"
	case model.OrderStatusFailed, model.OrderStatusCancelled, model.OrderStatusError:
		return "N/A"
	default:
		return "Unknown"
	}
}

// ProgressionOrder is the coarse timeline position: 0..3, or -1 for the
// failure statuses. Unknown statuses sit at 0.
func ProgressionOrder(status model.OrderStatus) int {
	return progressionOrder[status]
}

// Next returns the first status one step further along the timeline.
func Next(current model.OrderStatus) (model.OrderStatus, bool) {
	order, ok := progressionOrder[current]
	if !ok || order == failedProgression || order >= finalProgression {
		return "", false
	}

	for _, s := range statuses {
		if progressionOrder[s] == order+1 {
			return s, true
		}
	}

	return "", false
}

// NeedsAttention marks statuses that wait on the user.
func NeedsAttention(status model.OrderStatus) bool {
	switch status {
	case model.OrderStatusPending,
		model.OrderStatusPaymentPending,
		model.OrderStatusWaitingPayment,
		model.OrderStatusFailed,
		model.OrderStatusError:
		return true
	}
	return false
}
