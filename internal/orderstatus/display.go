package orderstatus

import (
	"strings"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
)

type DisplayOptions struct {
	Short     bool
	WithIcon  bool
	WithColor bool
}

type Display struct {
	Text            string `json:"text"`
	ClassName       string `json:"className,omitempty"`
	BgClassName     string `json:"bgClassName,omitempty"`
	BorderClassName string `json:"borderClassName,omitempty"`
}

func FormatDisplay(status model.OrderStatus, opts DisplayOptions) Display {
	cfg := Get(status)

	text := cfg.Label
	if opts.Short {
		text = cfg.ShortLabel
	}
	if opts.WithIcon {
		text = cfg.Icon + " " + text
	}

	d := Display{Text: text}
	if opts.WithColor {
		d.ClassName = cfg.Color
		d.BgClassName = cfg.BgColor
		d.BorderClassName = cfg.BorderColor
	}

	return d
}

type BadgeProps struct {
	Variant   string `json:"variant"`
	ClassName string `json:"className"`
	Label     string `json:"label"`
}

func Badge(status model.OrderStatus) BadgeProps {
	cfg := Get(status)
	return BadgeProps{
		Variant:   cfg.BadgeVariant,
		ClassName: strings.Join([]string{cfg.Color, cfg.BgColor, cfg.BorderColor}, " "),
		Label:     cfg.Label,
	}
}

type TimelineStep struct {
	Status      model.OrderStatus `json:"status"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
	Order       int               `json:"order"`
}

func TimelineSteps() []TimelineStep {
	return []TimelineStep{
		{Status: model.OrderStatusPaymentPending, Label: "Payment", Description: "Waiting for payment", Order: 0},
		{Status: model.OrderStatusConfirming, Label: "Confirmation", Description: "Confirming transaction", Order: 1},
		{Status: model.OrderStatusInscribing, Label: "Inscribing", Description: "Creating inscription", Order: 2},
		{Status: model.OrderStatusCompleted, Label: "Complete", Description: "Inscription ready", Order: 3},
	}
}

// View is everything the UI needs to render one status.
type View struct {
	Status           model.OrderStatus `json:"status"`
	Config           Config            `json:"config"`
	Category         Category          `json:"category"`
	ProgressionOrder int               `json:"progressionOrder"`
	Next             model.OrderStatus `json:"next,omitempty"`
	NeedsAttention   bool              `json:"needsAttention"`
	Badge            BadgeProps        `json:"badge"`
	Timeline         []TimelineStep    `json:"timeline"`
}

func Describe(status model.OrderStatus) View {
	next, _ := Next(status)
	return View{
		Status:           status,
		Config:           Get(status),
		Category:         Categorize(string(status)),
		ProgressionOrder: ProgressionOrder(status),
		Next:             next,
		NeedsAttention:   NeedsAttention(status),
		Badge:            Badge(status),
		Timeline:         TimelineSteps(),
	}
}
