package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CardTemplate identifies the Paytronix card program of a redemption.
type CardTemplate string

const (
	CardTemplateEGift CardTemplate = "eGift"
	CardTemplateOther CardTemplate = "other"
)

// Redemption is one gift-card redemption row from a Stored Value report.
type Redemption struct {
	Store           string          `json:"store"`
	Template        CardTemplate    `json:"template"`
	Date            time.Time       `json:"date"`
	DollarsRedeemed decimal.Decimal `json:"dollars_redeemed"`
}

// Payout is one row of the processor payout register.
type Payout struct {
	Created time.Time       `json:"created"`
	Gross   decimal.Decimal `json:"gross"`
	Fees    decimal.Decimal `json:"fees"`
	Total   decimal.Decimal `json:"total"`
}

// BankDeposit is a bank log row. Amount is positive for credits.
type BankDeposit struct {
	PostingDate time.Time       `json:"posting_date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// DiningMode is the UberEats fulfilment channel.
type DiningMode string

const (
	DiningModePickup   DiningMode = "Pickup"
	DiningModeDelivery DiningMode = "Delivery"
	DiningModeOther    DiningMode = "Other"
)

// OrderStatus is the UberEats order state.
type OrderStatus string

const (
	OrderStatusCompleted      OrderStatus = "Completed"
	OrderStatusRefund         OrderStatus = "Refund"
	OrderStatusRefundDisputed OrderStatus = "Refund Disputed"
	OrderStatusUnfulfilled    OrderStatus = "Unfulfilled"
)

// IsSpecial reports whether the status marks a row that follows the payout
// of the regular rows around it.
func (s OrderStatus) IsSpecial() bool {
	switch s {
	case OrderStatusRefund, OrderStatusRefundDisputed, OrderStatusUnfulfilled:
		return true
	}
	return false
}

// Order is one UberEats marketplace order row. PayoutDate is nil when the
// marketplace has not scheduled the payout yet.
type Order struct {
	Store      string      `json:"store"`
	OrderDate  time.Time   `json:"order_date"`
	PayoutDate *time.Time  `json:"payout_date,omitempty"`
	DiningMode DiningMode  `json:"dining_mode"`
	Status     OrderStatus `json:"status"`

	SalesExclTax              decimal.Decimal `json:"sales_excl_tax"`
	SalesInclTax              decimal.Decimal `json:"sales_incl_tax"`
	Promotions                decimal.Decimal `json:"promotions"`
	MarketingAdjustment       decimal.Decimal `json:"marketing_adjustment"`
	OtherPayments             decimal.Decimal `json:"other_payments"`
	MarketplaceFee            decimal.Decimal `json:"marketplace_fee"`
	RefundsExclTax            decimal.Decimal `json:"refunds_excl_tax"`
	TotalPayout               decimal.Decimal `json:"total_payout"`
	TaxOnSales                decimal.Decimal `json:"tax_on_sales"`
	TaxOnRefunds              decimal.Decimal `json:"tax_on_refunds"`
	TaxOnPromotion            decimal.Decimal `json:"tax_on_promotion"`
	MarketplaceFacilitatorTax decimal.Decimal `json:"marketplace_facilitator_tax"`
	PriceAdjustment           decimal.Decimal `json:"price_adjustment"`
	TaxOnPriceAdjustment      decimal.Decimal `json:"tax_on_price_adjustment"`
}

// IsPickup reports whether the order counts toward the pickup lines. Any
// mode other than Pickup is booked as delivery.
func (o Order) IsPickup() bool {
	return o.DiningMode == DiningModePickup
}

// POSChannel classifies a Toast dining option.
type POSChannel string

const (
	POSChannelPickup   POSChannel = "pickup"
	POSChannelDelivery POSChannel = "delivery"
	POSChannelOther    POSChannel = "other"
)

// POSRecord is one Toast order row.
type POSRecord struct {
	Location      string          `json:"location"`
	Opened        time.Time       `json:"opened"`
	DiningOptions string          `json:"dining_options"`
	Channel       POSChannel      `json:"channel"`
	Amount        decimal.Decimal `json:"amount"`
	Tax           decimal.Decimal `json:"tax"`
}
