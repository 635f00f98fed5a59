package usecase

// Chart-of-accounts names used in journal lines.
const (
	AccountOnlineGiftCard       = "Online Gift Card"
	AccountOnlineGiftCardFee    = "Online Gift Card Fee"
	AccountGiftCardsOutstanding = "Gift Cards Outstanding"
	AccountMerchantFees         = "Merchant Account Fees"
	AccountExchange             = "Exchange"

	AccountUEPickup           = "UE Pickup & Takeout"
	AccountUEDelivery         = "UE Delivery"
	AccountUberDiscount       = "UberEats Discount"
	AccountUberPromoAdjust    = "UberEats Promotion Adjustment"
	AccountUberAdSpend        = "UberEats Ad Spend"
	AccountUberDeliveryComm   = "UberEats Delivery Commission"
	AccountUberPickupComm     = "UberEats Pickup Commission"
	AccountRefunds            = "Refunds"
	AccountSalesTaxAdjustment = "Sales Tax Adjustement"
	AccountSalesTaxPayable    = "Sales Tax Payable"
	AccountUberSales          = "UberEats Sales"
	AccountARUberEats         = "A/R UberEats"
)

// checkingPrefix starts every bank checking account label.
const checkingPrefix = "Checking"
