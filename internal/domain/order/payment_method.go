package order

// PaymentMethod represents how an order is paid for
type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodDebitCard      PaymentMethod = "debit_card"
	PaymentMethodPayPal         PaymentMethod = "paypal"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
)

// IsValid checks if the payment method is part of the closed set
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPayPal,
		PaymentMethodCashOnDelivery, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (p PaymentMethod) String() string {
	return string(p)
}
