// Package pricing computes the order summary shown before checkout. One
// canonical rule: 18% tax on the subtotal, free shipping.
package pricing

const TaxRate = 0.18

type Summary struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Total    float64
}

func Summarize(subtotal float64) Summary {
	tax := subtotal * TaxRate
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: 0,
		Total:    subtotal + tax,
	}
}
