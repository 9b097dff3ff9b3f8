package gateway

import (
	"fmt"

	"github.com/trezcool/darasa/core/payment"
)

var _ payment.Gateway = (*Client)(nil)

func (c *Client) QueryPaymentsByParent(parentID int) ([]payment.Payment, error) {
	var payments []payment.Payment
	if err := c.get(fmt.Sprintf("/api/payments/byParent/%d", parentID), &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) CreatePayment(np payment.NewPayment) (payment.Payment, error) {
	var pmt payment.Payment
	if err := c.post("/api/payments", np, &pmt); err != nil {
		return payment.Payment{}, err
	}
	return pmt, nil
}
