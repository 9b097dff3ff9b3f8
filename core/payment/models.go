package payment

import (
	"time"

	"github.com/trezcool/darasa/core"
)

type Payment struct {
	ID            int       `json:"id"`
	StudentID     int       `json:"studentId"`
	ParentUserID  int       `json:"parentUserId"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"paymentDate"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId"`
	Description   string    `json:"description"`
}

// NewPayment contains information needed to initiate a fee payment.
// ParentUserID is set from the session, not the form.
type NewPayment struct {
	StudentID    int     `json:"studentId" validate:"required"`
	ParentUserID int     `json:"parentUserId"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Description  string  `json:"description" validate:"required"`
}

func (np *NewPayment) Validate() error {
	np.Description = core.CleanString(np.Description)
	return core.Validate.Struct(np)
}
