package dummygw

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/payment"
)

var _ payment.Gateway = (*DB)(nil)

func (db *DB) QueryPaymentsByParent(parentID int) ([]payment.Payment, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	payments := make([]payment.Payment, 0)
	for _, pmt := range db.payments {
		if pmt.ParentUserID == parentID {
			payments = append(payments, *pmt)
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].ID < payments[j].ID })
	return payments, nil
}

func (db *DB) CreatePayment(np payment.NewPayment) (payment.Payment, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.paymentPK++
	pmt := &payment.Payment{
		ID:            db.paymentPK,
		StudentID:     np.StudentID,
		ParentUserID:  np.ParentUserID,
		Amount:        np.Amount,
		PaymentDate:   time.Now().UTC(),
		Status:        "COMPLETED",
		TransactionID: uuid.NewString(),
		Description:   np.Description,
	}
	db.payments[pmt.ID] = pmt
	return *pmt, nil
}
