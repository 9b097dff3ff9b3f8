package payment

type (
	Gateway interface {
		QueryPaymentsByParent(parentID int) ([]Payment, error)
		CreatePayment(np NewPayment) (Payment, error)
	}

	Service struct {
		gw Gateway
	}
)

func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

func (svc *Service) ByParent(parentID int) ([]Payment, error) {
	return svc.gw.QueryPaymentsByParent(parentID)
}

// Pay initiates a fee payment on behalf of parentID.
func (svc *Service) Pay(parentID int, np NewPayment) (Payment, error) {
	np.ParentUserID = parentID
	if err := np.Validate(); err != nil {
		return Payment{}, err
	}
	return svc.gw.CreatePayment(np)
}
