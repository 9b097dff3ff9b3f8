package news

type (
	Gateway interface {
		QueryAllNews() ([]News, error)
		CreateNews(nn NewNews) (News, error)
	}

	Service struct {
		gw Gateway
	}
)

func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

func (svc *Service) All() ([]News, error) {
	return svc.gw.QueryAllNews()
}

// Post publishes a news item authored by authorID.
func (svc *Service) Post(authorID int, nn NewNews) (News, error) {
	nn.AuthorID = authorID
	if err := nn.Validate(); err != nil {
		return News{}, err
	}
	return svc.gw.CreateNews(nn)
}
