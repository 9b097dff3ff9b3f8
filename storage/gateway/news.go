package gateway

import (
	"github.com/trezcool/darasa/core/news"
)

var _ news.Gateway = (*Client)(nil)

func (c *Client) QueryAllNews() ([]news.News, error) {
	var items []news.News
	if err := c.get("/api/communication/news", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateNews(nn news.NewNews) (news.News, error) {
	var item news.News
	if err := c.post("/api/communication/news", nn, &item); err != nil {
		return news.News{}, err
	}
	return item, nil
}
