package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core/payment"
	dummygw "github.com/trezcool/darasa/storage/gateway/dummy"
)

type paymentAPI struct {
	db *dummygw.DB
}

func registerPaymentAPI(g *echo.Group, db *dummygw.DB) {
	api := paymentAPI{db: db}

	pg := g.Group("/payments")
	pg.GET("/byParent/:parentId", api.paymentQueryByParent)
	pg.POST("", api.paymentCreate)
}

func (api *paymentAPI) paymentQueryByParent(ctx echo.Context) error {
	parentID, err := intParam(ctx, "parentId")
	if err != nil {
		return err
	}
	payments, err := api.db.QueryPaymentsByParent(parentID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, payments)
}

func (api *paymentAPI) paymentCreate(ctx echo.Context) error {
	data := new(payment.NewPayment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	pmt, err := api.db.CreatePayment(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, pmt)
}
