package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core/user"
	dummygw "github.com/trezcool/darasa/storage/gateway/dummy"
)

type userAPI struct {
	db *dummygw.DB
}

func registerUserAPI(g *echo.Group, db *dummygw.DB) {
	api := userAPI{db: db}

	ug := g.Group("/users")
	ug.GET("", api.userQuery)
	ug.POST("", api.userCreate)
	ug.GET("/:id", api.userRetrieve)
	ug.PUT("/:id", api.userUpdate)
	ug.DELETE("/:id", api.userDestroy)
}

func intParam(ctx echo.Context, name string) (int, error) {
	val, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return val, nil
}

func (api *userAPI) userQuery(ctx echo.Context) error {
	users, err := api.db.QueryAllUsers()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *userAPI) userCreate(ctx echo.Context) error {
	data := new(user.NewUser)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	usr, err := api.db.CreateUser(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api *userAPI) userRetrieve(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	usr, err := api.db.GetUserByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *userAPI) userUpdate(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	data := new(user.UpdateUser)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	usr, err := api.db.UpdateUser(id, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *userAPI) userDestroy(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.db.DeleteUser(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
