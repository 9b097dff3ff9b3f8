package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core/chat"
	"github.com/trezcool/darasa/core/news"
	dummygw "github.com/trezcool/darasa/storage/gateway/dummy"
)

type communicationAPI struct {
	db *dummygw.DB
}

func registerCommunicationAPI(g *echo.Group, db *dummygw.DB) {
	api := communicationAPI{db: db}

	cg := g.Group("/communication")
	cg.GET("/news", api.newsQuery)
	cg.POST("/news", api.newsCreate)
	cg.GET("/chats/byParticipant/:participantId", api.chatQueryByParticipant)
	cg.GET("/chats/:id", api.chatRetrieve)
	cg.POST("/chats", api.chatCreate)
	cg.POST("/chats/:id/messages", api.messageCreate)
}

func (api *communicationAPI) newsQuery(ctx echo.Context) error {
	items, err := api.db.QueryAllNews()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *communicationAPI) newsCreate(ctx echo.Context) error {
	data := new(news.NewNews)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	item, err := api.db.CreateNews(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, item)
}

func (api *communicationAPI) chatQueryByParticipant(ctx echo.Context) error {
	participantID, err := intParam(ctx, "participantId")
	if err != nil {
		return err
	}
	convs, err := api.db.QueryConversationsByParticipant(participantID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, convs)
}

func (api *communicationAPI) chatRetrieve(ctx echo.Context) error {
	conv, err := api.db.GetConversation(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, conv)
}

func (api *communicationAPI) chatCreate(ctx echo.Context) error {
	data := new(chat.NewConversation)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if data.Participant1ID == 0 || data.Participant2ID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "both participants are required")
	}
	conv, err := api.db.CreateConversation(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, conv)
}

func (api *communicationAPI) messageCreate(ctx echo.Context) error {
	data := new(chat.NewMessage)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if data.SenderID == 0 || data.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "senderId and content are required")
	}
	msg, err := api.db.CreateMessage(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, msg)
}
