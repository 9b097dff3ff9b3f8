package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core/student"
	dummygw "github.com/trezcool/darasa/storage/gateway/dummy"
)

type studentAPI struct {
	db *dummygw.DB
}

func registerStudentAPI(g *echo.Group, db *dummygw.DB) {
	api := studentAPI{db: db}

	sg := g.Group("/students")
	sg.GET("", api.studentQuery)
	sg.GET("/byParent/:parentId", api.studentQueryByParent)
	sg.GET("/:id/results", api.studentResults)
	sg.GET("/:id/attendance", api.studentAttendance)

	// mutations carry the acting admin's id
	sg.POST("/:adminId", api.studentCreate)
	sg.PUT("/:adminId/:id", api.studentUpdate)
	sg.DELETE("/:adminId/:id", api.studentDestroy)
	sg.POST("/:adminId/:id/results", api.resultCreate)
	sg.DELETE("/:adminId/results/:resultId", api.resultDestroy)
	sg.POST("/:adminId/:id/attendance", api.attendanceCreate)
	sg.DELETE("/:adminId/attendance/:attendanceId", api.attendanceDestroy)
}

func (api *studentAPI) studentQuery(ctx echo.Context) error {
	students, err := api.db.QueryAllStudents()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentAPI) studentQueryByParent(ctx echo.Context) error {
	parentID, err := intParam(ctx, "parentId")
	if err != nil {
		return err
	}
	students, err := api.db.QueryStudentsByParent(parentID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentAPI) studentResults(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	results, err := api.db.QueryStudentResults(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, results)
}

func (api *studentAPI) studentAttendance(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	records, err := api.db.QueryStudentAttendance(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *studentAPI) studentCreate(ctx echo.Context) error {
	adminID, err := intParam(ctx, "adminId")
	if err != nil {
		return err
	}
	data := new(student.NewStudent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	st, err := api.db.CreateStudent(adminID, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, st)
}

func (api *studentAPI) studentUpdate(ctx echo.Context) error {
	adminID, err := intParam(ctx, "adminId")
	if err != nil {
		return err
	}
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	data := new(student.UpdateStudent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	st, err := api.db.UpdateStudent(adminID, id, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *studentAPI) studentDestroy(ctx echo.Context) error {
	adminID, err := intParam(ctx, "adminId")
	if err != nil {
		return err
	}
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.db.DeleteStudent(adminID, id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *studentAPI) resultCreate(ctx echo.Context) error {
	adminID, err := intParam(ctx, "adminId")
	if err != nil {
		return err
	}
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	data := new(student.NewResult)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	res, err := api.db.CreateResult(adminID, id, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (api *studentAPI) resultDestroy(ctx echo.Context) error {
	adminID, err := intParam(ctx, "adminId")
	if err != nil {
		return err
	}
	resultID, err := intParam(ctx, "resultId")
	if err != nil {
		return err
	}
	if err := api.db.DeleteResult(adminID, resultID); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *studentAPI) attendanceCreate(ctx echo.Context) error {
	adminID, err := intParam(ctx, "adminId")
	if err != nil {
		return err
	}
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	data := new(student.NewAttendance)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	att, err := api.db.CreateAttendance(adminID, id, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, att)
}

func (api *studentAPI) attendanceDestroy(ctx echo.Context) error {
	adminID, err := intParam(ctx, "adminId")
	if err != nil {
		return err
	}
	attendanceID, err := intParam(ctx, "attendanceId")
	if err != nil {
		return err
	}
	if err := api.db.DeleteAttendance(adminID, attendanceID); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
