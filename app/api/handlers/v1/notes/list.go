package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/mustafa892/notes-app/business/v1/note"
	"github.com/mustafa892/notes-app/platform/web/handler"
	"github.com/mustafa892/notes-app/sys"
	"net/http"
)

// List godoc
// @Summary List notes
// @Description Lists every stored note in insertion order
// @Tags Note
// @Produce json
// @Success 200 {array} note.Note
// @Failure 500 {object} handler.Error
// @Router /v1/notes [get]
func List(ctx *gin.Context) handler.Result {

	list, err := note.List(ctx)
	if err != nil {
		sys.R.Log.Error("failed to list notes: ", err.Error())
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "internal error"},
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   list,
	}
}
