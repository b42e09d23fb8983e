package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/mustafa892/notes-app/business/v1/note"
	"github.com/mustafa892/notes-app/platform/web/handler"
	"github.com/mustafa892/notes-app/sys"
	"net/http"
)

// Create godoc
// @Summary Create a note
// @Description Stores a new note and returns the refreshed listing
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "New note"
// @Success 200 {array} note.Note
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router /v1/notes [post]
func Create(ctx *gin.Context) handler.Result {

	var newN note.NewNote
	if err := ctx.ShouldBindJSON(&newN); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid body"},
		}
	}

	list, err := note.Create(ctx, newN)

	var vErr *note.ValidationError
	switch {
	case errors.As(err, &vErr):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: vErr.Error(), Fields: vErr.Fields},
		}
	case err != nil:
		sys.R.Log.Error("failed to create note: ", err.Error())
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: "internal error"},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   list,
		}
	}
}
