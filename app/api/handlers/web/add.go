package web

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/mustafa892/notes-app/business/v1/note"
	"github.com/mustafa892/notes-app/sys"
	"net/http"
	"strings"
)

// Add handles the create form and renders the refreshed listing.
// Checkboxes submit "on" when checked and nothing otherwise.
func Add(ctx *gin.Context) {
	newN := note.NewNote{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
		Important:   ctx.PostForm("important") == "on",
	}

	list, err := note.Create(ctx, newN)

	var vErr *note.ValidationError
	switch {
	case errors.As(err, &vErr):
		current, listErr := note.List(ctx)
		if listErr != nil {
			sys.R.Log.Error("failed to list notes: ", listErr.Error())
		}
		ctx.HTML(http.StatusBadRequest, "index.html", gin.H{
			"notes": current,
			"error": "missing required fields: " + strings.Join(vErr.Fields, ", "),
		})
	case err != nil:
		sys.R.Log.Error("failed to create note: ", err.Error())
		ctx.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"error": "something went wrong, try again later",
		})
	default:
		ctx.HTML(http.StatusOK, "index.html", gin.H{
			"notes": list,
		})
	}
}
