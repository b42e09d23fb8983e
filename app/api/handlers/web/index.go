package web

import (
	"github.com/gin-gonic/gin"
	"github.com/mustafa892/notes-app/business/v1/note"
	"github.com/mustafa892/notes-app/sys"
	"net/http"
)

// Index renders the listing page with every stored note
func Index(ctx *gin.Context) {
	list, err := note.List(ctx)
	if err != nil {
		sys.R.Log.Error("failed to list notes: ", err.Error())
		ctx.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"error": "something went wrong, try again later",
		})
		return
	}

	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"notes": list,
	})
}
