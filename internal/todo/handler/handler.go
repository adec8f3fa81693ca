package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/todo/internal/todo/service"
	"github.com/gogotex/todo/pkg/logger"
	"github.com/gogotex/todo/web"
)

// Acknowledgements sent back by the JSON endpoints. markUnComplete reuses
// MsgMarkedComplete; the browser script only checks that a reply arrived.
const (
	MsgTodoAdded      = "Todo Added"
	MsgMarkedComplete = "Marked Complete"
	MsgTodoDeleted    = "Todo Deleted"
)

type addRequest struct {
	TodoItem string `form:"todoItem" json:"todoItem"`
}

type itemRequest struct {
	ItemFromJS string `form:"itemFromJS" json:"itemFromJS"`
}

// RegisterTodoRoutes installs the list view template, its static assets and
// the five todo routes on r.
func RegisterTodoRoutes(r *gin.Engine, svc *service.Service) error {
	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	static := web.Static()
	for _, dir := range []string{"css", "js"} {
		sub, err := fs.Sub(static, dir)
		if err != nil {
			return fmt.Errorf("static %s: %w", dir, err)
		}
		r.StaticFS("/"+dir, http.FS(sub))
	}

	r.GET("/", func(c *gin.Context) {
		ov, err := svc.Overview(c.Request.Context())
		if err != nil {
			logger.Errorf("list todos: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load todos"})
			return
		}
		c.HTML(http.StatusOK, web.IndexTemplate, gin.H{"items": ov.Items, "left": ov.Left})
	})

	r.POST("/addTodo", func(c *gin.Context) {
		var req addRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if _, err := svc.Add(c.Request.Context(), req.TodoItem); err != nil {
			logger.Errorf("add todo: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add todo"})
			return
		}
		logger.Info(MsgTodoAdded)
		c.Redirect(http.StatusFound, "/")
	})

	r.PUT("/markComplete", func(c *gin.Context) {
		thing, ok := bindItem(c)
		if !ok {
			return
		}
		if _, err := svc.MarkComplete(c.Request.Context(), thing); err != nil {
			logger.Errorf("mark complete: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark todo complete"})
			return
		}
		logger.Info(MsgMarkedComplete)
		c.JSON(http.StatusOK, MsgMarkedComplete)
	})

	r.PUT("/markUnComplete", func(c *gin.Context) {
		thing, ok := bindItem(c)
		if !ok {
			return
		}
		if _, err := svc.MarkIncomplete(c.Request.Context(), thing); err != nil {
			logger.Errorf("mark incomplete: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark todo incomplete"})
			return
		}
		logger.Info(MsgMarkedComplete)
		c.JSON(http.StatusOK, MsgMarkedComplete)
	})

	r.DELETE("/deleteItem", func(c *gin.Context) {
		thing, ok := bindItem(c)
		if !ok {
			return
		}
		if _, err := svc.Delete(c.Request.Context(), thing); err != nil {
			logger.Errorf("delete todo: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete todo"})
			return
		}
		logger.Info(MsgTodoDeleted)
		c.JSON(http.StatusOK, MsgTodoDeleted)
	})

	return nil
}

// bindItem reads itemFromJS from a JSON or form body, replying 400 on a malformed body.
func bindItem(c *gin.Context) (string, bool) {
	var req itemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return req.ItemFromJS, true
}
