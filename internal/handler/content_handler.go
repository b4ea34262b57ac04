package handler

import (
	"errors"
	"net/http"
	"strconv"

	"content_manager/internal/middleware"
	"content_manager/internal/model"
	"content_manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const msgNoContent = "No Content found!"

// ContentHandler handles content requests
type ContentHandler struct {
	service service.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(s service.ContentService) *ContentHandler {
	return &ContentHandler{service: s}
}

// contentID parses the :id path parameter. Anything that is not a number
// yields 0, which the service treats as not found.
func contentID(c *gin.Context) int {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0
	}
	return id
}

func principal(c *gin.Context) (*model.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token is invalid!"})
	}
	return user, ok
}

func (h *ContentHandler) respondError(c *gin.Context, err error, action string) {
	if errors.Is(err, service.ErrContentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": msgNoContent})
		return
	}
	logrus.WithError(err).Errorf("Error %s content", action)
	c.JSON(http.StatusInternalServerError, gin.H{"message": msgSomethingWrong})
}

func (h *ContentHandler) List(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}

	contents, err := h.service.List(c.Request.Context(), user)
	if err != nil {
		h.respondError(c, err, "listing")
		return
	}
	c.JSON(http.StatusOK, gin.H{"contents": contents})
}

func (h *ContentHandler) Get(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}

	content, err := h.service.Get(c.Request.Context(), user, contentID(c))
	if err != nil {
		h.respondError(c, err, "getting")
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) Create(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}

	var req model.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgSomethingWrong})
		return
	}

	if _, err := h.service.Create(c.Request.Context(), user, req); err != nil {
		logrus.WithError(err).Error("Error creating content")
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgSomethingWrong})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Content created!"})
}

func (h *ContentHandler) Update(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}

	var req model.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgSomethingWrong})
		return
	}

	if _, err := h.service.Update(c.Request.Context(), user, contentID(c), req); err != nil {
		h.respondError(c, err, "updating")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Content item Updated!"})
}

func (h *ContentHandler) Delete(c *gin.Context) {
	user, ok := principal(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), user, contentID(c)); err != nil {
		h.respondError(c, err, "deleting")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Content item deleted!"})
}

// Search takes the term from the search query parameter, or from a JSON
// body {"search": "..."} when the parameter is absent.
func (h *ContentHandler) Search(c *gin.Context) {
	term := c.Query("search")
	if term == "" && c.Request.ContentLength != 0 {
		var req model.SearchRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			term = req.Search
		}
	}

	result, err := h.service.Search(c.Request.Context(), term)
	if err != nil {
		if errors.Is(err, service.ErrEmptySearch) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Search term required"})
			return
		}
		logrus.WithError(err).Error("Error searching content")
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgSomethingWrong})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": result})
}

// RegisterContentRoutes registers content routes. Search is public; every
// other route sits behind sessionMW.
func (h *ContentHandler) RegisterContentRoutes(r gin.IRouter, sessionMW gin.HandlerFunc) {
	r.GET("/content/search", h.Search)

	contentGroup := r.Group("/content", sessionMW)
	{
		contentGroup.GET("", h.List)
		contentGroup.POST("", h.Create)
		contentGroup.GET("/:id", h.Get)
		contentGroup.PUT("/:id", h.Update)
		contentGroup.DELETE("/:id", h.Delete)
	}
}
