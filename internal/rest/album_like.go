package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/album-catalog/domain"
	"github.com/Guyuepp/album-catalog/internal/rest/middleware"
	"github.com/Guyuepp/album-catalog/internal/rest/response"
)

const (
	// HeaderDataSource marks responses answered from the like count cache
	HeaderDataSource = "X-Data-Source"

	msgLiked   = "Album liked"
	msgUnliked = "Album unliked"
)

// AlbumLikeHandler represent the httphandler for album likes
type AlbumLikeHandler struct {
	Service domain.LikeUsecase
}

func NewAlbumLikeHandler(svc domain.LikeUsecase) *AlbumLikeHandler {
	return &AlbumLikeHandler{
		Service: svc,
	}
}

// Register mounts the like routes. auth guards the mutating routes.
func (h *AlbumLikeHandler) Register(r gin.IRouter, auth gin.HandlerFunc) {
	r.GET("/albums/:id/likes", h.GetLikes)

	authorized := r.Group("/")
	authorized.Use(auth)
	{
		authorized.POST("/albums/:id/likes", h.Like)
		authorized.DELETE("/albums/:id/likes", h.Unlike)
	}
}

// Like records the current user's like of the album
func (h *AlbumLikeHandler) Like(c *gin.Context) {
	albumID, userID, ok := likeParams(c)
	if !ok {
		return
	}

	if err := h.Service.AddAlbumLike(c.Request.Context(), userID, albumID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Message{Status: response.StatusSuccess, Message: msgLiked})
}

// Unlike removes the current user's like of the album, if any
func (h *AlbumLikeHandler) Unlike(c *gin.Context) {
	albumID, userID, ok := likeParams(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteAlbumLike(c.Request.Context(), userID, albumID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Message{Status: response.StatusSuccess, Message: msgUnliked})
}

// GetLikes answers the album's like count
func (h *AlbumLikeHandler) GetLikes(c *gin.Context) {
	albumID := c.Param("id")
	if albumID == "" {
		abortWithError(c, domain.ErrBadParamInput)
		return
	}

	res, err := h.Service.GetAlbumLikesCount(c.Request.Context(), albumID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if res.Source == domain.SourceCache {
		c.Header(HeaderDataSource, res.Source.String())
	}
	c.JSON(http.StatusOK, response.NewAlbumLikesFromDomain(res))
}

func likeParams(c *gin.Context) (albumID, userID string, ok bool) {
	albumID = c.Param("id")
	if albumID == "" {
		abortWithError(c, domain.ErrBadParamInput)
		return "", "", false
	}
	userID, ok = middleware.UserID(c)
	if !ok {
		abortWithError(c, domain.ErrUnauthorized)
		return "", "", false
	}
	return albumID, userID, true
}

func abortWithError(c *gin.Context, err error) {
	code := getStatusCode(err)
	status := response.StatusFail
	msg := err.Error()
	if code >= http.StatusInternalServerError {
		status = response.StatusError
		msg = domain.ErrInternalServerError.Error()
	}
	c.AbortWithStatusJSON(code, response.Message{Status: status, Message: msg})
}

// getStatusCode will get the code of the error from domain.LikeUsecase
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		logrus.Error(err)
		return http.StatusInternalServerError
	}
}
