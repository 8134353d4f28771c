package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-social-graph/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// Message is the body of successful write requests.
type Message struct {
	Message string `json:"message"`
}

// getStatusCode maps domain errors to http status codes
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSelfReference),
		errors.Is(err, domain.ErrSelfLike),
		errors.Is(err, domain.ErrSelfUnlike),
		errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes the error envelope. Unexpected errors are logged and hidden.
func abortWithError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code == http.StatusInternalServerError {
		logrus.WithField("path", c.FullPath()).Error(err)
		err = domain.ErrInternalServerError
	}
	c.AbortWithStatusJSON(code, ResponseError{Message: err.Error()})
}

// actorID reads the user set by the auth middleware
func actorID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthorized.Error()})
		return 0, false
	}
	uid, ok := v.(int64)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthorized.Error()})
		return 0, false
	}
	return uid, true
}
