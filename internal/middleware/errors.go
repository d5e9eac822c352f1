package middleware

import (
	"errors"

	"github.com/emicklei/go-restful/v3"
)

var (
	ErrInvalidRequest = errors.New("invalid request body")
	ErrMissingFile    = errors.New("missing image file")
	ErrFileTooLarge   = errors.New("image file too large")
)

type ErrorResponse struct {
	Detail string `json:"detail" description:"Human readable error detail"`
	Code   int    `json:"code" description:"HTTP status code"`
}

func HandleError(resp *restful.Response, err error, status int) {
	resp.WriteHeaderAndEntity(status, ErrorResponse{
		Detail: err.Error(),
		Code:   status,
	})
}
