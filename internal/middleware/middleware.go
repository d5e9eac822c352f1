package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	RequestIDHeader    = "X-Request-ID"
	RequestIDAttribute = "request_id"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	id := req.HeaderParameter(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	req.SetAttribute(RequestIDAttribute, id)
	resp.AddHeader(RequestIDHeader, id)

	chain.ProcessFilter(req, resp)
}

func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()

	chain.ProcessFilter(req, resp)

	status := resp.StatusCode()
	event := log.Info()
	switch {
	case status >= http.StatusInternalServerError:
		event = log.Error()
	case status >= http.StatusBadRequest:
		event = log.Warn()
	}

	requestID, _ := req.Attribute(RequestIDAttribute).(string)

	event.
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", status).
		Str("request_id", requestID).
		Dur("duration", time.Since(start)).
		Msg("HTTP request")
}

func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Str("path", req.Request.URL.Path).
				Msg("Recovered from panic")
			HandleError(resp, fmt.Errorf("internal server error"), http.StatusInternalServerError)
		}
	}()

	chain.ProcessFilter(req, resp)
}
