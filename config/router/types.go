package router

import (
	"github.com/gin-gonic/gin"
)

type RequestContext = gin.Context

type MiddlewareFunc = gin.HandlerFunc

// Response is what a handler returns: a status code plus the exact JSON body
// to write. Handlers own their wire format; the router adds nothing.
type Response struct {
	StatusCode int
	Body       any
}

type HandlerFunction func(*RequestContext) *Response

type RESTController struct {
	name         string
	mountPoint   string
	handlerCount int
	prepare      func(*RouterService, *RESTController)
}
