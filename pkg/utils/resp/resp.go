package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope every handler returns.
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &Response{Code: http.StatusOK, Msg: "success", Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, &Response{Code: http.StatusCreated, Msg: "success", Data: data})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, &Response{Code: http.StatusBadRequest, Msg: msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, &Response{Code: http.StatusNotFound, Msg: msg})
}

func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, &Response{Code: http.StatusConflict, Msg: msg})
}

func BadGateway(c *gin.Context, msg string) {
	c.JSON(http.StatusBadGateway, &Response{Code: http.StatusBadGateway, Msg: msg})
}

func Error(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, &Response{Code: http.StatusInternalServerError, Msg: msg})
}

// Status replies with an arbitrary status code, used when relaying a
// downstream service's failure as-is.
func Status(c *gin.Context, code int, msg string) {
	c.JSON(code, &Response{Code: code, Msg: msg})
}
