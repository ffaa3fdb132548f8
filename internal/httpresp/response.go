package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data []T `json:"data"`
	Page int `json:"page"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

func List[T any](c *gin.Context, page int, data []T) {
	c.JSON(200, ListResponse[T]{
		Data: data,
		Page: page,
	})
}
