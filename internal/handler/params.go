package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/tbcare/screening-api/pkg/errors"
)

// paramInt reads an integer path parameter.
func paramInt(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.KindInvalidRequest, "invalid "+name)
	}
	return id, nil
}

// paramInts reads several integer path parameters in order, stopping at the first bad one.
func paramInts(c *gin.Context, names ...string) ([]int64, error) {
	out := make([]int64, len(names))
	for i, name := range names {
		id, err := paramInt(c, name)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}

// bindPayload decodes the JSON body. Field presence is checked by the services.
func bindPayload(c *gin.Context, dest interface{}) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		return appErrors.Wrap(err, appErrors.KindInvalidRequest, "invalid payload")
	}
	return nil
}
