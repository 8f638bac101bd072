package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"reflect"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetBodyFields returns a slice with the field names of the resource passed
// in. Only names of fields which are set in the body are contained in that
// slice, which makes it suitable as a gorm Select argument for partial
// updates.
//
// This function reads and copies the request body, it must always be called
// before any of gin's c.*Bind methods.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	// Copy the body to be able to use it multiple times
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []any{}, ErrInvalidBody
	}

	var bodyFields []any
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("json")

		if _, ok := mapBody[param]; ok {
			bodyFields = append(bodyFields, field)
		}
	}

	return bodyFields, nil
}
