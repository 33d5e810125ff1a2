package middleware

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jdrincon/acadplan/internal/app/models/dto"
)

var validate = validator.New()

// ValidatedBodyKey is the context key under which ValidateRequest stores the
// bound request body.
const ValidatedBodyKey = "validatedBody"

// ValidateRequest binds the JSON body into a fresh value produced by newBody
// and validates it, aborting with a 400 on failure. Handlers behind it read
// the validated value from the context under ValidatedBodyKey. A fresh value
// per request keeps concurrent requests from sharing state.
func ValidateRequest(newBody func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := newBody()
		if err := c.ShouldBindJSON(obj); err != nil {
			errorDetail := dto.HandleValidationError(err)
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		value := reflect.ValueOf(obj)
		if value.Kind() == reflect.Ptr {
			value = value.Elem()
		}

		if err := validate.Struct(value.Interface()); err != nil {
			errorDetail := dto.HandleValidationError(err)
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		c.Set(ValidatedBodyKey, obj)
		c.Next()
	}
}
