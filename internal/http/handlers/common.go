package handlers

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"seasfinance/internal/domain"
)

// InitValidator makes gin's validator report json field names.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// BindJSONOrError ensures body is present and valid.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "Request body is required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", domain.ValidationMessage(err), nil)
		return false
	}
	return true
}

func paramInt(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Param(name))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.InvalidArgumentError{Field: name, Msg: "must be a number", Err: err}
	}
	return n, nil
}

// yearMonth reads the :year and :month path parameters.
func yearMonth(c *gin.Context) (int, int, bool) {
	year, err := paramInt(c, "year")
	if err != nil {
		RespondDomainError(c, err)
		return 0, 0, false
	}
	month, err := paramInt(c, "month")
	if err != nil {
		RespondDomainError(c, err)
		return 0, 0, false
	}
	return year, month, true
}
