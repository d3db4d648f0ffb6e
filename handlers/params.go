package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"foodgram/helper"
	"foodgram/models"
	"foodgram/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	maxMultipartMemory = 8 << 20
	// maxRecipeBody fits a 5 MB picture after base64 expansion plus the
	// recipe fields.
	maxRecipeBody = 8 << 20
)

// parseID reads a positive numeric path parameter. It writes the error
// response itself and reports false when the value is invalid.
func parseID(c *gin.Context, h *helper.HTTPHelper, name, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		h.SendBadRequest(c, "Invalid "+entity+" ID", h.EmptyJsonMap())
		return 0, false
	}
	return uint(id), true
}

// bindRecipeBody decodes a recipe write from JSON or multipart. A multipart
// body carries the fields as JSON in the "data" part and the picture in the
// "image" part; a JSON body carries the picture as a data URI in
// imageField. The returned image is nil when none was sent.
func bindRecipeBody(c *gin.Context, dst interface{}, imageField func() string) (*services.Image, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRecipeBody)

	img, err := readRecipeBody(c, dst, imageField)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return nil, models.ErrorValidation{Message: "request body is too large"}
	}
	return img, err
}

func readRecipeBody(c *gin.Context, dst interface{}, imageField func() string) (*services.Image, error) {
	if strings.HasPrefix(c.ContentType(), binding.MIMEMultipartPOSTForm) {
		if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, err
		}
		if err := binding.JSON.BindBody([]byte(c.Request.FormValue("data")), dst); err != nil {
			return nil, err
		}
		file, err := c.FormFile("image")
		if err != nil {
			// Fall back to a data URI inside the JSON part.
			if raw := imageField(); raw != "" {
				return services.DecodeImage(raw)
			}
			return nil, nil
		}
		return services.ImageFromFile(file)
	}

	if err := c.ShouldBindJSON(dst); err != nil {
		return nil, err
	}
	if raw := imageField(); raw != "" {
		return services.DecodeImage(raw)
	}
	return nil, nil
}
