package helper

import (
	"errors"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"foodgram/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

const (
	textError             = `error`
	textOk                = `ok`
	codeSuccess           = 200
	codeCreated           = 201
	codeBadRequestError   = 400
	codeUnauthorizedError = 401
	codeForbidden         = 403
	codeNotFound          = 404
	codeConflict          = 409
	codeValidationError   = 422
	codeInternalError     = 500
)

// ResponseHelper ...
type ResponseHelper struct {
	C          *gin.Context
	Status     string
	Message    string
	Data       interface{}
	Code       int // not the http code
	CodeType   string
	HTTPStatus int
}

// HTTPHelper ...
type HTTPHelper struct {
	Translator ut.Translator
}

// NewHTTPHelper wires the helper to gin's binding validator.
func NewHTTPHelper() *HTTPHelper {
	return &HTTPHelper{Translator: setupValidator()}
}

// GetStatusCode ...
// Map a service error onto an HTTP status. Duplicate state is reported as a
// bad request.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		validationErr   models.ErrorValidation
		notFoundErr     models.ErrorNotFound
		conflictErr     models.ErrorConflict
		forbiddenErr    models.ErrorForbidden
		unauthorizedErr models.ErrorUnauthorized
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &conflictErr):
		return http.StatusBadRequest
	case errors.As(err, &unauthorizedErr):
		return http.StatusUnauthorized
	case errors.As(err, &forbiddenErr):
		return http.StatusForbidden
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message string, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{C: c, Status: status, Message: message, Data: data, Code: code, CodeType: codeType}
}

// SendErrorStatus sends an error envelope with an explicit HTTP status.
func (u *HTTPHelper) SendErrorStatus(c *gin.Context, httpStatus int, message string, data interface{}, code int, codeType string) error {
	res := u.SetResponse(c, textError, message, data, code, codeType)
	res.HTTPStatus = httpStatus

	return u.SendResponse(res)
}

// SendServiceError ...
// Send the envelope matching a typed service error.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) error {
	var (
		validationErr models.ErrorValidation
		conflictErr   models.ErrorConflict
	)
	switch status := u.GetStatusCode(err); {
	case errors.As(err, &validationErr):
		if validationErr.Field != "" {
			return u.SendErrorStatus(c, status, validationErr.Message,
				map[string][]string{validationErr.Field: {validationErr.Message}}, codeValidationError, `validationError`)
		}
		return u.SendBadRequest(c, validationErr.Message, u.EmptyJsonMap())
	case errors.As(err, &conflictErr):
		return u.SendErrorStatus(c, status, conflictErr.Message, u.EmptyJsonMap(), codeConflict, `conflict`)
	case status == http.StatusUnauthorized:
		return u.SendUnauthorizedError(c, err.Error(), u.EmptyJsonMap())
	case status == http.StatusForbidden:
		return u.SendForbidden(c, err.Error(), u.EmptyJsonMap())
	case status == http.StatusNotFound:
		return u.SendNotFoundError(c, err.Error(), u.EmptyJsonMap())
	default:
		c.Error(err)
		return u.SendErrorStatus(c, status, "internal server error", u.EmptyJsonMap(), codeInternalError, `internalError`)
	}
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textError, message, data, codeBadRequestError, `badRequest`)

	return u.SendResponse(res)
}

// SendBindError ...
// Send the response for a failed ShouldBind call.
func (u *HTTPHelper) SendBindError(c *gin.Context, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return u.SendValidationError(c, validationErrors)
	}
	return u.SendBadRequest(c, "invalid request body: "+err.Error(), u.EmptyJsonMap())
}

// SendValidationError ...
// Send validation error response to consumers, keyed by JSON field path.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := fieldPath(err.Namespace())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"code":         codeValidationError,
		"code_type":    "validationError",
		"code_message": errorResponse,
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) error {
	return u.SendErrorStatus(c, http.StatusUnauthorized, message, data, codeUnauthorizedError, `unAuthorized`)
}

// SendForbidden ...
// Send forbidden response to consumers.
func (u *HTTPHelper) SendForbidden(c *gin.Context, message string, data interface{}) error {
	return u.SendErrorStatus(c, http.StatusForbidden, message, data, codeForbidden, `forbidden`)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.SendErrorStatus(c, http.StatusNotFound, message, data, codeNotFound, `notFound`)
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, codeSuccess, `success`)

	return u.SendResponse(res)
}

// SendCreated ...
// Send created response to consumers.
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, codeCreated, `created`)
	res.HTTPStatus = http.StatusCreated

	return u.SendResponse(res)
}

// SendNoContent ...
// Send an empty 204 response.
func (u *HTTPHelper) SendNoContent(c *gin.Context) error {
	c.Status(http.StatusNoContent)
	return nil
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if len(res.Message) == 0 {
		res.Message = `success`
	}

	resCode := res.HTTPStatus
	if resCode == 0 {
		if res.Code != codeSuccess {
			resCode = http.StatusBadRequest
		} else {
			resCode = http.StatusOK
		}
	}

	res.C.JSON(resCode, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
	return nil
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// get pagination URL, keeping the other query parameters
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	query := r.URL.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	currentURL := scheme + "://" + r.Host + r.URL.Path + "?" + query.Encode()
	return currentURL
}

// Set paginantion response
func (u *HTTPHelper) GeneratePaging(c *gin.Context, prev, next, limit, page, totalRecord int) map[string]interface{} {

	prevURL, nextURL, firstURL, lastURL := "", "", "", ""

	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	if page > 1 {
		prev = page - 1
	}
	if page < totalPages {
		next = page + 1
	} else {
		next = totalPages
	}

	if totalPages >= page && page > 1 {
		prevURL = u.GetPagingUrl(c, prev, limit)
	}

	if totalPages > page {
		nextURL = u.GetPagingUrl(c, next, limit)
	}

	if totalPages >= page && page > 1 {
		firstURL = u.GetPagingUrl(c, 1, limit)
	}

	if totalPages >= page && totalPages != page {
		lastURL = u.GetPagingUrl(c, totalPages, limit)
	}

	links := map[string]interface{}{
		"previous": prevURL,
		"next":     nextURL,
		"first":    firstURL,
		"last":     lastURL,
	}

	pagination := map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
		"links":         links,
	}

	return pagination
}

// SendPage ...
// Send one page of a listing with its pagination block.
func (u *HTTPHelper) SendPage(c *gin.Context, message string, results interface{}, page models.PageParams, total int64) error {
	if reflect.ValueOf(results).Kind() == reflect.Slice && reflect.ValueOf(results).IsNil() {
		results = []interface{}{}
	}
	return u.SendSuccess(c, message, map[string]interface{}{
		"count":      total,
		"results":    results,
		"pagination": u.GeneratePaging(c, 0, 0, page.Limit, page.Page, int(total)),
	})
}

// fieldPath drops the struct name from a validator namespace, so
// "RecipeWriteRequest.ingredients[0].amount" becomes "ingredients[0].amount".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
