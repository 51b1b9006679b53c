package responses

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Stable machine-readable error codes carried on every error body.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeStorage    = "STORAGE_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

// exposeDetails is set once at startup; outside production, 500 bodies carry
// the underlying error text.
var exposeDetails bool

func Init(production bool) {
	exposeDetails = !production
}

// ErrorBody is the uniform error envelope.
type ErrorBody struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Fields  []string `json:"fields,omitempty"`
	Details string   `json:"details,omitempty"`
}

// ValidationFailed answers 400 listing every violated field.
func ValidationFailed(c *fiber.Ctx, message string, fields []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{
		Error:  message,
		Code:   CodeValidation,
		Fields: fields,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: message, Code: CodeValidation})
}

func Conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(ErrorBody{Error: message, Code: CodeConflict})
}

func NotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorBody{Error: message, Code: CodeNotFound})
}

// Internal answers 500 with a generic message, logging the cause server-side.
// The cause is echoed in the body only outside production.
func Internal(c *fiber.Ctx, message string, err error) error {
	return withCause(c, message, CodeInternal, err)
}

// Storage answers 500 for blob-backend failures.
func Storage(c *fiber.Ctx, message string, err error) error {
	return withCause(c, message, CodeStorage, err)
}

func withCause(c *fiber.Ctx, message, code string, err error) error {
	zap.L().Error(message, zap.String("path", c.Path()), zap.Error(err))
	body := ErrorBody{Error: message, Code: code}
	if exposeDetails && err != nil {
		body.Details = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
