package utils

import "github.com/gofiber/fiber/v2"

// Envelope is the success body shared by every endpoint.
type Envelope struct {
	Message *string     `json:"message"`
	Token   *string     `json:"token"`
	Data    interface{} `json:"data"`
}

// ErrorEnvelope is the failure body shared by every endpoint.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// Respond writes a success envelope. Empty message or token render as null.
func Respond(c *fiber.Ctx, status int, message, token string, data interface{}) error {
	env := Envelope{Data: data}
	if message != "" {
		env.Message = &message
	}
	if token != "" {
		env.Token = &token
	}
	return c.Status(status).JSON(env)
}

// RespondError writes a failure envelope.
func RespondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorEnvelope{Error: message})
}
