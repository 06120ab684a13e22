package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// unescapeParam returns a path parameter with percent-encoding undone.
// Profile names come straight from user input and routinely contain
// spaces.
func unescapeParam(c *fiber.Ctx, key string) (string, error) {
	return url.PathUnescape(c.Params(key))
}
