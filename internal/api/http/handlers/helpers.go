package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/opskit/teamdesk/pkg/util"
)

// pathID parses the :id path parameter. A non-numeric id can never match a
// stored entity, so it is reported as not-found with the raw value.
func pathID(c *fiber.Ctx, kind string) (int, error) {
	raw := c.Params("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, util.NewNotFound(fmt.Sprintf("%s with ID %s not found", kind, raw))
	}
	return id, nil
}
