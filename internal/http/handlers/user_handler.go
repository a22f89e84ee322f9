package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "aradamart/internal/log"
	"aradamart/internal/services"
	"aradamart/internal/validate"
)

type UserHandler struct {
	Users *services.UserService
}

type userReq struct {
	Email    string `json:"email" validate:"required,mail"`
	Name     string `json:"name" validate:"required,max=80"`
	Role     string `json:"role" validate:"required,role"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Confirm  string `json:"confirmPassword" validate:"eqfield=Password"`
}

type passwordReq struct {
	Password string `json:"password" validate:"required,min=6"`
	Confirm  string `json:"confirmPassword" validate:"eqfield=Password"`
}

func (h *UserHandler) parse(c *fiber.Ctx) (userReq, error) {
	var req userReq
	if err := c.BodyParser(&req); err != nil {
		return req, badParam("body", "invalid request body")
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	return req, validate.Struct(&req)
}

// GET /api/v1/admin/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"users": h.Users.List()})
}

// POST /api/v1/admin/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	req, err := h.parse(c)
	if err != nil {
		return fail(c, err)
	}
	acc, err := h.Users.Create(c.UserContext(), req.Email, req.Name, req.Role, req.Password)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "admin.users.create", map[string]any{"user_id": acc.ID, "role": acc.Role})
	return c.Status(fiber.StatusCreated).JSON(acc)
}

// GET /api/v1/admin/users/lookup?email=
func (h *UserHandler) Lookup(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Query("email"))
	if !ok {
		return fail(c, badParam("email", "Please enter a valid email"))
	}
	acc, found := h.Users.ByEmail(email)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.JSON(acc)
}

// PUT /api/v1/admin/users/:id. The password is not touched here.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return fail(c, err)
	}
	req, err := h.parse(c)
	if err != nil {
		return fail(c, err)
	}
	acc, err := h.Users.Update(c.UserContext(), id, req.Email, req.Name, req.Role)
	if err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "admin.users.update", map[string]any{"user_id": acc.ID, "role": acc.Role})
	return c.JSON(acc)
}

// PUT /api/v1/admin/users/:id/password
func (h *UserHandler) SetPassword(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return fail(c, err)
	}
	var req passwordReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if err := h.Users.SetPassword(c.UserContext(), id, req.Password); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "admin.users.password", map[string]any{"user_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// DELETE /api/v1/admin/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return fail(c, err)
	}
	if self, _ := c.Locals(applog.LocalAccountID).(string); self == id {
		return fail(c, badParam("id", "you cannot delete your own account"))
	}
	h.Users.Delete(c.UserContext(), id)
	applog.Audit(c, "admin.users.delete", map[string]any{"user_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
