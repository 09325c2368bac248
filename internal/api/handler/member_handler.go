package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/member-api/internal/core/ports"
)

type MemberHandler struct {
	memberService ports.MemberService
}

func NewMemberHandler(memberService ports.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Constraints mirror the registration rules: password 8-20, nickname 2-10.
type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=20"`
	Nickname string `json:"nickname" validate:"required,min=2,max=10"`
}

type modifyRequest struct {
	Nickname string `json:"nickname" validate:"required,min=2,max=10"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8,max=20"`
}

// SignUp registers a new member with the default USER role.
//
// @Summary      Register a new member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Member registration details"
// @Success      201   {object}  ports.MemberProjection
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/members [post]
func (h *MemberHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	member, err := h.memberService.SignUp(c.Request().Context(), req.Email, req.Password, req.Nickname)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, member)
}

// Exists checks email availability: 200 when free, 409 when registered.
//
// @Summary      Check email availability
// @Tags         members
// @Produce      json
// @Param        email  path  string  true  "Email to check"
// @Success      200
// @Failure      409  {object}  map[string]string
// @Router       /api/members/exists/{email} [get]
func (h *MemberHandler) Exists(c echo.Context) error {
	if err := h.memberService.IsEmailTaken(c.Request().Context(), c.Param("email")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// GetMember fetches a single member projection.
//
// @Summary      Get a member
// @Tags         members
// @Produce      json
// @Param        id  path  int  true  "Member id"
// @Success      200  {object}  ports.MemberProjection
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/members/{id} [get]
func (h *MemberHandler) GetMember(c echo.Context) error {
	id, err := memberID(c)
	if err != nil {
		return err
	}

	member, err := h.memberService.GetMember(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, member)
}

// GetMembers lists members one page at a time. ADMIN only.
//
// @Summary      List members
// @Tags         members
// @Produce      json
// @Param        page   query  int  false  "1-based page number"
// @Param        limit  query  int  false  "Rows per page (max 100)"
// @Success      200  {object}  ports.MemberPage
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/members [get]
func (h *MemberHandler) GetMembers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.memberService.GetMembers(c.Request().Context(), ports.ListMembersFilter{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Modify updates the caller's own record: nickname, and password when given.
//
// @Summary      Modify a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id    path  int            true  "Member id (must be the caller's own)"
// @Param        body  body  modifyRequest  true  "Fields to change"
// @Success      200  {object}  ports.MemberProjection
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/members/{id} [patch]
func (h *MemberHandler) Modify(c echo.Context) error {
	targetID, err := memberID(c)
	if err != nil {
		return err
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req modifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	member, err := h.memberService.Modify(c.Request().Context(), targetID, principal.MemberID, ports.MemberModification{
		Nickname: req.Nickname,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, member)
}

func memberID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid member id")
	}
	return id, nil
}
