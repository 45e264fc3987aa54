package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"roomdesigner/internal/auth"
	"roomdesigner/internal/catalog"
	"roomdesigner/internal/metrics"
	"roomdesigner/internal/model"
	"roomdesigner/internal/plan2d"
	"roomdesigner/internal/store"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

type tokenResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type createDesignRequest struct {
	Name         string              `json:"name"`
	RoomSettings *model.RoomSettings `json:"roomSettings"`
}

type addFurnitureRequest struct {
	TemplateID string      `json:"templateId"`
	Position   *model.Vec3 `json:"position"`
}

func decode(c fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return errors.New("empty body")
	}
	if err := json.Unmarshal(c.Body(), v); err != nil {
		return errors.New("invalid json")
	}
	return nil
}

func badRequest(c fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func notFound(c fiber.Ctx, what string) error {
	return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": what + " not found"})
}

func (s *Server) internalError(c fiber.Ctx, err error) error {
	s.log.WithError(err).WithField("path", c.Path()).Error("Request failed")
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func (s *Server) issue(c fiber.Ctx, status int, u model.User) error {
	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return s.internalError(c, err)
	}
	return c.Status(status).JSON(tokenResponse{Token: token, User: u})
}

func (s *Server) login(c fiber.Ctx) error {
	var req credentials
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	u, err := s.users.Authenticate(req.Email, req.Password)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}
	return s.issue(c, http.StatusOK, u)
}

func (s *Server) register(c fiber.Ctx) error {
	var req registerRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	u, err := s.users.CreateAccount(req.Name, req.Email, req.Password, req.Role)
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidAccount):
		return badRequest(c, err)
	case err != nil:
		return s.internalError(c, err)
	}
	return s.issue(c, http.StatusCreated, u)
}

func (s *Server) listCatalog(c fiber.Ctx) error {
	return c.JSON(catalog.Categories())
}

func (s *Server) listLayouts(c fiber.Ctx) error {
	return c.JSON(catalog.DefaultLayouts())
}

func (s *Server) listDesigns(c fiber.Ctx) error {
	return c.JSON(s.store.GetUserDesigns(caller(c).ID))
}

func (s *Server) createDesign(c fiber.Ctx) error {
	var req createDesignRequest
	if len(c.Body()) > 0 {
		if err := decode(c, &req); err != nil {
			return badRequest(c, err)
		}
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "New Design"
	}
	room := model.DefaultRoom()
	if req.RoomSettings != nil {
		room = model.ClampRoom(*req.RoomSettings)
	}
	d, err := s.store.CreateDesign(c.Context(), caller(c).ID, name, room)
	if err != nil {
		return s.internalError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(d)
}

// owned resolves :id and checks the caller may edit it. It writes the
// error response itself and reports false when the handler should stop.
func (s *Server) owned(c fiber.Ctx) (model.Design, bool, error) {
	d, ok := s.store.GetDesign(c.Params("id"))
	if !ok {
		return model.Design{}, false, notFound(c, "design")
	}
	u := caller(c)
	if d.OwnerID != u.ID && u.Role != model.RoleAdmin {
		return model.Design{}, false, c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}
	return d, true, nil
}

func (s *Server) getDesign(c fiber.Ctx) error {
	d, ok, err := s.owned(c)
	if !ok {
		return err
	}
	return c.JSON(d)
}

func (s *Server) patchDesign(c fiber.Ctx) error {
	d, ok, err := s.owned(c)
	if !ok {
		return err
	}
	var patch store.DesignPatch
	if err := decode(c, &patch); err != nil {
		return badRequest(c, err)
	}
	if patch.RoomSettings != nil {
		room := model.ClampRoom(*patch.RoomSettings)
		patch.RoomSettings = &room
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return badRequest(c, errors.New("name must not be blank"))
		}
		patch.Name = &name
	}
	if err := s.store.UpdateDesign(c.Context(), d.ID, patch); err != nil {
		return s.internalError(c, err)
	}
	updated, _ := s.store.GetDesign(d.ID)
	return c.JSON(updated)
}

func (s *Server) deleteDesign(c fiber.Ctx) error {
	d, ok, err := s.owned(c)
	if !ok {
		return err
	}
	if err := s.store.DeleteDesign(c.Context(), d.ID); err != nil {
		return s.internalError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (s *Server) addFurniture(c fiber.Ctx) error {
	d, ok, err := s.owned(c)
	if !ok {
		return err
	}
	var req addFurnitureRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	tmpl, found := catalog.Template(req.TemplateID)
	if !found {
		return badRequest(c, errors.New("unknown template "+req.TemplateID))
	}
	pos := d.RoomSettings.Center()
	if req.Position != nil {
		pos = model.ClampToRoom(*req.Position, tmpl.DefaultScale, d.RoomSettings)
	}
	item := tmpl.Spawn(s.newID("item"), pos)
	if err := s.store.AddFurnitureItem(c.Context(), d.ID, item); err != nil {
		return s.internalError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}

func (s *Server) patchFurniture(c fiber.Ctx) error {
	d, ok, err := s.owned(c)
	if !ok {
		return err
	}
	itemID := c.Params("itemId")
	if model.FindItem(d.Furniture, itemID) < 0 {
		return notFound(c, "item")
	}
	var patch store.ItemPatch
	if err := decode(c, &patch); err != nil {
		return badRequest(c, err)
	}
	if patch.Scale != nil && (patch.Scale.X <= 0 || patch.Scale.Y <= 0 || patch.Scale.Z <= 0) {
		return badRequest(c, errors.New("scale must be positive"))
	}
	if patch.Color != nil {
		if _, err := model.ParseHex(*patch.Color); err != nil {
			return badRequest(c, err)
		}
	}
	if err := s.store.UpdateFurnitureItem(c.Context(), d.ID, itemID, patch); err != nil {
		return s.internalError(c, err)
	}
	// the design or item may have been deleted by a concurrent request
	updated, ok := s.store.GetDesign(d.ID)
	if !ok {
		return notFound(c, "design")
	}
	i := model.FindItem(updated.Furniture, itemID)
	if i < 0 {
		return notFound(c, "item")
	}
	return c.JSON(updated.Furniture[i])
}

func (s *Server) deleteFurniture(c fiber.Ctx) error {
	d, ok, err := s.owned(c)
	if !ok {
		return err
	}
	itemID := c.Params("itemId")
	if model.FindItem(d.Furniture, itemID) < 0 {
		return notFound(c, "item")
	}
	if err := s.store.RemoveFurnitureItem(c.Context(), d.ID, itemID); err != nil {
		return s.internalError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (s *Server) planPNG(c fiber.Ctx) error {
	d, ok, err := s.owned(c)
	if !ok {
		return err
	}
	start := time.Now()
	var buf bytes.Buffer
	img := plan2d.Render(d.RoomSettings, d.Furniture, c.Query("selected"))
	if err := plan2d.EncodePNG(&buf, img); err != nil {
		return s.internalError(c, err)
	}
	metrics.ObserveRender("png", time.Since(start))

	c.Set("Content-Type", "image/png")
	return c.Send(buf.Bytes())
}

func (s *Server) planSVG(c fiber.Ctx) error {
	d, ok, err := s.owned(c)
	if !ok {
		return err
	}
	start := time.Now()
	svg := plan2d.RenderSVG(d.RoomSettings, d.Furniture, c.Query("selected"))
	metrics.ObserveRender("svg", time.Since(start))

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}
