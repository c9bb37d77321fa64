package handlers

import (
	"context"
	"errors"
	"strings"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/tejavira2023/fitverse/internal/models"
	"github.com/tejavira2023/fitverse/internal/services"
	assistantws "github.com/tejavira2023/fitverse/internal/websocket"
	"github.com/tejavira2023/fitverse/pkg/utils"
)

type assistantApplicationService interface {
	SendMessage(ctx context.Context, userID int64, content string) (*services.AssistantExchange, error)
	History(ctx context.Context, userID int64, page int, limit int) ([]models.AssistantMessage, int, error)
	ClearHistory(ctx context.Context, userID int64) error
}

type AssistantHandler struct {
	service   assistantApplicationService
	hub       *assistantws.Hub
	jwtSecret string
}

func NewAssistantHandler(service assistantApplicationService, hub *assistantws.Hub, jwtSecret string) *AssistantHandler {
	return &AssistantHandler{
		service:   service,
		hub:       hub,
		jwtSecret: jwtSecret,
	}
}

type sendAssistantMessageRequest struct {
	Content string `json:"content"`
}

func (h *AssistantHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req sendAssistantMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	exchange, err := h.service.SendMessage(c.Context(), userID, req.Content)
	if err != nil {
		return mapAssistantError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user_message":      exchange.UserMessage,
		"assistant_message": exchange.AssistantMessage,
	})
}

func (h *AssistantHandler) GetHistory(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	messages, total, err := h.service.History(c.Context(), userID, page, limit)
	if err != nil {
		return mapAssistantError(c, err)
	}

	return c.JSON(fiber.Map{
		"messages":   messages,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *AssistantHandler) ClearHistory(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	if err := h.service.ClearHistory(c.Context(), userID); err != nil {
		return mapAssistantError(c, err)
	}

	return c.JSON(fiber.Map{"welcome_message": services.WelcomeMessage})
}

func (h *AssistantHandler) WebSocketAuth(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}

	claims, err := h.parseWSClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	c.Locals("user_id", claims.UserID)
	return c.Next()
}

func (h *AssistantHandler) HandleWebSocket(conn *websocket.Conn) {
	userID, _ := conn.Locals("user_id").(string)
	client := assistantws.NewClient(h.hub, conn, userID)

	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump(h.service)
}

func (h *AssistantHandler) parseWSClaims(c *fiber.Ctx) (*utils.Claims, error) {
	tokenString := strings.TrimSpace(c.Query("token"))
	if tokenString == "" {
		authHeader := strings.TrimSpace(c.Get("Authorization"))
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
	}

	if tokenString == "" {
		return nil, errors.New("missing token")
	}

	return utils.ValidateToken(tokenString, h.jwtSecret)
}

func mapAssistantError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message content is required"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process assistant request"})
	}
}
