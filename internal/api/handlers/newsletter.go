package handlers

import (
	"net/http"

	apperrors "club-portal-backend/internal/errors"
	"club-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NewsletterHandler handles HTTP requests for newsletter subscriptions,
// bulk sends and the contact form
type NewsletterHandler struct {
	newsletterService service.NewsletterServiceInterface
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(newsletterService service.NewsletterServiceInterface) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
	}
}

// Subscribe registers an email for the newsletter
// @Summary Subscribe to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param subscription body service.SubscribeRequest true "Email to subscribe"
// @Success 201 {object} APIResponse{data=service.SubscriberResponse} "Subscribed"
// @Failure 400 {object} APIResponse "Invalid email"
// @Failure 409 {object} APIResponse "Already subscribed"
// @Router /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req service.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	subscriber, err := h.newsletterService.Subscribe(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "subscribed to the newsletter", subscriber)
}

// SendNewsletter delivers a newsletter to every subscriber
// @Summary Send the newsletter
// @Description Send a message to all subscribers. When some deliveries fail the partial result is returned with a 502.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param newsletter body service.SendNewsletterRequest true "Subject and message"
// @Success 200 {object} APIResponse{data=service.SendNewsletterResponse} "Newsletter sent"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 502 {object} APIResponse{data=service.SendNewsletterResponse} "Some deliveries failed"
// @Security BearerAuth
// @Router /newsletter/send [post]
func (h *NewsletterHandler) SendNewsletter(c *gin.Context) {
	var req service.SendNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.newsletterService.Send(&req)
	if err != nil {
		if apperrors.IsDelivery(err) {
			c.JSON(http.StatusBadGateway, APIResponse{
				Message: "newsletter partially delivered",
				Status:  "error",
				Data:    result,
			})
			return
		}
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "newsletter sent", result)
}

// Contact forwards a contact form message to the club
// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param message body service.ContactRequest true "Name, email and message"
// @Success 200 {object} APIResponse "Message sent"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 502 {object} APIResponse "Message could not be delivered"
// @Router /contact [post]
func (h *NewsletterHandler) Contact(c *gin.Context) {
	var req service.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.newsletterService.Contact(&req); err != nil {
		if apperrors.IsDelivery(err) {
			respondError(c, http.StatusBadGateway, "message could not be delivered")
			return
		}
		handleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "message sent", nil)
}
