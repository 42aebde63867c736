package handlers

import (
	"net/http"
	"regexp"

	dom "Hostess/internal/domain"
	"Hostess/internal/dto"
	"Hostess/internal/service"

	"github.com/gin-gonic/gin"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// BoardHandler serves the reservation board API.
type BoardHandler struct {
	items *service.ItemService
	board *service.BoardService
}

// NewBoardHandler returns a new BoardHandler.
func NewBoardHandler(items *service.ItemService, board *service.BoardService) *BoardHandler {
	return &BoardHandler{items: items, board: board}
}

// GetBoard godoc
// @Summary      Board for a date
// @Tags         reservations
// @Produce      json
// @Param        date  path      string  true  "Date YYYY-MM-DD"
// @Success      200   {object}  dto.BoardResponse
// @Failure      400   {object}  map[string]string
// @Router       /reservations/{date} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	date, ok := parseDate(c, "date")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.board.Board(c.Request.Context(), date))
}

// Search godoc
// @Summary      Search today's board by guest name or order status
// @Tags         reservations
// @Produce      json
// @Param        query  path      string  true  "Substring, case-insensitive"
// @Success      200    {object}  dto.BoardResponse
// @Failure      400    {object}  map[string]string
// @Router       /reservations/search/{query} [get]
func (h *BoardHandler) Search(c *gin.Context) {
	resp, err := h.board.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		if err == service.ErrEmptyQuery {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetRestaurant godoc
// @Summary      Restaurant info
// @Tags         restaurant
// @Produce      json
// @Success      200  {object}  domain.Restaurant
// @Router       /restaurant [get]
func (h *BoardHandler) GetRestaurant(c *gin.Context) {
	c.JSON(http.StatusOK, dom.DefaultRestaurant())
}

// AvailableDays godoc
// @Summary      Selectable dates (today through today+6)
// @Tags         reservations
// @Produce      json
// @Success      200  {array}  string
// @Router       /available-days [get]
func (h *BoardHandler) AvailableDays(c *gin.Context) {
	c.JSON(http.StatusOK, h.board.AvailableDays())
}

// CreateOrders godoc
// @Summary      Create an order on one or more tables
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateOrderRequest  true  "Order body"
// @Success      201   {object}  dto.CreateOrdersResponse
// @Failure      400   {object}  map[string]string
// @Router       /orders [post]
func (h *BoardHandler) CreateOrders(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := dom.Status(req.Status)
	if status == "" {
		status = dom.StatusNew
	}
	base := dom.Item{
		Status:        status,
		Start:         dto.ClockPart(req.StartTime),
		End:           dto.ClockPart(req.EndTime),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		NumPeople:     req.NumPeople,
	}
	// The storage date is the start_time's calendar date.
	created := h.items.CreateForTables(c.Request.Context(), dto.DatePart(req.StartTime), base, req.Tables)

	c.JSON(http.StatusCreated, dto.CreateOrdersResponse{
		Success: true,
		Orders:  created,
		Message: "Orders created successfully",
	})
}

// DeleteItem godoc
// @Summary      Delete an order or reservation by id
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  map[string]string
// @Router       /orders/{id} [delete]
func (h *BoardHandler) DeleteItem(c *gin.Context) {
	if err := h.items.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order or reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Success: true, Message: "Order deleted successfully"})
}

// OrdersByDate godoc
// @Summary      Raw items of a date bucket
// @Tags         orders
// @Produce      json
// @Param        date  path      string  true  "Date YYYY-MM-DD"
// @Success      200   {object}  dto.DayOrdersResponse
// @Failure      400   {object}  map[string]string
// @Router       /orders/{date} [get]
func (h *BoardHandler) OrdersByDate(c *gin.Context) {
	date, ok := parseDate(c, "date")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.DayOrdersResponse{
		Success: true,
		Date:    date,
		Orders:  h.items.ListByDate(date),
	})
}

// ItemsByDate godoc
// @Summary      Date bucket split into orders and reservations
// @Tags         orders
// @Produce      json
// @Param        date  path      string  true  "Date YYYY-MM-DD"
// @Success      200   {object}  dto.DayItemsResponse
// @Failure      400   {object}  map[string]string
// @Router       /items/{date} [get]
func (h *BoardHandler) ItemsByDate(c *gin.Context) {
	date, ok := parseDate(c, "date")
	if !ok {
		return
	}
	orders := []dom.Item{}
	reservations := []dom.Item{}
	for _, it := range h.items.ListByDate(date) {
		if dom.Classify(it.Status) == dom.CategoryReservation {
			reservations = append(reservations, it)
		} else {
			orders = append(orders, it)
		}
	}
	c.JSON(http.StatusOK, dto.DayItemsResponse{
		Success:      true,
		Date:         date,
		Orders:       orders,
		Reservations: reservations,
	})
}

func parseDate(c *gin.Context, name string) (string, bool) {
	date := c.Param(name)
	if !dateRe.MatchString(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return "", false
	}
	return date, true
}
