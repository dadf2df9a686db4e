package ws

import (
	"net/http"
	"strconv"

	"github.com/Hamdan-B/FoodiesHub/entity"
	"github.com/Hamdan-B/FoodiesHub/pkg/logger"
	"github.com/Hamdan-B/FoodiesHub/repository"
	"github.com/Hamdan-B/FoodiesHub/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler bridges hub subscriptions onto websocket connections.
type Handler struct {
	Hub    *OrderHub
	Orders *repository.OrderRepository
	Riders *repository.RiderRepository
}

func NewHandler(hub *OrderHub, orders *repository.OrderRepository, riders *repository.RiderRepository) *Handler {
	return &Handler{Hub: hub, Orders: orders, Riders: riders}
}

// WS /ws/orders/:id — live status of one order, for its buyer (or the
// rider currently carrying it).
func (h *Handler) HandleOrderSocket(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "bad order id"})
		return
	}
	orderID := uint(id64)
	uid := utils.CurrentUserID(c)

	o, err := h.Orders.GetByID(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found"})
		return
	}
	if !h.canWatch(uid, o) {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no access"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.L().Warn("ws upgrade failed", zap.Error(err))
		return
	}

	ch, cancel := h.Hub.Subscribe(OrderTopic(orderID))
	defer cancel()
	defer conn.Close()

	// current state first, then live changes
	if err := conn.WriteJSON(snapshot(o)); err != nil {
		return
	}

	go drainReads(conn, cancel)

	for ev := range ch {
		if err := conn.WriteJSON(ev); err != nil {
			return
		}
	}
}

// WS /ws/rider/available — the ready-and-unclaimed order set, resent
// whenever a seller marks an order ready or a rider claims one.
func (h *Handler) HandleAvailableSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.L().Warn("ws upgrade failed", zap.Error(err))
		return
	}

	ch, cancel := h.Hub.Subscribe(TopicAvailable)
	defer cancel()
	defer conn.Close()

	if err := h.writeAvailable(conn); err != nil {
		return
	}

	go drainReads(conn, cancel)

	for range ch {
		if err := h.writeAvailable(conn); err != nil {
			return
		}
	}
}

func (h *Handler) writeAvailable(conn *websocket.Conn) error {
	orders, err := h.Orders.ListAvailable()
	if err != nil {
		logger.L().Error("list available orders", zap.Error(err))
		return err
	}
	return conn.WriteJSON(gin.H{"type": "available", "orders": orders})
}

func (h *Handler) canWatch(uid uint, o *entity.Order) bool {
	if o.BuyerID == uid {
		return true
	}
	if o.RiderID != nil {
		if rd, err := h.Riders.GetByUserID(uid); err == nil && rd.ID == *o.RiderID {
			return true
		}
	}
	return false
}

func snapshot(o *entity.Order) OrderEvent {
	return OrderEvent{
		OrderID:     o.ID,
		StoreID:     o.StoreID,
		OrderStatus: string(o.OrderStatus),
		RiderID:     o.RiderID,
		DeliveryOTP: o.DeliveryOTP,
		At:          o.UpdatedAt,
	}
}

// drainReads consumes client frames until the peer goes away, then
// cancels the hub subscription so the write loop unblocks.
func drainReads(conn *websocket.Conn, cancel func()) {
	defer cancel()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
