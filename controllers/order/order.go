package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ricardo-1112/shuiba-order/cart"
	"github.com/Ricardo-1112/shuiba-order/middleware"
	"github.com/Ricardo-1112/shuiba-order/models"
	"github.com/Ricardo-1112/shuiba-order/orders"
)

type PlaceOrderRequest struct {
	PickupSlot string `json:"pickup_slot" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /user/orders
//
// Submission snapshots the caller's cart; on success the cart is cleared
// and the new order is pushed to the live feed.
func PlaceOrder(orderEngine *orders.Engine, cartEngine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "请选择取餐时间"})
			return
		}

		var lines []models.CartLine
		if sess != nil {
			lines = cartEngine.Lines(sess.Email)
		}

		order, err := orderEngine.Submit(sess, lines, req.PickupSlot)
		if err != nil {
			switch {
			case errors.Is(err, orders.ErrNotAuthenticated):
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			case errors.Is(err, orders.ErrEmptyCart), errors.Is(err, orders.ErrInvalidSlot):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "下单失败"})
			}
			return
		}

		if err := cartEngine.Clear(sess.Email); err != nil {
			// The order is already durable; an unclearable cart is not
			// worth failing the submission over.
			c.JSON(http.StatusCreated, order)
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetMyOrders(orderEngine *orders.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
			return
		}
		list := orderEngine.ListByUser(sess.Email)
		if list == nil {
			list = []models.Order{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /admin/orders
func GetAllOrders(orderEngine *orders.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orderEngine.List())
	}
}

// DELETE /admin/orders
func ClearOrders(orderEngine *orders.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := orderEngine.ClearAll(middleware.SessionFrom(c)); err != nil {
			if errors.Is(err, orders.ErrPrivilegeDenied) {
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "清空订单失败"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "订单已清空"})
	}
}

// PUT /admin/orders/:order_id/status
func UpdateOrderStatus(orderEngine *orders.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的订单状态"})
			return
		}

		status, err := orders.ParseStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = orderEngine.UpdateStatus(middleware.SessionFrom(c), c.Param("order_id"), status)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "订单状态已更新"})
		case errors.Is(err, orders.ErrPrivilegeDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, orders.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, orders.ErrOrderClosed), errors.Is(err, orders.ErrInvalidStatus):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "更新订单状态失败"})
		}
	}
}
