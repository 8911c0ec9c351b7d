package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ricardo-1112/shuiba-order/cart"
	"github.com/Ricardo-1112/shuiba-order/catalog"
	"github.com/Ricardo-1112/shuiba-order/middleware"
	"github.com/Ricardo-1112/shuiba-order/models"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type QtyInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Delta     int    `json:"delta" binding:"required"`
}

func cartState(engine *cart.Engine, owner string) gin.H {
	lines := engine.Lines(owner)
	if lines == nil {
		lines = []models.CartLine{}
	}
	return gin.H{
		"items": lines,
		"total": engine.Total(owner),
	}
}

// GET /user/cart
func GetCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
			return
		}
		c.JSON(http.StatusOK, cartState(engine, sess.Email))
	}
}

// POST /user/cart
//
// The cart copies the product record at add time; the catalog lookup here
// is the last moment the two are connected.
func AddCartItem(engine *cart.Engine, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的产品数据"})
			return
		}

		product, err := cat.GetByID(input.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "加入购物车失败"})
			return
		}

		if err := engine.Add(sess.Email, product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "加入购物车失败"})
			return
		}
		c.JSON(http.StatusOK, cartState(engine, sess.Email))
	}
}

// POST /user/cart/qty
func ChangeQty(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
			return
		}

		var input QtyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的数量调整"})
			return
		}

		if err := engine.ChangeQty(sess.Email, input.ProductID, input.Delta); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "调整数量失败"})
			return
		}
		c.JSON(http.StatusOK, cartState(engine, sess.Email))
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
			return
		}

		if err := engine.Remove(sess.Email, c.Param("product_id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "删除失败"})
			return
		}
		c.JSON(http.StatusOK, cartState(engine, sess.Email))
	}
}

// DELETE /user/cart
func ClearCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
			return
		}

		if err := engine.Clear(sess.Email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "清空购物车失败"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "购物车已清空"})
	}
}
