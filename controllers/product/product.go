package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ricardo-1112/shuiba-order/catalog"
	"github.com/Ricardo-1112/shuiba-order/middleware"
)

// GET /products
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.List())
	}
}

// GET /products/:id
func GetProductByID(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := cat.GetByID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// POST /admin/products
func CreateProduct(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload catalog.AddPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "产品名称、分类和价格为必填项"})
			return
		}

		p, err := cat.Add(middleware.SessionFrom(c), payload)
		if err != nil {
			if errors.Is(err, catalog.ErrPrivilegeDenied) {
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "新增产品失败"})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// PUT /admin/products/:id
//
// An unknown id is a silent no-op in the catalog, so the handler answers
// 200 either way.
func UpdateProduct(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch catalog.UpdatePayload
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的产品数据"})
			return
		}

		if err := cat.UpdateByID(middleware.SessionFrom(c), c.Param("id"), patch); err != nil {
			if errors.Is(err, catalog.ErrPrivilegeDenied) {
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "更新产品失败"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "产品已更新"})
	}
}
