package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sociocap/capgen_go_server/internal/model"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// CheckDB 数据库连通性自检，对存储做一次最小读取
// GET /api/v1/health/db
func (h *HealthHandler) CheckDB(c *gin.Context) {
	var users []model.User
	if err := h.db.Limit(1).Find(&users).Error; err != nil {
		log.Printf("Database connection error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connection successful",
		"data":    users,
	})
}
