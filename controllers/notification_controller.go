// controllers/notification_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"borccu-api/config"
	"borccu-api/models"
	"borccu-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// notify inserts an in-app notification inside the caller's transaction.
// The feed is best-effort: a failed insert never fails the main write.
func notify(tx *gorm.DB, userID uint, kind, title, body, refType string, refID uint) {
	_ = tx.Create(&models.Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Body:    body,
		RefType: refType,
		RefID:   refID,
	}).Error
}

// NotificationList returns the caller's feed, newest first.
// Optional ?unread=true filter.
func NotificationList(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	q := config.DB.Where("user_id = ?", uid).Order("created_at DESC, id DESC")
	if c.Query("unread") == "true" {
		q = q.Where("is_read = false")
	}

	var rows []models.Notification
	if err := q.Limit(100).Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to load notifications", err)
		return
	}
	utils.Success(c, "notifications loaded", rows)
}

func NotificationMarkRead(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	res := config.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update("is_read", true)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to mark notification", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "notification not found", nil)
		return
	}
	utils.Success(c, "notification read", nil)
}

func NotificationMarkAllRead(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	if err := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", uid).
		Update("is_read", true).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to mark notifications", err)
		return
	}
	utils.Success(c, "all notifications read", nil)
}

func NotificationDelete(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	res := config.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Notification{})
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to delete notification", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "notification not found", nil)
		return
	}
	utils.Success(c, "notification deleted", nil)
}
