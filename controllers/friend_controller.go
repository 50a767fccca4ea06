// controllers/friend_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"borccu-api/config"
	"borccu-api/models"
	"borccu-api/service"
	"borccu-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FriendList returns the profiles of the caller's confirmed friends.
func FriendList(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	ids, err := friendIDsOf(uid)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to load friends", err)
		return
	}
	if len(ids) == 0 {
		utils.Success(c, "friends loaded", []models.User{})
		return
	}

	var friends []models.User
	if err := config.DB.Where("id IN ?", ids).Order("full_name ASC").Find(&friends).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to load friends", err)
		return
	}
	utils.Success(c, "friends loaded", friends)
}

// FriendSuggestions searches the profile directory and labels every match
// as friend, pending or addable.
func FriendSuggestions(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	like := "%" + query + "%"

	var candidates []models.User
	q := config.DB.Where("is_active = true")
	if query != "" {
		q = q.Where("full_name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}
	if err := q.Order("full_name ASC").Limit(50).Find(&candidates).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "search failed", err)
		return
	}

	ids, err := friendIDsOf(uid)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to load friends", err)
		return
	}
	friendSet := map[uint]bool{}
	for _, id := range ids {
		friendSet[id] = true
	}

	// pending edges in either direction keep the candidate out of "addable"
	var pending []models.FriendRequest
	if err := config.DB.
		Where("status = ? AND (from_user_id = ? OR to_user_id = ?)", models.FriendRequestPending, uid, uid).
		Find(&pending).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to load requests", err)
		return
	}
	pendingSet := map[uint]bool{}
	for _, r := range pending {
		if r.FromUserID == uid {
			pendingSet[r.ToUserID] = true
		} else {
			pendingSet[r.FromUserID] = true
		}
	}

	utils.Success(c, "suggestions loaded", service.ClassifyCandidates(uid, candidates, friendSet, pendingSet))
}

type FriendRequestInput struct {
	ToUserID uint `json:"to_user_id" binding:"required"`
}

func FriendRequestSend(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	var in FriendRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if in.ToUserID == uid {
		utils.Error(c, http.StatusBadRequest, "cannot befriend yourself", service.ErrSelfReference)
		return
	}

	var target models.User
	if err := config.DB.Where("id = ? AND is_active = true", in.ToUserID).First(&target).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}

	a, b := uid, in.ToUserID
	if a > b {
		a, b = b, a
	}
	var friendCount int64
	config.DB.Model(&models.Friendship{}).
		Where("user_a_id = ? AND user_b_id = ?", a, b).
		Count(&friendCount)
	if friendCount > 0 {
		utils.Error(c, http.StatusConflict, "already friends", nil)
		return
	}

	var pendingCount int64
	config.DB.Model(&models.FriendRequest{}).
		Where("status = ? AND ((from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?))",
			models.FriendRequestPending, uid, in.ToUserID, in.ToUserID, uid).
		Count(&pendingCount)
	if pendingCount > 0 {
		utils.Error(c, http.StatusConflict, "request already pending", nil)
		return
	}

	req := models.FriendRequest{
		FromUserID: uid,
		ToUserID:   in.ToUserID,
		Status:     models.FriendRequestPending,
	}
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&req).Error; err != nil {
			return err
		}
		notify(tx, in.ToUserID, models.NotifFriendRequest, "Friend request",
			"You have a new friend request", "friend_request", req.ID)
		return nil
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to send request", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "request sent", "data": req})
}

// FriendRequestsIncoming lists the caller's pending incoming requests with
// sender profiles attached.
func FriendRequestsIncoming(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	var rows []models.FriendRequest
	if err := config.DB.
		Where("to_user_id = ? AND status = ?", uid, models.FriendRequestPending).
		Preload("From").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to load requests", err)
		return
	}
	utils.Success(c, "requests loaded", rows)
}

type FriendRespondInput struct {
	Accept bool `json:"accept"`
}

// FriendRequestRespond accepts or declines a pending incoming request. An
// accept creates the friendship edge.
func FriendRequestRespond(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	var in FriendRespondInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var req models.FriendRequest
		if err := tx.Clauses(clauseUpdateLock()).First(&req, id).Error; err != nil {
			return err
		}
		if req.ToUserID != uid {
			return errForbidden
		}
		if req.Status != models.FriendRequestPending {
			return errors.New("request already responded")
		}

		status := models.FriendRequestDeclined
		if in.Accept {
			status = models.FriendRequestAccepted
		}
		now := time.Now().UTC()
		if err := tx.Model(&req).Updates(map[string]any{
			"status":       status,
			"responded_at": &now,
		}).Error; err != nil {
			return err
		}

		if in.Accept {
			edge := models.Friendship{UserAID: req.FromUserID, UserBID: req.ToUserID}
			if err := tx.Create(&edge).Error; err != nil {
				return err
			}
			notify(tx, req.FromUserID, models.NotifFriendAccepted, "Friend request accepted",
				"Your friend request was accepted", "friend_request", req.ID)
		}
		return nil
	})
	if err != nil {
		respondFriendError(c, err)
		return
	}
	utils.Success(c, "request responded", nil)
}

// FriendRequestCancel lets the sender withdraw a pending request.
func FriendRequestCancel(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	res := config.DB.Model(&models.FriendRequest{}).
		Where("id = ? AND from_user_id = ? AND status = ?", id, uid, models.FriendRequestPending).
		Update("status", models.FriendRequestCancelled)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to cancel request", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "pending request not found", nil)
		return
	}
	utils.Success(c, "request cancelled", nil)
}

// friendIDsOf collects the other side of every friendship edge touching uid.
func friendIDsOf(uid uint) ([]uint, error) {
	var edges []models.Friendship
	if err := config.DB.
		Where("user_a_id = ? OR user_b_id = ?", uid, uid).
		Find(&edges).Error; err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(edges))
	for _, e := range edges {
		if e.UserAID == uid {
			ids = append(ids, e.UserBID)
		} else {
			ids = append(ids, e.UserAID)
		}
	}
	return ids, nil
}

func respondFriendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "request not found"})
	case errors.Is(err, errForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "friend operation failed", "error": err.Error()})
	}
}
