// controllers/group_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"borccu-api/config"
	"borccu-api/models"
	"borccu-api/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroupCreateInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// GroupCreate inserts the group and its creator member (owed 0) together.
func GroupCreate(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	var in GroupCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	group := models.Group{
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   uid,
	}
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		owner := models.GroupMember{
			GroupID:    group.ID,
			UserID:     uid,
			AmountOwed: decimal.Zero,
			IsPaid:     true, // owner owes nothing into their own pool
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create group", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "group created", "data": group})
}

// GroupList returns every group the caller is a member of.
func GroupList(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	var groups []models.Group
	if err := config.DB.
		Joins("INNER JOIN group_members gm ON gm.group_id = groups.id").
		Where("gm.user_id = ?", uid).
		Preload("Members").
		Order("groups.created_at DESC").
		Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load groups", "error": err.Error()})
		return
	}

	type groupWithProgress struct {
		models.Group
		Progress service.GroupProgress `json:"progress"`
	}
	out := make([]groupWithProgress, 0, len(groups))
	for _, g := range groups {
		out = append(out, groupWithProgress{Group: g, Progress: service.Progress(g.Members)})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GroupDetail returns one group with members and recomputed progress.
func GroupDetail(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	group, err := loadGroupForMember(uint(id), uid)
	if err != nil {
		respondGroupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     group,
		"progress": service.Progress(group.Members),
	})
}

// GroupSplitPreview computes the equal per-person share for a total.
// GET /groups/split?total=120.50&participants=4
func GroupSplitPreview(c *gin.Context) {
	total, err := decimal.NewFromString(c.Query("total"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "total must be a decimal number"})
		return
	}
	participants, err := strconv.Atoi(c.Query("participants"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "participants must be an integer"})
		return
	}

	share, err := service.EqualSplit(total, participants)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "cannot split", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"per_person": share}})
}

type GroupMemberInput struct {
	UserID     uint            `json:"user_id" binding:"required"`
	AmountOwed decimal.Decimal `json:"amount_owed"`
}

type GroupAddMembersInput struct {
	Members []GroupMemberInput `json:"members" binding:"required"`
	// Total is the declared group total; when present, the entered shares
	// are reconciled against it. Confirm lets the caller proceed past a
	// mismatch warning.
	Total   *decimal.Decimal `json:"total,omitempty"`
	Confirm bool             `json:"confirm"`
}

// GroupAddMembers bulk-upserts member shares keyed by (group_id, user_id).
// A declared total off by more than 0.01 from the entered shares yields a
// 409 warning unless the caller confirms.
func GroupAddMembers(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	var in GroupAddMembersInput
	if err := c.ShouldBindJSON(&in); err != nil || len(in.Members) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	group, err := loadGroupForMember(uint(id), uid)
	if err != nil {
		respondGroupError(c, err)
		return
	}

	rows := make([]models.GroupMember, 0, len(in.Members))
	for _, m := range in.Members {
		rows = append(rows, models.GroupMember{
			GroupID:    group.ID,
			UserID:     m.UserID,
			AmountOwed: m.AmountOwed,
		})
	}
	if err := service.ValidateMemberShares(group.CreatedBy, rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid member shares", "error": err.Error()})
		return
	}

	if in.Total != nil {
		entered := decimal.Zero
		for _, m := range in.Members {
			entered = entered.Add(m.AmountOwed)
		}
		if err := service.ValidateShareTotal(entered, *in.Total); err != nil && !in.Confirm {
			c.JSON(http.StatusConflict, gin.H{
				"message": "share total mismatch, resend with confirm=true to proceed",
				"error":   err.Error(),
				"entered": entered,
				"total":   in.Total,
			})
			return
		}
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "group_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount_owed", "updated_at"}),
		}).Create(&rows).Error; err != nil {
			return err
		}
		for _, m := range in.Members {
			if m.UserID == uid {
				continue
			}
			notify(tx, m.UserID, models.NotifGroupAdded, "Added to group",
				fmt.Sprintf("You owe %s in %q", m.AmountOwed.StringFixed(2), group.Name),
				"group", group.ID)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to add members", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "members saved"})
}

type GroupMemberUpdateInput struct {
	AmountOwed *decimal.Decimal `json:"amount_owed,omitempty"`
	IsPaid     *bool            `json:"is_paid,omitempty"`
}

// GroupMemberUpdate edits a member share or flips its paid flag.
func GroupMemberUpdate(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	groupID, _ := strconv.Atoi(c.Param("id"))
	memberID, _ := strconv.Atoi(c.Param("memberID"))

	var in GroupMemberUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}
	if in.AmountOwed == nil && in.IsPaid == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "nothing to update"})
		return
	}
	group, err := loadGroupForMember(uint(groupID), uid)
	if err != nil {
		respondGroupError(c, err)
		return
	}

	var member models.GroupMember
	if err := config.DB.Where("id = ? AND group_id = ?", memberID, groupID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load member", "error": err.Error()})
		return
	}

	if in.AmountOwed != nil {
		check := member
		check.AmountOwed = *in.AmountOwed
		if err := service.ValidateMemberShares(group.CreatedBy, []models.GroupMember{check}); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid member share", "error": err.Error()})
			return
		}
	}

	updates := map[string]any{}
	if in.AmountOwed != nil {
		updates["amount_owed"] = *in.AmountOwed
	}
	if in.IsPaid != nil {
		updates["is_paid"] = *in.IsPaid
	}

	if err := config.DB.Model(&member).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update member", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "member updated"})
}

// GroupDelete removes a group and its members. Only the creator may delete,
// and only once every non-creator member has paid.
func GroupDelete(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var group models.Group
		if err := tx.Clauses(clauseUpdateLock()).Preload("Members").First(&group, id).Error; err != nil {
			return err
		}
		if group.CreatedBy != uid {
			return errForbidden
		}
		for _, m := range group.Members {
			if m.UserID != group.CreatedBy && !m.IsPaid {
				return errors.New("group still has unpaid members")
			}
		}
		if err := tx.Where("group_id = ?", group.ID).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
	if err != nil {
		respondGroupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "group deleted"})
}

// loadGroupForMember fetches a group with members and checks the caller
// belongs to it.
func loadGroupForMember(groupID, uid uint) (models.Group, error) {
	var group models.Group
	if err := config.DB.Preload("Members").First(&group, groupID).Error; err != nil {
		return models.Group{}, err
	}
	for _, m := range group.Members {
		if m.UserID == uid {
			return group, nil
		}
	}
	return models.Group{}, errForbidden
}

func respondGroupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "group not found"})
	case errors.Is(err, errForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "group operation failed", "error": err.Error()})
	}
}
