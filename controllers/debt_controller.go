// controllers/debt_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"borccu-api/config"
	"borccu-api/models"
	"borccu-api/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func clauseUpdateLock() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

type DebtCreateInput struct {
	CounterpartyID uint            `json:"counterparty_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Direction      string          `json:"direction" binding:"required"` // "borrowed" or "lent"
	Description    string          `json:"description"`
	GroupID        *uint           `json:"group_id"`
	PayDate        *time.Time      `json:"pay_date"`
}

// DebtCreate builds the two mirrored rows of a reported debt and inserts
// them in one transaction so the pair can never be half-written.
func DebtCreate(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	var in DebtCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	dir := service.DebtDirection(in.Direction)
	if dir != service.ActorBorrowed && dir != service.ActorLent {
		c.JSON(http.StatusBadRequest, gin.H{"message": "direction must be 'borrowed' or 'lent'"})
		return
	}

	fromActor, fromCounterparty, err := service.BuildDebtPair(uid, in.CounterpartyID, in.Amount, dir, in.Description, in.PayDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid debt", "error": err.Error()})
		return
	}

	var counterparty models.User
	if err := config.DB.Where("id = ? AND is_active = true", in.CounterpartyID).First(&counterparty).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "counterparty not found"})
		return
	}

	pairID := uuid.New()
	actorRow := debtFromPayload(pairID, fromActor, in.GroupID)
	counterpartyRow := debtFromPayload(pairID, fromCounterparty, in.GroupID)

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&actorRow).Error; err != nil {
			return err
		}
		if err := tx.Create(&counterpartyRow).Error; err != nil {
			return err
		}
		verb := "lent you"
		if dir == service.ActorBorrowed {
			verb = "borrowed from you"
		}
		notify(tx, in.CounterpartyID, models.NotifDebtCreated, "New debt",
			fmt.Sprintf("Someone %s %s", verb, in.Amount.StringFixed(2)),
			"debt", counterpartyRow.ID)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create debt", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "debt created",
		"data":    actorRow,
		"pair_id": pairID,
	})
}

func debtFromPayload(pairID uuid.UUID, p service.DebtPayload, groupID *uint) models.Debt {
	return models.Debt{
		PairID:           pairID,
		OwnerID:          p.OwnerID,
		CreditorID:       p.CreditorID,
		DebtorID:         p.DebtorID,
		AmountReceivable: p.AmountReceivable,
		AmountPayable:    p.AmountPayable,
		Description:      p.Description,
		GroupID:          groupID,
		PayDate:          p.PayDate,
	}
}

// DebtList returns the caller's own perspective rows, newest first, with the
// counterparty profile attached. Optional ?is_settled= filter.
func DebtList(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	var settledFilter *bool
	if s := c.Query("is_settled"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "is_settled must be a boolean"})
			return
		}
		settledFilter = &v
	}

	q := config.DB.Where("owner_id = ?", uid).Order("created_at DESC, id DESC")
	if settledFilter != nil {
		q = q.Where("is_settled = ?", *settledFilter)
	}

	var rows []models.Debt
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load debts", "error": err.Error()})
		return
	}

	// attach counterparty profiles in one query
	ids := make([]uint, 0, len(rows))
	for _, d := range rows {
		ids = append(ids, debtCounterparty(d, uid))
	}
	profiles := map[uint]models.User{}
	if len(ids) > 0 {
		var users []models.User
		if err := config.DB.Where("id IN ?", ids).Find(&users).Error; err == nil {
			for _, u := range users {
				profiles[u.ID] = u
			}
		}
	}

	type debtWithCounterparty struct {
		models.Debt
		Counterparty models.User `json:"counterparty"`
	}
	out := make([]debtWithCounterparty, 0, len(rows))
	for _, d := range rows {
		out = append(out, debtWithCounterparty{Debt: d, Counterparty: profiles[debtCounterparty(d, uid)]})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func debtCounterparty(d models.Debt, uid uint) uint {
	if d.CreditorID == uid {
		return d.DebtorID
	}
	return d.CreditorID
}

// DebtSummary computes the two headline numbers over open debts.
func DebtSummary(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	var rows []models.Debt
	if err := config.DB.
		Where("owner_id = ? AND is_settled = false", uid).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load debts", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": service.SummarizeBalances(uid, rows)})
}

// DebtSettle marks both rows of a pair settled. Settling an already settled
// debt is a no-op success.
func DebtSettle(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var d models.Debt
		if err := tx.Clauses(clauseUpdateLock()).First(&d, id).Error; err != nil {
			return err
		}
		if d.CreditorID != uid && d.DebtorID != uid {
			return errForbidden
		}
		if d.IsSettled {
			return nil // idempotent
		}
		return tx.Model(&models.Debt{}).
			Where("pair_id = ?", d.PairID).
			Updates(map[string]any{"is_settled": true, "updated_at": time.Now()}).Error
	})
	if err != nil {
		respondDebtError(c, err, "failed to settle debt")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "debt settled"})
}

type DebtUpdateInput struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	PayDate     *time.Time       `json:"pay_date,omitempty"`
}

// DebtUpdate edits a pair. Amount edits are applied to both rows, keeping
// the nonzero side of each row where it was.
func DebtUpdate(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	var in DebtUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}
	if in.Amount == nil && in.Description == nil && in.PayDate == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "nothing to update"})
		return
	}
	if in.Amount != nil && !in.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid amount", "error": service.ErrInvalidAmount.Error()})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var d models.Debt
		if err := tx.Clauses(clauseUpdateLock()).First(&d, id).Error; err != nil {
			return err
		}
		if d.CreditorID != uid && d.DebtorID != uid {
			return errForbidden
		}
		if d.IsSettled {
			return errors.New("debt already settled")
		}

		shared := map[string]any{"updated_at": time.Now()}
		if in.Description != nil {
			shared["description"] = *in.Description
		}
		if in.PayDate != nil {
			shared["pay_date"] = *in.PayDate
		}
		if err := tx.Model(&models.Debt{}).Where("pair_id = ?", d.PairID).Updates(shared).Error; err != nil {
			return err
		}

		if in.Amount != nil {
			// each row keeps the amount on its own nonzero side
			if err := tx.Model(&models.Debt{}).
				Where("pair_id = ? AND amount_receivable > 0", d.PairID).
				Update("amount_receivable", *in.Amount).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Debt{}).
				Where("pair_id = ? AND amount_payable > 0", d.PairID).
				Update("amount_payable", *in.Amount).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		respondDebtError(c, err, "failed to update debt")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "debt updated"})
}

// DebtDelete removes both rows of a pair.
func DebtDelete(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return
	}

	id, _ := strconv.Atoi(c.Param("id"))

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var d models.Debt
		if err := tx.Clauses(clauseUpdateLock()).First(&d, id).Error; err != nil {
			return err
		}
		if d.CreditorID != uid && d.DebtorID != uid {
			return errForbidden
		}
		return tx.Where("pair_id = ?", d.PairID).Delete(&models.Debt{}).Error
	})
	if err != nil {
		respondDebtError(c, err, "failed to delete debt")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "debt deleted"})
}

var errForbidden = errors.New("forbidden")

func respondDebtError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "debt not found"})
	case errors.Is(err, errForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": message, "error": err.Error()})
	}
}
