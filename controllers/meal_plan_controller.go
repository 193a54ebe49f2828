package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func CreateMealPlan(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var input services.MealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := services.CreateMealPlan(userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// ListMealPlans supports an optional ?from=YYYY-MM-DD&to=YYYY-MM-DD window.
func ListMealPlans(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var from, to *time.Time
	if f, t := c.Query("from"), c.Query("to"); f != "" && t != "" {
		loc := time.Now().Location()
		fromT, err := time.ParseInLocation("2006-01-02", f, loc)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid from date")
			return
		}
		toT, err := time.ParseInLocation("2006-01-02", t, loc)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid to date")
			return
		}
		if toT.Before(fromT) {
			respondError(c, http.StatusBadRequest, "`to` must be on/after `from`")
			return
		}
		toT = toT.AddDate(0, 0, 1) // inclusive end day
		from, to = &fromT, &toT
	}

	plans, err := services.ListMealPlans(userID, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func GetMealPlan(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	plan, err := services.GetMealPlan(userID, planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func UpdateMealPlan(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input services.MealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := services.UpdateMealPlan(userID, planID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func DeleteMealPlan(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteMealPlan(userID, planID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal plan deleted"})
}
