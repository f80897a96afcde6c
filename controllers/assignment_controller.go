package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"assignment-tracker/constants"
	"assignment-tracker/dto"
	"assignment-tracker/models"
	"assignment-tracker/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type IAssignmentController interface {
	Create(ctx *gin.Context)
	Submit(ctx *gin.Context)
	FindSubmissions(ctx *gin.Context)
}

type AssignmentController struct {
	service services.IAssignmentService
}

func NewAssignmentController(service services.IAssignmentService) IAssignmentController {
	return &AssignmentController{service: service}
}

func (c *AssignmentController) Create(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	teacherID := user.(*models.User).ID

	var input dto.CreateAssignmentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	newAssignment, err := c.service.Create(input, teacherID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDueDate) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidDueDate})
			return
		}
		log.Error().Err(err).Msg("create assignment failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": newAssignment})
}

func (c *AssignmentController) Submit(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	studentID := user.(*models.User).ID

	assignmentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.SubmitAssignmentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	_, err = c.service.Submit(uint(assignmentID), input, studentID)
	if err != nil {
		if errors.Is(err, services.ErrAssignmentNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrAssignmentNotFound})
			return
		}
		log.Error().Err(err).Msg("submit assignment failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Assignment submitted successfully"})
}

func (c *AssignmentController) FindSubmissions(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	teacherID := user.(*models.User).ID

	assignmentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	submissions, err := c.service.FindSubmissions(uint(assignmentID), teacherID)
	if err != nil {
		if errors.Is(err, services.ErrAssignmentNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrAssignmentNotFound})
			return
		}
		if errors.Is(err, services.ErrNotAssignmentOwner) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": constants.ErrNotOwner})
			return
		}
		log.Error().Err(err).Msg("list submissions failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	responses := make([]dto.SubmissionResponse, 0, len(*submissions))
	for _, submission := range *submissions {
		responses = append(responses, dto.SubmissionResponse{
			StudentID:   submission.StudentID,
			Content:     submission.Content,
			SubmittedAt: submission.SubmittedAt,
		})
	}
	ctx.JSON(http.StatusOK, responses)
}
