package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Arnav-791/Attendence-calculator/internal/dto"
	"github.com/Arnav-791/Attendence-calculator/internal/service"
	"github.com/Arnav-791/Attendence-calculator/pkg/response"
)

// SubjectHandler serves the subject catalogue endpoints.
type SubjectHandler struct {
	subjectSvc service.SubjectService
}

// NewSubjectHandler creates a SubjectHandler.
func NewSubjectHandler(subjectSvc service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectSvc: subjectSvc}
}

// ListSubjects
// GET /api/v1/subjects
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.subjectSvc.List()
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"list": subjects})
}

// CreateSubject
// POST /api/v1/subjects
func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "invalid request body")
		return
	}

	subject, err := h.subjectSvc.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, subject)
}

// GetSubject
// GET /api/v1/subjects/:code
func (h *SubjectHandler) GetSubject(c *gin.Context) {
	subject, err := h.subjectSvc.Get(c.Param("code"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, subject)
}

// DeleteSubject
// DELETE /api/v1/subjects/:code
func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	if err := h.subjectSvc.Delete(c.Param("code")); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// SetInitialAttendance
// PUT /api/v1/subjects/:code/initial-attendance
func (h *SubjectHandler) SetInitialAttendance(c *gin.Context) {
	var req dto.SetInitialAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "invalid request body")
		return
	}

	subject, err := h.subjectSvc.SetInitialAttendance(c.Param("code"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, subject)
}
