package controllers

import (
	"github.com/Rahat-404/MadrasaServer/config"
	"github.com/Rahat-404/MadrasaServer/models"
	"github.com/Rahat-404/MadrasaServer/utils"
	"github.com/gin-gonic/gin"
)

// A guardian may submit at most this many applications per phone per hour
const admissionHourlyLimit = 3

type submitAdmissionRequest struct {
	StudentName    string `json:"student_name"`
	FatherName     string `json:"father_name"`
	MotherName     string `json:"mother_name"`
	DateOfBirth    string `json:"date_of_birth"`
	GuardianPhone  string `json:"guardian_phone"`
	Address        string `json:"address"`
	ClassApplied   string `json:"class_applied"`
	PreviousSchool string `json:"previous_school"`
}

// SubmitAdmission accepts an admission application from the public site.
// Submissions are rate limited per guardian phone through a durable counter,
// so the limit holds across instances.
//
// POST /v1/admissions
func SubmitAdmission(c *gin.Context) {
	utils.LogInfo("SubmitAdmission called")

	var req submitAdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid admission body: %v", err)
		utils.BadRequest(c, utils.MsgRequiredFields, err.Error())
		return
	}

	if !utils.ValidatePersonName(req.StudentName) {
		utils.LogError("Invalid student name: %q", req.StudentName)
		utils.BadRequest(c, utils.MsgInvalidName, gin.H{"field": "student_name"})
		return
	}
	if !utils.ValidatePersonName(req.FatherName) {
		utils.LogError("Invalid father name: %q", req.FatherName)
		utils.BadRequest(c, utils.MsgInvalidName, gin.H{"field": "father_name"})
		return
	}
	if !utils.ValidateBDPhone(req.GuardianPhone) {
		utils.LogError("Invalid guardian phone: %q", req.GuardianPhone)
		utils.BadRequest(c, utils.MsgInvalidPhone, nil)
		return
	}
	if req.ClassApplied == "" {
		utils.LogError("Admission missing class_applied")
		utils.BadRequest(c, utils.MsgRequiredFields, gin.H{"field": "class_applied"})
		return
	}

	exceeded, err := utils.RateLimitExceeded(config.DB, "admission", req.GuardianPhone, admissionHourlyLimit)
	if err != nil {
		utils.LogError("Rate limit check failed for %s: %v", req.GuardianPhone, err)
		utils.InternalServerError(c, "Failed to process application", err.Error())
		return
	}
	if exceeded {
		utils.LogError("Admission rate limit exceeded for %s", req.GuardianPhone)
		utils.TooManyRequests(c, utils.MsgRateLimited)
		return
	}

	application := models.AdmissionApplication{
		StudentName:    req.StudentName,
		FatherName:     req.FatherName,
		MotherName:     req.MotherName,
		DateOfBirth:    req.DateOfBirth,
		GuardianPhone:  utils.NormalizePhone(req.GuardianPhone),
		Address:        req.Address,
		ClassApplied:   req.ClassApplied,
		PreviousSchool: req.PreviousSchool,
		Status:         "submitted",
	}
	if err := config.DB.Create(&application).Error; err != nil {
		utils.LogError("Failed to create admission application: %v", err)
		utils.InternalServerError(c, "Failed to record application", err.Error())
		return
	}

	utils.LogInfo("Admission application %d recorded for %s (class %s)",
		application.ID, application.StudentName, application.ClassApplied)
	utils.Created(c, "ভর্তির আবেদন গ্রহণ করা হয়েছে", gin.H{
		"application_id": application.ID,
		"student_name":   application.StudentName,
		"class_applied":  application.ClassApplied,
		"status":         application.Status,
	})
}
