package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shelter-admin-api/internal/application/ports"
	domain "shelter-admin-api/internal/domain/medication"
	"shelter-admin-api/internal/interface/api/rest/dto/medication"
	"shelter-admin-api/internal/interface/api/rest/validator"
)

type MedicationController struct {
	medicationService ports.MedicationService
	logger            *zap.Logger
}

func NewMedicationController(
	r *gin.Engine,
	medicationService ports.MedicationService,
	logger *zap.Logger,
	authGate gin.HandlerFunc,
) *MedicationController {
	mc := &MedicationController{
		medicationService: medicationService,
		logger:            logger,
	}

	r.GET(RouteMedications, authGate, mc.GetMedicationsHandler)
	r.GET(RouteMedication, authGate, mc.GetMedicationHandler)
	r.POST(RouteMedications, authGate, mc.CreateMedicationHandler)
	r.PUT(RouteMedication, authGate, mc.UpdateMedicationHandler)
	r.DELETE(RouteMedication, authGate, mc.DeleteMedicationHandler)

	return mc
}

func (mc *MedicationController) GetMedicationsHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	ms, err := mc.medicationService.FindMedications(c.Request.Context(), page)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get medications"},
		)
		mc.logger.Error("FindMedications() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, medication.ResponseData{
		Data: medication.ToResponseMedications(ms),
	})
}

func (mc *MedicationController) GetMedicationHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("medication_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "medication_id must be a positive integer"},
		)
		return
	}

	m, err := mc.medicationService.FindMedicationByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a medication"},
		)
		mc.logger.Error("FindMedicationByID() error", zap.Error(err))
		return
	}

	if m == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "medication not found"},
		)
		return
	}

	c.JSON(http.StatusOK, medication.ToResponseMedication(*m))
}

func (mc *MedicationController) CreateMedicationHandler(c *gin.Context) {
	var req medication.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateMedication(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	m, err := mc.medicationService.CreateMedication(c.Request.Context(), medication.ToDomainMedication(req))
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a medication"},
		)
		mc.logger.Error("CreateMedication() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, medication.ToResponseMedication(*m))
}

func (mc *MedicationController) UpdateMedicationHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("medication_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "medication_id must be a positive integer"},
		)
		return
	}

	var req medication.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateMedication(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	mDomain := medication.ToDomainMedication(req)
	mDomain.ID = domain.ID(id)

	m, err := mc.medicationService.UpdateMedication(c.Request.Context(), mDomain)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a medication"},
		)
		mc.logger.Error("UpdateMedication() error", zap.Error(err))
		return
	}

	if m == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "medication not found"},
		)
		return
	}

	c.JSON(http.StatusOK, medication.ToResponseMedication(*m))
}

func (mc *MedicationController) DeleteMedicationHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("medication_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "medication_id must be a positive integer"},
		)
		return
	}

	deleted, err := mc.medicationService.DeleteMedication(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete medication"},
		)
		mc.logger.Error("DeleteMedication() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
