package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/orderman/orderman-api/services"
)

// CustomerResponse is the public view of a customer.
// Phone and banking details are deliberately left out.
type CustomerResponse struct {
	CustomerID uint   `json:"customer_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Role       string `json:"role"`
}

// CustomerController serves customer lookups
type CustomerController struct {
	service services.CustomerService
	logger  *slog.Logger
}

// NewCustomerController creates a controller backed by the given lookup service
func NewCustomerController(service services.CustomerService, logger *slog.Logger) *CustomerController {
	return &CustomerController{service: service, logger: logger}
}

// GetCustomer handles GET /customers/:id
func (ctl *CustomerController) GetCustomer(c *gin.Context) {
	// Only positive integer ids can name a customer; anything else is a miss
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	customer, found, err := ctl.service.GetCustomerByID(c.Request.Context(), uint(id))
	if err != nil {
		ctl.logger.Error("customer.lookup_failed", "customer_id", id, "error", err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, CustomerResponse{
		CustomerID: customer.ID,
		Name:       customer.Name,
		Address:    customer.Address,
		Role:       string(customer.Role),
	})
}
