package handler

import (
	"strconv"

	"github.com/akshaymhatre/receiptly-api/internal/application/service"
	"github.com/akshaymhatre/receiptly-api/internal/domain/entity"
	"github.com/akshaymhatre/receiptly-api/internal/presentation/http/dto/request"
	"github.com/akshaymhatre/receiptly-api/internal/presentation/http/dto/response"
	"github.com/akshaymhatre/receiptly-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CustomerHandler handles customer directory HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
	engine          *service.SuggestionEngine
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService, engine *service.SuggestionEngine) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, engine: engine}
}

// List handles listing customers with page-based pagination
func (h *CustomerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	search := c.Query("search")

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Suggest handles autocomplete lookups for the customer-name field.
// Candidates come back in source-list order; an empty query yields an
// empty candidate list.
func (h *CustomerHandler) Suggest(c *gin.Context) {
	query := c.Query("q")

	candidates, err := h.engine.Candidates(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	if candidates == nil {
		candidates = []entity.Customer{}
	}

	response.OK(c, "Suggestions retrieved successfully", gin.H{
		"candidates": candidates,
		"visible":    query != "",
	})
}

// Create handles adding a customer to the directory
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}
