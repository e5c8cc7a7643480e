package resources

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
	"github.com/tuananh6614/epueducation-sub000/internal/dto"
	"github.com/tuananh6614/epueducation-sub000/internal/service/ledgerservice"
	"github.com/tuananh6614/epueducation-sub000/internal/service/resourceservice"
	"github.com/tuananh6614/epueducation-sub000/pkg/auth"
	"github.com/tuananh6614/epueducation-sub000/pkg/utils"
	"github.com/tuananh6614/epueducation-sub000/pkg/validate"
)

const maxUploadSize = 32 << 20

type ResourceService interface {
	CreateResource(ctx context.Context, resource *domain.Resource, file io.Reader, originalName string) (*domain.Resource, error)
	GetResources(ctx context.Context) ([]domain.Resource, error)
	GetResource(ctx context.Context, id int) (*domain.Resource, error)
	Download(ctx context.Context, userID, resourceID int) (string, error)
}

type LedgerService interface {
	Purchase(ctx context.Context, userID, resourceID int) (float64, error)
	RequestDeposit(ctx context.Context, userID int, amount float64, externalRef string, metadata []byte) (*domain.Transaction, float64, error)
	VerifyDeposit(ctx context.Context, username string, amount float64, externalRef string, success bool) (float64, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type ResourceHandler struct {
	resourceService ResourceService
	ledgerService   LedgerService
}

func New(resourceService ResourceService, ledgerService LedgerService) *ResourceHandler {
	return &ResourceHandler{
		resourceService: resourceService,
		ledgerService:   ledgerService,
	}
}

// Upload godoc
//
//	@Summary		Upload a new resource
//	@Description	Upload a purchasable document with its price
//	@Tags			Resources
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Document file"
//	@Param			title	formData	string	true	"Title"
//	@Param			price	formData	number	true	"Price"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid upload"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/resources [post]
func (h *ResourceHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Document file is required")
		return
	}
	defer file.Close()

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid price")
		return
	}

	resource := &domain.Resource{
		AuthorID:     userID,
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		ResourceType: r.FormValue("resource_type"),
		Price:        price,
	}
	if resource.ResourceType == "" {
		resource.ResourceType = "document"
	}

	created, err := h.resourceService.CreateResource(r.Context(), resource, file, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, resourceservice.ErrEmptyTitle), errors.Is(err, resourceservice.ErrInvalidPrice):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResourceDTO(created))
}

// List godoc
//
//	@Summary	List resources
//	@Tags		Resources
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/resources [get]
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	resources, err := h.resourceService.GetResources(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ResourceDTO, len(resources))
	for i, res := range resources {
		response[i] = toResourceDTO(&res)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary	Get one resource
//	@Tags		Resources
//	@Produce	json
//	@Param		id	path		int	true	"Resource ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Resource not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/resources/{id} [get]
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	resourceID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid resource id")
		return
	}

	resource, err := h.resourceService.GetResource(r.Context(), resourceID)
	if err != nil {
		if errors.Is(err, resourceservice.ErrResourceNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResourceDTO(resource))
}

// Download godoc
//
//	@Summary		Download a purchased resource
//	@Description	Stream the document file; requires authorship or a prior purchase
//	@Tags			Resources
//	@Security		BearerAuth
//	@Produce		octet-stream
//	@Param			id	path	int	true	"Resource ID"
//	@Success		200
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Resource not purchased"
//	@Failure		404	{object}	utils.Response	"Resource not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/resources/{id}/download [get]
func (h *ResourceHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	resourceID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid resource id")
		return
	}

	path, err := h.resourceService.Download(r.Context(), userID, resourceID)
	if err != nil {
		switch {
		case errors.Is(err, resourceservice.ErrResourceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, resourceservice.ErrNotPurchased):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	http.ServeFile(w, r, path)
}

// Purchase godoc
//
//	@Summary		Purchase a resource
//	@Description	Debit the resource price from the user's balance and grant access
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Resource ID"
//	@Success		200	{object}	utils.Response	"New balance"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		404	{object}	utils.Response	"Resource not found"
//	@Failure		409	{object}	utils.Response	"Resource already purchased"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/resources/{id}/purchase [post]
func (h *ResourceHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	resourceID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid resource id")
		return
	}

	newBalance, err := h.ledgerService.Purchase(r.Context(), userID, resourceID)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrResourceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ledgerservice.ErrAlreadyPurchased):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{NewBalance: newBalance})
}

// Deposit godoc
//
//	@Summary		Request a balance deposit
//	@Description	Record a pending deposit; the balance is credited after verification
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid deposit request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/resources/deposit [post]
func (h *ResourceHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.BankInfo.CardNumber != "" && !validate.IsCardNumber(req.BankInfo.CardNumber) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid card number")
		return
	}

	metadata, err := json.Marshal(req.BankInfo)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bank info")
		return
	}

	transaction, balance, err := h.ledgerService.RequestDeposit(r.Context(), userID, req.Amount, req.TransactionID, metadata)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidAmount), errors.Is(err, ledgerservice.ErrMissingExternalRef):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositResponseDTO{
		TransactionID:  transaction.ID,
		CurrentBalance: balance,
	})
}

// VerifyDeposit godoc
//
//	@Summary		Verify a deposit (admin)
//	@Description	Resolve a pending deposit; success credits the user's balance exactly once per reference
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyDepositRequestDTO	true	"Verification payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid verification request"
//	@Failure		403		{object}	utils.Response	"Admin privilege required"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		409		{object}	utils.Response	"Deposit reference already credited"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/resources/verify-deposit [post]
func (h *ResourceHandler) VerifyDeposit(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status != "success" && req.Status != "failed" {
		utils.RespondWithError(w, http.StatusBadRequest, "Status must be success or failed")
		return
	}

	newBalance, err := h.ledgerService.VerifyDeposit(r.Context(), req.Username, req.Amount, req.TransactionID, req.Status == "success")
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidAmount), errors.Is(err, ledgerservice.ErrMissingExternalRef):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ledgerservice.ErrDepositReplayed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyDepositResponseDTO{NewBalance: newBalance})
}

// Transactions godoc
//
//	@Summary	Get transaction history
//	@Tags		Ledger
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/resources/transactions [get]
func (h *ResourceHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.ledgerService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.TransactionDTO{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Type:        tx.Type,
			Status:      tx.Status,
			RelatedID:   tx.RelatedID,
			ExternalRef: tx.ExternalRef,
			CreatedAt:   tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResourceDTO(res *domain.Resource) dto.ResourceDTO {
	return dto.ResourceDTO{
		ID:            res.ID,
		AuthorID:      res.AuthorID,
		Title:         res.Title,
		Description:   res.Description,
		Thumbnail:     res.Thumbnail,
		ResourceType:  res.ResourceType,
		Price:         res.Price,
		DownloadCount: res.DownloadCount,
		CreatedAt:     res.CreatedAt,
	}
}
