package bill

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"Gastos-API/domain"
	"Gastos-API/entities"
	"Gastos-API/internal/utils/storage"
	"Gastos-API/pkg/expense"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	// BillService runs the extraction pipeline: model call, schema check,
	// transactional persistence of source + expense (+ line items).
	BillService interface {
		ProcessText(ctx context.Context, req domain.ProcessTextRequest, userID string) (domain.ProcessBillResponse, error)
		ProcessPhoto(ctx context.Context, file *multipart.FileHeader, userID string) (domain.ProcessBillResponse, error)
	}

	billService struct {
		extractor         Extractor
		schemaValidator   *validator.Validate
		expenseRepository expense.ExpenseRepository
		s3                storage.AwsS3
		log               *zap.Logger
	}
)

func NewBillService(extractor Extractor, expenseRepository expense.ExpenseRepository, s3 storage.AwsS3, log *zap.Logger) BillService {
	return &billService{
		extractor:         extractor,
		schemaValidator:   NewSchemaValidator(),
		expenseRepository: expenseRepository,
		s3:                s3,
		log:               log,
	}
}

func (s *billService) ProcessText(ctx context.Context, req domain.ProcessTextRequest, userID string) (domain.ProcessBillResponse, error) {
	result, err := s.extractor.ExtractFromText(ctx, req.Message)
	if err != nil {
		s.log.Error("text extraction failed", zap.Error(err))
		return domain.ProcessBillResponse{}, err
	}

	return s.saveExtraction(ctx, result, userID, domain.SourceKindMessage, "Registro por texto", "")
}

func (s *billService) ProcessPhoto(ctx context.Context, file *multipart.FileHeader, userID string) (domain.ProcessBillResponse, error) {
	src, err := file.Open()
	if err != nil {
		return domain.ProcessBillResponse{}, err
	}
	defer src.Close()

	imageData, err := io.ReadAll(src)
	if err != nil {
		return domain.ProcessBillResponse{}, err
	}

	// Upload is best-effort: a storage failure leaves the source without a
	// file reference but does not reject the bill.
	fileURL := ""
	fileName := fmt.Sprintf("bill-%s", uuid.New().String())
	if objectKey, err := s.s3.UploadFile(fileName, file, "bills", storage.AllowImage...); err != nil {
		s.log.Warn("bill photo upload failed", zap.Error(err))
	} else {
		fileURL = s.s3.GetPublicLinkKey(objectKey)
	}

	result, err := s.extractor.ExtractFromImage(ctx, imageData, file.Header.Get("Content-Type"))
	if err != nil {
		s.log.Error("image extraction failed", zap.Error(err))
		return domain.ProcessBillResponse{}, err
	}

	return s.saveExtraction(ctx, result, userID, domain.SourceKindImage, "Factura subida", fileURL)
}

func (s *billService) saveExtraction(ctx context.Context, result domain.ExtractionResult, userID, kind, sourceDesc, fileURL string) (domain.ProcessBillResponse, error) {
	if violations := ValidateExtraction(s.schemaValidator, result); len(violations) > 0 {
		return domain.ProcessBillResponse{}, &domain.ExtractionValidationError{Violations: violations}
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProcessBillResponse{}, domain.ErrParseUUID
	}

	now := time.Now()
	date := now
	if result.Date != nil && *result.Date != "" {
		if parsed, err := time.Parse(time.RFC3339, *result.Date); err == nil {
			date = parsed
		}
	}

	// The model may omit the category; both submission routes default to OTHER.
	category := result.Category
	if category == nil {
		other := domain.CategoryOther
		category = &other
	}

	vendor := ""
	if result.Vendor != nil {
		vendor = *result.Vendor
	}

	source := &entities.Source{
		ID:          uuid.New(),
		Kind:        kind,
		Description: sourceDesc,
		ReceivedAt:  now,
		FileURL:     fileURL,
	}

	exp := &entities.Expense{
		ID:          uuid.New(),
		UserID:      userUUID,
		Vendor:      vendor,
		Description: result.Description,
		Date:        date,
		Total:       result.Total,
		Currency:    result.Currency,
		ExpenseType: result.Type,
		Category:    category,
	}

	var details []*entities.InvoiceDetail
	if result.Type == domain.ExpenseTypeInvoice {
		for _, item := range result.Details {
			details = append(details, &entities.InvoiceDetail{
				ID:        uuid.New(),
				Product:   item.Product,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}
	}

	if err := s.expenseRepository.CreateExpenseWithSource(ctx, source, exp, details); err != nil {
		s.log.Error("failed to persist extracted expense", zap.Error(err))
		return domain.ProcessBillResponse{}, err
	}

	responseDetails := make([]domain.ExtractionDetail, 0, len(details))
	if result.Type == domain.ExpenseTypeInvoice {
		responseDetails = append(responseDetails, result.Details...)
	}

	return domain.ProcessBillResponse{
		ID:          exp.ID.String(),
		Description: exp.Description,
		Total:       exp.Total,
		Currency:    exp.Currency,
		Type:        exp.ExpenseType,
		Category:    exp.Category,
		Vendor:      result.Vendor,
		Details:     responseDetails,
	}, nil
}
