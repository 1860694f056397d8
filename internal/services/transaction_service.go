package services

import (
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/models"
	"mentordash/internal/pagination"
)

// transactionService handles income/expense business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records a new income or expense entry.
func (s *transactionService) CreateTransaction(userID string, txType models.TransactionType, amount, category string, date time.Time) (*models.Transaction, error) {
	if amount == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "amount is required")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "category is required")
	}
	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "transaction type must be income or expense")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "date is required")
	}

	tx := &models.Transaction{
		UserID:   userID,
		Type:     txType,
		Amount:   amount,
		Category: category,
		Date:     date,
	}

	if err := s.db.Create(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}

	return tx, nil
}

// GetUserTransactions retrieves a paginated list sorted by date descending.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Ordered(page, "date DESC")).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteTransaction deletes a transaction.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	var tx models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		return apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	if err := s.db.Delete(&tx).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrRemoteWrite, err)
	}
	return nil
}

// GetSummary computes the net profit aggregate from the user's full
// transaction list. The result is derived on every call, never stored.
func (s *transactionService) GetSummary(userID string) (*TransactionSummary, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteRead, err)
	}

	summary := Summarize(transactions)
	return &summary, nil
}

// Summarize folds a transaction list into its income/expense totals.
// Income adds, expense subtracts; entries whose amount does not parse
// as a number are counted in Skipped and otherwise ignored.
func Summarize(transactions []models.Transaction) TransactionSummary {
	var summary TransactionSummary
	for _, tx := range transactions {
		amount, err := strconv.ParseFloat(tx.Amount, 64)
		if err != nil {
			summary.Skipped++
			continue
		}
		if tx.Type == models.TransactionTypeIncome {
			summary.Income += amount
			summary.NetProfit += amount
		} else {
			summary.Expenses += amount
			summary.NetProfit -= amount
		}
	}
	return summary
}
