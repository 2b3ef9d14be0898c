package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/prsahoo/bank_ledger_app/internal/apperrors"
	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
	portssvc "github.com/prsahoo/bank_ledger_app/internal/core/ports/services"
	"github.com/prsahoo/bank_ledger_app/internal/dto"
	"github.com/prsahoo/bank_ledger_app/internal/handlers"
	"github.com/prsahoo/bank_ledger_app/internal/middleware"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, accountID string) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *AccountHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "bank-ledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()

	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockLedgerService = new(MockLedgerService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterAccountRoutes(v1, suite.mockLedgerService)
}

// do sends an authenticated JSON request and returns the recorder.
func (suite *AccountHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			suite.FailNow("Failed to encode request body", err.Error())
		}
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	userID := uuid.NewString()
	created := &domain.Account{
		AccountID:     uuid.NewString(),
		UserID:        userID,
		AccountNumber: "AC1234567890123",
		AccountType:   domain.DefaultAccountType,
		Balance:       decimal.NewFromInt(100),
		Status:        domain.StatusActive,
		OpenedAt:      time.Now(),
	}

	suite.mockLedgerService.On("CreateAccount", mock.Anything, mock.MatchedBy(func(r dto.CreateAccountRequest) bool {
		return r.UserID == userID && r.InitialDeposit != nil && r.InitialDeposit.Equal(decimal.NewFromInt(100))
	})).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", gin.H{"userId": userID, "initialDeposit": "100"})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CreateAccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.AccountID, resp.AccountID)
	suite.Equal(created.AccountNumber, resp.AccountNumber)
	suite.True(resp.Balance.Equal(created.Balance))
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_UserNotFound() {
	userID := uuid.NewString()
	suite.mockLedgerService.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(nil, fmt.Errorf("failed to resolve owning user: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", gin.H{"userId": userID})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error": "User not found"}`, w.Body.String())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_NegativeInitialDeposit() {
	suite.mockLedgerService.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(nil, fmt.Errorf("%w: initial deposit must not be negative", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", gin.H{"userId": uuid.NewString(), "initialDeposit": "-5"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error": "Initial deposit must not be negative"}`, w.Body.String())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingUserID() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", gin.H{"accountType": "Savings"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_Success() {
	account := &domain.Account{
		AccountID:     uuid.NewString(),
		AccountNumber: "AC9876543210987",
		AccountType:   domain.DefaultAccountType,
		Balance:       decimal.NewFromFloat(12.34),
		Status:        domain.StatusActive,
		OpenedAt:      time.Now(),
	}
	suite.mockLedgerService.On("GetAccountByID", mock.Anything, account.AccountID).Return(account, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/"+account.AccountID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(account.AccountID, resp.AccountID)
	suite.Equal(string(domain.StatusActive), resp.Status)
	suite.True(resp.Balance.Equal(account.Balance))
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()
	suite.mockLedgerService.On("GetAccountByID", mock.Anything, accountID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error": "Account not found"}`, w.Body.String())
}

func (suite *AccountHandlerTestSuite) TestDeposit_Success() {
	accountID := uuid.NewString()
	amount := decimal.NewFromFloat(50.25)
	newBalance := decimal.NewFromFloat(150.25)

	suite.mockLedgerService.On("Deposit", mock.Anything, accountID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(amount)
	})).Return(newBalance, nil).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/accounts/%s/deposit", accountID), gin.H{"amount": "50.25"})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(accountID, resp.AccountID)
	suite.True(resp.Balance.Equal(newBalance))
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestDeposit_NonPositiveAmountRejectedByBinding() {
	accountID := uuid.NewString()

	for _, amount := range []string{"0", "-10"} {
		w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/accounts/%s/deposit", accountID), gin.H{"amount": amount})

		suite.Equal(http.StatusBadRequest, w.Code)
		suite.JSONEq(`{"error": "Amount must be positive"}`, w.Body.String())
	}
	suite.mockLedgerService.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestWithdraw_Success() {
	accountID := uuid.NewString()
	newBalance := decimal.NewFromInt(70)

	suite.mockLedgerService.On("Withdraw", mock.Anything, accountID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(30))
	})).Return(newBalance, nil).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/accounts/%s/withdraw", accountID), gin.H{"amount": "30"})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(newBalance))
}

func (suite *AccountHandlerTestSuite) TestWithdraw_InsufficientFunds() {
	accountID := uuid.NewString()

	suite.mockLedgerService.On("Withdraw", mock.Anything, accountID, mock.AnythingOfType("decimal.Decimal")).
		Return(decimal.Zero, fmt.Errorf("%w: balance 10, requested 500", apperrors.ErrInsufficientFunds)).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/accounts/%s/withdraw", accountID), gin.H{"amount": "500"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error": "Insufficient funds"}`, w.Body.String())
}

func (suite *AccountHandlerTestSuite) TestWithdraw_AccountNotFound() {
	accountID := uuid.NewString()

	suite.mockLedgerService.On("Withdraw", mock.Anything, accountID, mock.AnythingOfType("decimal.Decimal")).
		Return(decimal.Zero, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/accounts/%s/withdraw", accountID), gin.H{"amount": "10"})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error": "Account not found"}`, w.Body.String())
}

func (suite *AccountHandlerTestSuite) TestListTransactions_Success() {
	accountID := uuid.NewString()
	records := []domain.TransactionRecord{
		{
			TransactionID: uuid.NewString(),
			ToAccountID:   &accountID,
			Amount:        decimal.NewFromInt(100),
			TxnType:       domain.Deposit,
			Description:   "Deposit via web",
			PostBalance:   decimal.NewFromInt(100),
			Status:        domain.TxnSuccess,
			CreatedAt:     time.Now().Add(-time.Hour),
		},
		{
			TransactionID: uuid.NewString(),
			FromAccountID: &accountID,
			Amount:        decimal.NewFromInt(40),
			TxnType:       domain.Withdrawal,
			Description:   "Withdrawal via web",
			PostBalance:   decimal.NewFromInt(60),
			Status:        domain.TxnSuccess,
			CreatedAt:     time.Now(),
		},
	}
	suite.mockLedgerService.On("ListTransactions", mock.Anything, accountID).Return(records, nil).Once()

	w := suite.do(http.MethodGet, fmt.Sprintf("/api/v1/accounts/%s/transactions", accountID), nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(accountID, resp.AccountID)
	suite.Require().Len(resp.Transactions, 2)
	suite.Equal(records[0].TransactionID, resp.Transactions[0].TransactionID)
	suite.Equal(string(domain.Withdrawal), resp.Transactions[1].TxnType)
	suite.True(resp.Transactions[1].PostBalance.Equal(decimal.NewFromInt(60)))
}

func (suite *AccountHandlerTestSuite) TestListTransactions_AccountNotFound() {
	accountID := uuid.NewString()
	suite.mockLedgerService.On("ListTransactions", mock.Anything, accountID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, fmt.Sprintf("/api/v1/accounts/%s/transactions", accountID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error": "Account not found"}`, w.Body.String())
}

func (suite *AccountHandlerTestSuite) TestMissingToken_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "GetAccountByID", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
