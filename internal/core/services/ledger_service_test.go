package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nkovalev/ledgerbook/internal/apperrors"
	"github.com/nkovalev/ledgerbook/internal/core/domain"
	portssvc "github.com/nkovalev/ledgerbook/internal/core/ports/services"
	"github.com/nkovalev/ledgerbook/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service portssvc.LedgerSvc
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.service = services.NewLedgerService(nil)
}

func (suite *LedgerServiceTestSuite) TestOpenAccount_Success() {
	accountID, err := suite.service.OpenAccount(suite.ctx, "Ivan", decimal.NewFromInt(100))

	suite.Require().NoError(err)
	suite.NotEmpty(accountID)
	_, parseErr := uuid.Parse(accountID)
	suite.NoError(parseErr)

	balance, err := suite.service.Balance(suite.ctx, accountID)
	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(100)))
}

func (suite *LedgerServiceTestSuite) TestOpenAccount_InvalidHolder() {
	accountID, err := suite.service.OpenAccount(suite.ctx, "  ", decimal.Zero)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidHolder)
	suite.Empty(accountID)
}

func (suite *LedgerServiceTestSuite) TestDepositAndWithdraw_Dispatch() {
	accountID, err := suite.service.OpenAccount(suite.ctx, "Ivan", decimal.NewFromInt(100))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.Deposit(suite.ctx, accountID, decimal.NewFromInt(50)))

	ok, err := suite.service.Withdraw(suite.ctx, accountID, decimal.NewFromInt(500))
	suite.Require().NoError(err)
	suite.False(ok)

	ok, err = suite.service.Withdraw(suite.ctx, accountID, decimal.NewFromInt(120))
	suite.Require().NoError(err)
	suite.True(ok)

	balance, err := suite.service.Balance(suite.ctx, accountID)
	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(30)))
}

func (suite *LedgerServiceTestSuite) TestUnknownAccountID() {
	missing := uuid.NewString()

	_, err := suite.service.Balance(suite.ctx, missing)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)

	err = suite.service.Deposit(suite.ctx, missing, decimal.NewFromInt(10))
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)

	_, err = suite.service.Withdraw(suite.ctx, missing, decimal.NewFromInt(10))
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)

	_, err = suite.service.History(suite.ctx, missing)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)

	_, err = suite.service.AvailableCredit(suite.ctx, missing)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
}

func (suite *LedgerServiceTestSuite) TestCreditAccount_EndToEnd() {
	accountID, err := suite.service.OpenCreditAccount(suite.ctx, "Petr", decimal.Zero, decimal.NewFromInt(300))
	suite.Require().NoError(err)

	ok, err := suite.service.Withdraw(suite.ctx, accountID, decimal.NewFromInt(100))
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.service.Withdraw(suite.ctx, accountID, decimal.NewFromInt(250))
	suite.Require().NoError(err)
	suite.False(ok)

	suite.Require().NoError(suite.service.Deposit(suite.ctx, accountID, decimal.NewFromInt(80)))

	balance, err := suite.service.Balance(suite.ctx, accountID)
	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(-20)))

	available, err := suite.service.AvailableCredit(suite.ctx, accountID)
	suite.Require().NoError(err)
	suite.True(available.Equal(decimal.NewFromInt(280)))

	history, err := suite.service.History(suite.ctx, accountID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 3)
	suite.Equal(domain.CreditUsed, history[0].CreditUsed)
	suite.Equal(domain.StatusFail, history[1].Status)
	suite.Equal(domain.CreditNotUsed, history[2].CreditUsed)
}

func (suite *LedgerServiceTestSuite) TestOpenCreditAccount_InvalidLimit() {
	_, err := suite.service.OpenCreditAccount(suite.ctx, "Petr", decimal.Zero, decimal.NewFromInt(-5))
	suite.ErrorIs(err, apperrors.ErrInvalidCreditLimit)
}

func (suite *LedgerServiceTestSuite) TestAvailableCredit_StandardAccount() {
	accountID, err := suite.service.OpenAccount(suite.ctx, "Ivan", decimal.NewFromInt(100))
	suite.Require().NoError(err)

	_, err = suite.service.AvailableCredit(suite.ctx, accountID)
	suite.ErrorIs(err, apperrors.ErrNoCreditFacility)
}

func (suite *LedgerServiceTestSuite) TestHistory_IsACopy() {
	accountID, err := suite.service.OpenAccount(suite.ctx, "Ivan", decimal.NewFromInt(100))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.Deposit(suite.ctx, accountID, decimal.NewFromInt(10)))

	first, err := suite.service.History(suite.ctx, accountID)
	suite.Require().NoError(err)
	suite.Require().Len(first, 1)
	first[0].Status = domain.StatusFail

	second, err := suite.service.History(suite.ctx, accountID)
	suite.Require().NoError(err)
	suite.Require().Len(second, 1)
	suite.Equal(domain.StatusSuccess, second[0].Status)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
