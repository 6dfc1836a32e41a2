package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandlerTestSuite verifies the order summary read model
// against a real PostgreSQL instance, writing through the repository and
// reading back through raw SQL.
type GetOrderSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
	handler   queries.GetOrderSummaryQueryHandler
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
	suite.handler = queries.NewGetOrderSummaryQueryHandler(db)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) persistOrder() *order.Order {
	ctx := context.Background()

	first, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "SKU-001",
		"Widget", decimal.NewFromInt(2), decimal.NewFromFloat(9.99),
		decimal.NewFromFloat(0.5))
	suite.Require().NoError(err)
	second, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "SKU-002",
		"Gadget", decimal.NewFromInt(1), decimal.NewFromFloat(24.50),
		decimal.NewFromFloat(1.2))
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		order.PriorityHigh, []*order.Item{first, second})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))
	return aggregate
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle() {
	aggregate := suite.persistOrder()

	query, err := queries.NewGetOrderSummaryQuery(aggregate.ID())
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(aggregate.Number(), summary.Number)
	suite.Equal("High", summary.Priority)
	suite.Equal("Created", summary.Status)
	suite.Require().Len(summary.Items, 2)
	suite.Equal("SKU-001", summary.Items[0].SKU)
	suite.Equal("SKU-002", summary.Items[1].SKU)
	suite.True(summary.Items[0].LineTotal.Equal(decimal.NewFromFloat(19.98)))
	suite.True(summary.TotalAmount.Equal(decimal.NewFromFloat(44.48)))
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_NotFound() {
	query, err := queries.NewGetOrderSummaryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetOrderSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderSummaryQueryHandlerTestSuite))
}
