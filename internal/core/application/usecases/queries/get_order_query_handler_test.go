package queries_test

import (
	"context"
	"testing"
	"time"

	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.OrderID, _ any) {}

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) seedOrder() *order.Order {
	laptopID, err := kernel.ProductIDFromString("LAPTOP-001")
	suite.Require().NoError(err)
	laptop, err := order.NewProduct(laptopID, "Laptop Gaming", decimal.RequireFromString("1200.00"))
	suite.Require().NoError(err)

	mouseID, err := kernel.ProductIDFromString("MOUSE-001")
	suite.Require().NoError(err)
	mouse, err := order.NewProduct(mouseID, "Mouse", decimal.RequireFromString("25.50"))
	suite.Require().NoError(err)

	o := order.NewOrder()
	suite.Require().NoError(o.AddProduct(laptop, 2))
	suite.Require().NoError(o.AddProduct(mouse, 1))
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder() {
	ctx := context.Background()
	seeded := suite.seedOrder()

	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(seeded.ID().String(), view.ID)
	suite.Equal(order.Pending.String(), view.Status)
	suite.Require().Len(view.Lines, 2)

	suite.Equal("LAPTOP-001", view.Lines[0].ProductID)
	suite.Equal("Laptop Gaming", view.Lines[0].ProductName)
	suite.Equal(2, view.Lines[0].Quantity)
	suite.True(view.Lines[0].UnitPrice.Equal(decimal.RequireFromString("1200.00")))
	suite.True(view.Lines[0].Total.Equal(decimal.RequireFromString("2400.00")))

	suite.Equal("MOUSE-001", view.Lines[1].ProductID)
	suite.True(view.Total.Equal(decimal.RequireFromString("2425.50")))
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_EmptyOrder() {
	ctx := context.Background()
	emptyOrder := order.NewOrder()
	suite.Require().NoError(suite.orderRepo.Add(ctx, emptyOrder))

	query, err := queries.NewGetOrderQuery(emptyOrder.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(view.Lines)
	suite.True(view.Total.IsZero())
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_LegacyProcesandoStatus() {
	ctx := context.Background()

	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO orders (id, status, created_at, updated_at) VALUES (?, 'PROCESANDO', now(), now())",
		"legacy-order-7",
	).Error)

	orderID, err := kernel.OrderIDFromString("legacy-order-7")
	suite.Require().NoError(err)
	query, err := queries.NewGetOrderQuery(orderID)
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(order.Pending.String(), view.Status)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder() {
	ctx := context.Background()

	query, err := queries.NewGetOrderQuery(kernel.NewOrderID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderQuery{})
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
