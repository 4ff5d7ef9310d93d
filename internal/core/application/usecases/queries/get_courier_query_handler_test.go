package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"candydelivery/internal/adapters/out/postgres/pgtest"
	"candydelivery/internal/core/application/usecases/queries"
	"candydelivery/internal/pkg/errs"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	database       *pgtest.Database
	courierHandler queries.GetCourierQueryHandler
	pendingHandler queries.GetCouriersWithPendingOrdersQueryHandler
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.courierHandler = queries.NewGetCourierQueryHandler(database.DB)
	suite.pendingHandler = queries.NewGetCouriersWithPendingOrdersQueryHandler(database.DB)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *QueryHandlersTestSuite) TestGetCourier_NotFound() {
	query, err := queries.NewGetCourierQuery(404)
	suite.Require().NoError(err)

	_, err = suite.courierHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetCourier_WithoutDeliveries() {
	suite.exec(`INSERT INTO couriers (id, courier_type) VALUES (2, 'foot')`)
	suite.exec(`INSERT INTO courier_regions (courier_id, position, region) VALUES (2, 0, 22), (2, 1, 1), (2, 2, 12)`)
	suite.exec(`INSERT INTO courier_working_hours (courier_id, position, start_minute, end_minute)
		VALUES (2, 0, 695, 845), (2, 1, 540, 660)`)

	query, err := queries.NewGetCourierQuery(2)
	suite.Require().NoError(err)

	profile, err := suite.courierHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), profile.CourierID)
	suite.Require().NotNil(profile.CourierType)
	suite.Equal("foot", *profile.CourierType)
	suite.Equal([]int{22, 1, 12}, profile.Regions)
	suite.Equal([]string{"11:35-14:05", "09:00-11:00"}, profile.WorkingHours)
	suite.Nil(profile.Rating)
	suite.True(profile.Earnings.IsZero())
}

func (suite *QueryHandlersTestSuite) TestGetCourier_RatingAndEarnings() {
	suite.exec(`INSERT INTO couriers (id, courier_type) VALUES (2, 'bike')`)
	suite.exec(`INSERT INTO courier_regions (courier_id, position, region) VALUES (2, 0, 1), (2, 1, 2)`)
	// region 1: 600s and 1200s, region 2: 1200s, the best region scores 900s
	suite.exec(`INSERT INTO orders (id, region, weight, status, courier_id, assign_time, complete_time, price) VALUES
		(1, 1, 1, 3, 2, '2021-01-10 10:00:00+00', '2021-01-10 10:10:00+00', 2500),
		(2, 1, 1, 3, 2, '2021-01-10 10:00:00+00', '2021-01-10 10:30:00+00', 2500),
		(3, 2, 1, 3, 2, '2021-01-10 10:00:00+00', '2021-01-10 10:20:00+00', 4500),
		(4, 2, 1, 2, 2, '2021-01-10 10:00:00+00', NULL, 0)`)
	suite.exec(`INSERT INTO order_delivery_hours (order_id, position, start_minute, end_minute) VALUES
		(1, 0, 540, 1080), (2, 0, 540, 1080), (3, 0, 540, 1080), (4, 0, 540, 1080)`)

	query, err := queries.NewGetCourierQuery(2)
	suite.Require().NoError(err)

	profile, err := suite.courierHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().NotNil(profile.Rating)
	suite.InDelta(3.75, *profile.Rating, 1e-9)
	suite.Equal("9500", profile.Earnings.String())
	suite.NotNil(profile.WorkingHours)
	suite.Empty(profile.WorkingHours)
}

func (suite *QueryHandlersTestSuite) TestGetCourier_TypeRemovedFromCatalog() {
	suite.exec(`INSERT INTO couriers (id, courier_type) VALUES (5, NULL)`)

	query, err := queries.NewGetCourierQuery(5)
	suite.Require().NoError(err)

	profile, err := suite.courierHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Nil(profile.CourierType)
	suite.Empty(profile.Regions)
}

func (suite *QueryHandlersTestSuite) TestGetCourier_InvalidQuery() {
	_, err := suite.courierHandler.Handle(context.Background(), queries.GetCourierQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetCourierQueryIsNotConstructed)
}

func (suite *QueryHandlersTestSuite) TestGetCouriersWithPendingOrders() {
	suite.exec(`INSERT INTO couriers (id, courier_type) VALUES (1, 'foot'), (2, 'car'), (3, 'bike')`)
	suite.exec(`INSERT INTO orders (id, region, weight, status, courier_id, assign_time, complete_time, price) VALUES
		(1, 1, 1, 2, 3, '2021-01-10 10:00:00+00', NULL, 0),
		(2, 1, 1, 2, 3, '2021-01-10 10:00:00+00', NULL, 0),
		(3, 1, 1, 2, 1, '2021-01-10 10:00:00+00', NULL, 0),
		(4, 1, 1, 3, 2, '2021-01-10 10:00:00+00', '2021-01-10 10:20:00+00', 4500),
		(5, 1, 1, 1, NULL, NULL, NULL, 0)`)

	ids, err := suite.pendingHandler.Handle(context.Background(), queries.NewGetCouriersWithPendingOrdersQuery())

	suite.Require().NoError(err)
	suite.Equal([]int64{1, 3}, ids)
}

func (suite *QueryHandlersTestSuite) TestGetCouriersWithPendingOrders_Empty() {
	ids, err := suite.pendingHandler.Handle(context.Background(), queries.NewGetCouriersWithPendingOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(ids)
	suite.Empty(ids)
}

func (suite *QueryHandlersTestSuite) exec(sql string) {
	suite.Require().NoError(suite.database.DB.Exec(sql).Error)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
