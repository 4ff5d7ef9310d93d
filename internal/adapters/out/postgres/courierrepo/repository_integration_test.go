package courierrepo_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"candydelivery/internal/adapters/out/postgres/courierrepo"
	"candydelivery/internal/adapters/out/postgres/pgtest"
	"candydelivery/internal/core/domain/model/courier"
	"candydelivery/internal/core/domain/model/kernel"
	"candydelivery/internal/pkg/errs"
)

// CourierRepositoryIntegrationTestSuite provides integration tests for CourierRepository
// using PostgreSQL containers to verify database persistence behavior.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	database          *pgtest.Database
	courierRepository *courierrepo.GormCourierRepository
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.database.Truncate())

	suite.courierRepository = courierrepo.NewGormCourierRepository(suite.database.DB)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_ValidCourier_Success() {
	ctx := context.Background()
	c := suite.createCourier(2, courier.Foot, []int{22, 1, 12}, "11:35-14:05", "09:00-11:00")

	suite.Require().NoError(suite.courierRepository.Add(ctx, c))

	suite.assertCount("couriers", 1)
	suite.assertCount("courier_regions", 3)
	suite.assertCount("courier_working_hours", 2)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.courierRepository.Add(ctx, suite.createCourier(2, courier.Foot, []int{1}, "09:00-18:00")))

	err := suite.courierRepository.Add(ctx, suite.createCourier(2, courier.Car, []int{5}, "10:00-11:00"))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_NotConstructedCourier_Fails() {
	err := suite.courierRepository.Add(context.Background(), &courier.Courier{})

	suite.Require().ErrorIs(err, courier.ErrCourierIsNotConstructed)
	suite.assertCount("couriers", 0)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_RestoresOrderAndType() {
	ctx := context.Background()
	suite.Require().NoError(suite.courierRepository.Add(ctx,
		suite.createCourier(2, courier.Bike, []int{22, 1, 12}, "11:35-14:05", "09:00-11:00")))

	c, err := suite.courierRepository.Get(ctx, 2)

	suite.Require().NoError(err)
	suite.Equal(int64(2), c.ID())
	suite.Require().NotNil(c.Type())
	suite.Equal(courier.Bike, c.Type().Code())
	suite.True(c.Capacity().Equal(decimal.NewFromInt(15)))
	suite.Equal(5, c.Type().Coefficient())
	suite.Equal([]int{22, 1, 12}, c.Regions())
	suite.Equal([]string{"11:35-14:05", "09:00-11:00"}, kernel.FormatTimeWindows(c.WorkingHours()))
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_EmptyLists() {
	ctx := context.Background()
	suite.Require().NoError(suite.courierRepository.Add(ctx, suite.createCourier(3, courier.Car, []int{})))

	c, err := suite.courierRepository.Get(ctx, 3)

	suite.Require().NoError(err)
	suite.NotNil(c.Regions())
	suite.Empty(c.Regions())
	suite.Empty(c.WorkingHours())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.courierRepository.Get(context.Background(), 404)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_TypeRemovedFromCatalog() {
	ctx := context.Background()
	suite.Require().NoError(suite.courierRepository.Add(ctx, suite.createCourier(4, courier.Car, []int{1}, "09:00-18:00")))

	tx := suite.database.DB.Begin()
	defer tx.Rollback()
	suite.Require().NoError(tx.Exec(`DELETE FROM courier_types WHERE code = 'car'`).Error)

	c, err := courierrepo.NewGormCourierRepository(tx).Get(ctx, 4)

	suite.Require().NoError(err)
	suite.Nil(c.Type())
	suite.True(c.Capacity().IsZero())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_ReplacesProfile() {
	ctx := context.Background()
	c := suite.createCourier(2, courier.Car, []int{1, 2, 3}, "09:00-18:00")
	suite.Require().NoError(suite.courierRepository.Add(ctx, c))

	_, err := c.ChangeType(suite.catalogType(courier.Foot))
	suite.Require().NoError(err)
	_, err = c.ChangeRegions([]int{3, 7})
	suite.Require().NoError(err)
	suite.Require().NoError(c.ChangeWorkingHours(suite.windows("20:00-21:00")))

	suite.Require().NoError(suite.courierRepository.Update(ctx, c))

	stored, err := suite.courierRepository.Get(ctx, 2)
	suite.Require().NoError(err)
	suite.Equal(courier.Foot, stored.Type().Code())
	suite.Equal([]int{3, 7}, stored.Regions())
	suite.Equal([]string{"20:00-21:00"}, kernel.FormatTimeWindows(stored.WorkingHours()))
	suite.assertCount("courier_regions", 2)
	suite.assertCount("courier_working_hours", 1)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_UnknownCourier() {
	err := suite.courierRepository.Update(context.Background(), suite.createCourier(9, courier.Foot, []int{1}))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetForUpdate_LocksWithinTransaction() {
	ctx := context.Background()
	suite.Require().NoError(suite.courierRepository.Add(ctx, suite.createCourier(2, courier.Foot, []int{1}, "09:00-18:00")))

	tx := suite.database.DB.Begin()
	defer tx.Rollback()

	c, err := courierrepo.NewGormCourierRepository(tx).GetForUpdate(ctx, 2)
	suite.Require().NoError(err)
	suite.Equal(int64(2), c.ID())

	// a second transaction must not get the row while the first one holds it
	other := suite.database.DB.Begin()
	defer other.Rollback()
	suite.Require().NoError(other.Exec(`SET LOCAL lock_timeout = '200ms'`).Error)

	_, err = courierrepo.NewGormCourierRepository(other).GetForUpdate(ctx, 2)
	suite.Require().Error(err)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetForUpdate_NotFound() {
	_, err := suite.courierRepository.GetForUpdate(context.Background(), 404)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) catalogType(code courier.TypeCode) courier.Type {
	capacity := map[courier.TypeCode]int64{courier.Foot: 10, courier.Bike: 15, courier.Car: 50}
	coefficient := map[courier.TypeCode]int{courier.Foot: 2, courier.Bike: 5, courier.Car: 9}
	t, err := courier.NewType(code, decimal.NewFromInt(capacity[code]), coefficient[code])
	suite.Require().NoError(err)
	return t
}

func (suite *CourierRepositoryIntegrationTestSuite) windows(ss ...string) []kernel.TimeWindow {
	ws, err := kernel.ParseTimeWindows(ss)
	suite.Require().NoError(err)
	return ws
}

func (suite *CourierRepositoryIntegrationTestSuite) createCourier(
	id int64,
	code courier.TypeCode,
	regions []int,
	hours ...string,
) *courier.Courier {
	c, err := courier.NewCourier(id, suite.catalogType(code), regions, suite.windows(hours...))
	suite.Require().NoError(err)
	return c
}

func (suite *CourierRepositoryIntegrationTestSuite) assertCount(table string, expected int) {
	var count int64
	suite.Require().NoError(suite.database.DB.Table(table).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
