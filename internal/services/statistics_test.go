package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

// StatisticsTestSuite defines the test suite for the statistical primitives
type StatisticsTestSuite struct {
	suite.Suite
}

// TestStatisticsSuite runs the test suite
func TestStatisticsSuite(t *testing.T) {
	suite.Run(t, new(StatisticsTestSuite))
}

func (s *StatisticsTestSuite) TestMean_EmptyInput() {
	s.Equal(0.0, Mean(nil))
	s.Equal(0.0, Mean([]float64{}))
}

func (s *StatisticsTestSuite) TestMean_Values() {
	s.Equal(50.0, Mean([]float64{50}))
	s.Equal(30.0, Mean([]float64{10, 20, 60}))
	s.InDelta(33.333, Mean([]float64{10, 20, 70}), 0.001)
}

func (s *StatisticsTestSuite) TestStdDev_FewerThanTwoSamples() {
	s.Equal(0.0, StdDev(nil))
	s.Equal(0.0, StdDev([]float64{42}))
}

func (s *StatisticsTestSuite) TestStdDev_PopulationFormula() {
	// Population (not sample) standard deviation: sqrt(sum((x-mean)^2)/n)
	s.InDelta(2.0, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
	s.Equal(0.0, StdDev([]float64{5, 5, 5, 5}))
}

func (s *StatisticsTestSuite) TestStdDevWithMean_MatchesStdDev() {
	xs := []float64{12.5, 40, 33.3, 18}
	s.Equal(StdDev(xs), StdDevWithMean(xs, Mean(xs)))
}

func (s *StatisticsTestSuite) TestMonthOverMonth_ZeroPrevious() {
	s.Equal(0.0, MonthOverMonth(100, 0))
	s.Equal(0.0, MonthOverMonth(0, 0))
}

func (s *StatisticsTestSuite) TestMonthOverMonth_NonFiniteInputs() {
	s.Equal(0.0, MonthOverMonth(math.NaN(), 100))
	s.Equal(0.0, MonthOverMonth(100, math.NaN()))
	s.Equal(0.0, MonthOverMonth(math.Inf(1), 100))
	s.Equal(0.0, MonthOverMonth(100, math.Inf(1)))
	s.Equal(0.0, MonthOverMonth(100, math.Inf(-1)))
}

func (s *StatisticsTestSuite) TestMonthOverMonth_Percentages() {
	s.InDelta(50.0, MonthOverMonth(150, 100), 1e-9)
	s.InDelta(-25.0, MonthOverMonth(75, 100), 1e-9)
	s.InDelta(41.176, MonthOverMonth(480, 340), 0.001)
	s.Equal(0.0, MonthOverMonth(100, 100))
}

func (s *StatisticsTestSuite) TestIsOutlier_ZeroStdDev() {
	// A constant series has no outliers regardless of the value.
	s.False(IsOutlier(1000000, 50, 0, 2))
}

func (s *StatisticsTestSuite) TestIsOutlier_StrictThreshold() {
	// mean=50, sd=10, threshold=2: the boundary at 70 is not an outlier.
	s.False(IsOutlier(70, 50, 10, 2))
	s.True(IsOutlier(70.01, 50, 10, 2))
	s.True(IsOutlier(29.99, 50, 10, 2))
	s.False(IsOutlier(30, 50, 10, 2))
	s.False(IsOutlier(50, 50, 10, 2))
}
