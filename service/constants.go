package service

const (
	MaxSimulationMonths    = 600 // 50 años
	MaxBisectionIterations = 100
	BisectionTolerance     = 1.0 // una unidad monetaria

	RetirementPeriodYears   = 25
	PostRetirementReturnCap = 8.0 // % anual, conservador

	// Modelo de fechas aproximado, sin calendario
	DaysPerMonth = 30
	DaysPerYear  = 365

	LastInstalmentDateLayout = "02-January-2006"
)

// Rangos aceptados en la frontera de cada calculadora (cerrados)
const (
	MinPeriodYears = 1
	MaxPeriodYears = 50

	MinExpectedReturns = 1.0
	MaxExpectedReturns = 30.0
	MaxGrowthInSavings = 20.0
	MaxInflation       = 20.0

	MaxDelayMonths = 120

	MinSWPReturns        = 2.0
	MaxSWPReturns        = 15.0
	MaxSWPYearlyIncrease = 20.0
	MaxSWPStartYears     = 30

	MinPresentAge     = 18
	MinRetirementAge  = 30
	MaxAge            = 100
	MaxLifeExpectancy = 120
	MaxKittyReturns   = 30.0

	MaxSingleAmountRate = 50.0
	MaxDiscountRate     = 20.0
	MaxAssetReturn      = 20.0
)
