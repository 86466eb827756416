package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/otabekd/factoryops-go/internal/application/common"
	"github.com/otabekd/factoryops-go/internal/application/production/queries"
)

// OperationMiddleware wraps mediator dispatch and records execution duration
// and success/failure counts for every command and query. Request names are
// extracted via reflection with the package prefix stripped, so
// "*queries.CalculateProductionCostQuery" records as
// "CalculateProductionCostQuery".
func OperationMiddleware(collector *OperationMetricsCollector) common.Middleware {
	return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		name := requestName(request)
		start := time.Now()

		response, err := next(ctx, request)

		collector.RecordOperation(name, time.Since(start).Seconds(), err == nil)
		return response, err
	}
}

// CalculationMiddleware records calculation outcomes by inspecting responses
// flowing through the mediator. Only production cost responses are recorded;
// everything else passes through untouched.
func CalculationMiddleware(collector *CalculationMetricsCollector) common.Middleware {
	return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		response, err := next(ctx, request)
		if collector != nil && err == nil {
			if r, ok := response.(*queries.CalculateProductionCostResponse); ok && r.Calculation != nil {
				calc := r.Calculation
				collector.RecordCalculation(calc.ProductKey, calc.Breakdown.UnitCost, calc.CanProduce)
			}
		}
		return response, err
	}
}

func requestName(request common.Request) string {
	if request == nil {
		return "UnknownRequest"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if idx := strings.LastIndex(fullName, "."); idx >= 0 {
		return fullName[idx+1:]
	}
	return fullName
}
