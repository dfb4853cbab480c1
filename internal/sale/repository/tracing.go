package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/okoval/bookstore/internal/sale/domain"
)

var tracer = otel.Tracer("sale-repository")

// GormSaleRepositoryWithTracing wraps GormSaleRepository with tracing on the
// ledger mutations
type GormSaleRepositoryWithTracing struct {
	*GormSaleRepository
}

// NewGormSaleRepositoryWithTracing creates a new repository with tracing
func NewGormSaleRepositoryWithTracing(db *gorm.DB) *GormSaleRepositoryWithTracing {
	return &GormSaleRepositoryWithTracing{
		GormSaleRepository: NewGormSaleRepository(db),
	}
}

// CreateSale with tracing
func (r *GormSaleRepositoryWithTracing) CreateSale(ctx context.Context, sale *domain.Sale) error {
	ctx, span := tracer.Start(ctx, "ledger.CreateSale",
		trace.WithAttributes(
			attribute.Int("sale.employee_id", int(sale.EmployeeID)),
			attribute.Int("sale.book_id", int(sale.BookID)),
			attribute.Int("sale.quantity_sold", sale.QuantitySold),
			attribute.Float64("sale.total_price", sale.TotalPrice),
		),
	)
	defer span.End()

	err := r.GormSaleRepository.CreateSale(ctx, sale)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("sale.id", int(sale.ID)))
	return nil
}

// ReverseSale with tracing
func (r *GormSaleRepositoryWithTracing) ReverseSale(ctx context.Context, saleID uint) (*domain.Sale, error) {
	ctx, span := tracer.Start(ctx, "ledger.ReverseSale",
		trace.WithAttributes(
			attribute.Int("sale.id", int(saleID)),
		),
	)
	defer span.End()

	sale, err := r.GormSaleRepository.ReverseSale(ctx, saleID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("sale.book_id", int(sale.BookID)),
		attribute.Int("sale.quantity_restored", sale.QuantitySold),
	)
	return sale, nil
}

// AmendSale with tracing
func (r *GormSaleRepositoryWithTracing) AmendSale(ctx context.Context, saleID uint, amendment domain.SaleAmendment) (*domain.Sale, error) {
	ctx, span := tracer.Start(ctx, "ledger.AmendSale",
		trace.WithAttributes(
			attribute.Int("sale.id", int(saleID)),
		),
	)
	defer span.End()

	sale, err := r.GormSaleRepository.AmendSale(ctx, saleID, amendment)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return sale, nil
}
