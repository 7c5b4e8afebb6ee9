package billing

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	billingRepo "salonhq/database/repository/billing"
	"salonhq/models"
	"salonhq/services/catalog"
	"salonhq/utils"
)

// DefaultBillingService is the production BillingService.
type DefaultBillingService struct {
	Repo    billingRepo.BillingRepository
	Catalog catalog.CatalogService
}

// CreateBill validates and stores a manually entered bill. Line items with a
// zero rate are filled in from the catalog's internal price when the service
// name resolves; item and bill totals are always recomputed server-side.
func (s *DefaultBillingService) CreateBill(ctx context.Context, bill models.Bill) (string, error) {
	if bill.ClientName == "" || bill.ClientContact == "" {
		return "", fmt.Errorf("bill requires a client name and contact")
	}
	if len(bill.Items) == 0 {
		return "", fmt.Errorf("bill requires at least one line item")
	}

	rates := s.secretRates(ctx)
	total := 0.0
	for i := range bill.Items {
		item := &bill.Items[i]
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		if item.Rate == 0 {
			item.Rate = rates[item.Service]
		}
		item.Total = item.Rate * float64(item.Quantity)
		total += item.Total
	}
	if bill.TotalAmount == 0 {
		bill.TotalAmount = total
	}
	if bill.Date == "" {
		bill.Date = time.Now().Format(utils.DateLayout)
	}
	return s.Repo.Create(ctx, bill)
}

func (s *DefaultBillingService) Get(ctx context.Context, id string) (*models.Bill, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBillingService) List(ctx context.Context) ([]models.Bill, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultBillingService) MarkPaid(ctx context.Context, id string) error {
	return s.Repo.UpdateStatus(ctx, id, models.BillStatusPaid)
}

// IssueForBooking turns a completed booking into a stored bill. The entered
// amount is what the client actually paid, so it wins over the sum of catalog
// rates; the per-service rates are informational lines on the printout.
func (s *DefaultBillingService) IssueForBooking(ctx context.Context, b *models.Booking, amount float64, paymentMode string) (*models.Bill, error) {
	names := b.ServiceNames()
	if len(names) == 0 {
		return nil, fmt.Errorf("booking %s has no services to bill", b.ID)
	}

	rates := s.secretRates(ctx)
	items := make([]models.BillItem, 0, len(names))
	for _, name := range names {
		rate := rates[name]
		items = append(items, models.BillItem{
			Service:  name,
			Rate:     rate,
			Quantity: 1,
			Total:    rate,
		})
	}

	bill := models.Bill{
		BookingID:     b.ID,
		ClientName:    b.Name,
		ClientContact: b.Phone,
		Staff:         b.CompletedBy,
		PaymentMode:   paymentMode,
		Items:         items,
		TotalAmount:   amount,
		Date:          b.Date,
		Status:        models.BillStatusPaid,
	}
	id, err := s.Repo.Create(ctx, bill)
	if err != nil {
		return nil, fmt.Errorf("failed to store bill for booking %s: %w", b.ID, err)
	}
	bill.ID = id

	utils.GetLogger().Info("issued bill for completed booking",
		zap.String("billID", id), zap.String("bookingID", b.ID), zap.Float64("amount", amount))
	return &bill, nil
}

// secretRates returns the catalog's internal price per service name. Billing
// still works with an empty map when the catalog is unreachable; rates simply
// come out as zero and the entered amount carries the bill.
func (s *DefaultBillingService) secretRates(ctx context.Context) map[string]float64 {
	rates := make(map[string]float64)
	if s.Catalog == nil {
		return rates
	}
	services, err := s.Catalog.List(ctx)
	if err != nil {
		utils.GetLogger().Warn("catalog unavailable while rating bill", zap.Error(err))
		return rates
	}
	for _, svc := range services {
		rates[svc.Name] = svc.SecretPrice
	}
	return rates
}
