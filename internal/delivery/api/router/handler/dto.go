package handler

import (
	"time"

	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/domain/money"
	"bookkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type userResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	BusinessName string    `json:"businessName"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newUserResponse(u *entity.User) *userResponse {
	return &userResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		BusinessName: u.BusinessName,
		CreatedAt:    u.CreatedAt,
	}
}

type authResponse struct {
	User        *userResponse `json:"user"`
	AccessToken string        `json:"accessToken"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	Created     bool          `json:"created"`
}

type transactionResponse struct {
	ID          uuid.UUID              `json:"id"`
	Kind        entity.TransactionKind `json:"kind"`
	Amount      money.Amount           `json:"amount"`
	Description string                 `json:"description"`
	OccurredAt  time.Time              `json:"occurredAt"`
	CustomerID  *uuid.UUID             `json:"customerId"`
	CategoryID  *uuid.UUID             `json:"categoryId"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

func newTransactionResponse(tx *entity.Transaction) *transactionResponse {
	return &transactionResponse{
		ID:          tx.ID,
		Kind:        tx.Kind,
		Amount:      tx.Amount,
		Description: tx.Description,
		OccurredAt:  tx.OccurredAt,
		CustomerID:  tx.CustomerID,
		CategoryID:  tx.CategoryID,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

type customerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newCustomerResponse(c *entity.Customer) *customerResponse {
	return &customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type categoryResponse struct {
	ID    uuid.UUID              `json:"id"`
	Name  string                 `json:"name"`
	Kind  entity.TransactionKind `json:"kind"`
	Color string                 `json:"color"`
}

func newCategoryResponse(c *entity.TransactionCategory) *categoryResponse {
	return &categoryResponse{ID: c.ID, Name: c.Name, Kind: c.Kind, Color: c.Color}
}

type hppCalculationResponse struct {
	ID              *uuid.UUID   `json:"id,omitempty"`
	ProductName     string       `json:"productName"`
	RawMaterialCost money.Amount `json:"rawMaterialCost"`
	LaborCost       money.Amount `json:"laborCost"`
	OverheadCost    money.Amount `json:"overheadCost"`
	TotalUnits      int64        `json:"totalUnits"`
	TotalHPP        money.Amount `json:"totalHpp"`
	HppPerUnit      money.Amount `json:"hppPerUnit"`
	CreatedAt       *time.Time   `json:"createdAt,omitempty"`
}

// newHppCalculationResponse omits the identity of previews, which are never stored.
func newHppCalculationResponse(calc *entity.HppCalculation) *hppCalculationResponse {
	out := &hppCalculationResponse{
		ProductName:     calc.ProductName,
		RawMaterialCost: calc.RawMaterialCost,
		LaborCost:       calc.LaborCost,
		OverheadCost:    calc.OverheadCost,
		TotalUnits:      calc.TotalUnits,
		TotalHPP:        calc.TotalHPP,
		HppPerUnit:      calc.HppPerUnit,
	}
	if calc.ID != uuid.Nil {
		id, createdAt := calc.ID, calc.CreatedAt
		out.ID = &id
		out.CreatedAt = &createdAt
	}

	return out
}

type hppResponse struct {
	Calculation  *hppCalculationResponse `json:"calculation"`
	SellingPrice *money.Amount           `json:"sellingPrice,omitempty"`
	ProfitMargin *decimal.Decimal        `json:"profitMargin,omitempty"`
	Markup       *decimal.Decimal        `json:"markup,omitempty"`
}

func newHppResponse(out *usecase.HppOutput) *hppResponse {
	return &hppResponse{
		Calculation:  newHppCalculationResponse(out.Calculation),
		SellingPrice: out.SellingPrice,
		ProfitMargin: out.ProfitMargin,
		Markup:       out.Markup,
	}
}

type settingsResponse struct {
	FixedCosts          money.Amount `json:"fixedCosts"`
	TargetProfit        money.Amount `json:"targetProfit"`
	AverageSellingPrice money.Amount `json:"averageSellingPrice"`
	UpdatedAt           *time.Time   `json:"updatedAt,omitempty"`
}

func newSettingsResponse(s *entity.BusinessSettings) *settingsResponse {
	out := &settingsResponse{
		FixedCosts:          s.FixedCosts,
		TargetProfit:        s.TargetProfit,
		AverageSellingPrice: s.AverageSellingPrice,
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		out.UpdatedAt = &updatedAt
	}

	return out
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
