package model

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&CustomerModel{},
		&TransactionCategoryModel{},
		&TransactionModel{},
		&HppCalculationModel{},
		&BusinessSettingsModel{},
	}
}
