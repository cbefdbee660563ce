package model

type Expense struct {
	ID               string  `json:"id"`
	MoneySourceID    string  `json:"money_source_id"`
	MoneySourceName  string  `json:"money_source_name"`
	MoneySourceColor string  `json:"money_source_color"`
	Type             string  `json:"type"`
	Amount           float64 `json:"amount"`
	Category         string  `json:"category"`
	Description      string  `json:"description"`
	TransactionDate  string  `json:"transaction_date"`
}

type GetListExpenseRequest struct {
	Limit int `json:"limit"`
}

type GetListExpenseResponse struct {
	Expenses []Expense `json:"expenses"`
}

type CreateExpenseRequest struct {
	MoneySourceID   string  `json:"money_source_id"`
	Type            string  `json:"type"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	TransactionDate string  `json:"transaction_date"`
}

type CreateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

type DeleteExpenseResponse struct{}

type CategoryStatistic struct {
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

type ExpenseStatisticRequest struct{}

type ExpenseStatisticResponse struct {
	Month       string              `json:"month"`
	TotalCredit float64             `json:"total_credit"`
	TotalDebit  float64             `json:"total_debit"`
	Categories  []CategoryStatistic `json:"categories"`
}
